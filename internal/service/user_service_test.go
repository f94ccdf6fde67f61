package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"devconnect/internal/repository"
	"devconnect/internal/token"
)

func newUserFixture() (*UserService, *repository.MemoryUserStore, *token.Manager) {
	users := repository.NewMemoryUserStore()
	tokens := token.NewManager("test-secret", time.Hour)
	return NewUserService(users, tokens), users, tokens
}

func TestRegisterAndLogin(t *testing.T) {
	svc, users, tokens := newUserFixture()

	tok, err := svc.Register(context.Background(), "Alice", "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	uid, err := tokens.Verify(tok)
	if err != nil {
		t.Fatalf("token from register does not verify: %v", err)
	}
	id, err := bson.ObjectIDFromHex(uid)
	if err != nil {
		t.Fatalf("uid is not an object id: %v", err)
	}

	stored, err := users.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("stored user: %v", err)
	}
	if stored.Password == "secret123" || stored.Password == "" {
		t.Fatalf("password stored in the clear")
	}
	if !strings.Contains(stored.Avatar, "gravatar.com/avatar/") {
		t.Errorf("avatar = %q", stored.Avatar)
	}

	loginTok, err := svc.Login(context.Background(), "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got, _ := tokens.Verify(loginTok); got != uid {
		t.Fatalf("login token uid = %q, want %q", got, uid)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newUserFixture()
	if _, err := svc.Register(context.Background(), "A", "dup@example.com", "secret123"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Register(context.Background(), "B", "dup@example.com", "other456"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("got %v, want ErrEmailTaken", err)
	}
}

func TestLoginRejects(t *testing.T) {
	svc, _, _ := newUserFixture()
	if _, err := svc.Register(context.Background(), "A", "a@example.com", "secret123"); err != nil {
		t.Fatal(err)
	}

	cases := []struct{ email, password string }{
		{"a@example.com", "wrong"},
		{"nobody@example.com", "secret123"},
	}
	for _, c := range cases {
		if _, err := svc.Login(context.Background(), c.email, c.password); !errors.Is(err, ErrBadCredentials) {
			t.Fatalf("%s/%s: got %v, want ErrBadCredentials", c.email, c.password, err)
		}
	}
}

func TestCurrentUnknown(t *testing.T) {
	svc, _, _ := newUserFixture()
	if _, err := svc.Current(context.Background(), bson.NewObjectID()); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("got %v, want ErrUserNotFound", err)
	}
}
