package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"devconnect/internal/repository"
	"devconnect/model"
)

func seedUser(t *testing.T, users *repository.MemoryUserStore, name string) bson.ObjectID {
	t.Helper()
	u := &model.User{
		Name:   name,
		Email:  name + "@example.com",
		Avatar: "https://www.gravatar.com/avatar/" + name,
		Date:   time.Now().UTC(),
	}
	if err := users.Insert(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u.ID
}

func newPostFixture(t *testing.T) (*PostService, *repository.MemoryPostStore, bson.ObjectID, bson.ObjectID) {
	t.Helper()
	users := repository.NewMemoryUserStore()
	posts := repository.NewMemoryPostStore()
	u1 := seedUser(t, users, "alice")
	u2 := seedUser(t, users, "bob")
	return NewPostService(posts, users), posts, u1, u2
}

func TestCreateSnapshotsAuthor(t *testing.T) {
	svc, _, u1, _ := newPostFixture(t)

	post, err := svc.Create(context.Background(), u1, "hello")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if post.UserID != u1 {
		t.Errorf("author = %v, want %v", post.UserID, u1)
	}
	if post.Name != "alice" || post.Avatar == "" {
		t.Errorf("snapshot not copied: name=%q avatar=%q", post.Name, post.Avatar)
	}
	if len(post.Likes) != 0 || len(post.Comments) != 0 {
		t.Errorf("new post has nested entries")
	}
}

func TestCreateEmptyTextNeverPersists(t *testing.T) {
	svc, posts, u1, _ := newPostFixture(t)

	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := svc.Create(context.Background(), u1, text); !errors.Is(err, ErrTextRequired) {
			t.Fatalf("text %q: got %v, want ErrTextRequired", text, err)
		}
	}
	all, err := posts.FindAllNewestFirst(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 0 {
		t.Fatalf("store has %d posts, want 0", len(all))
	}
}

func TestCreateUnknownAuthor(t *testing.T) {
	svc, _, _, _ := newPostFixture(t)
	if _, err := svc.Create(context.Background(), bson.NewObjectID(), "hi"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("got %v, want ErrUserNotFound", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	users := repository.NewMemoryUserStore()
	posts := repository.NewMemoryPostStore()
	svc := NewPostService(posts, users)

	base := time.Now().UTC()
	for i, text := range []string{"oldest", "middle", "newest"} {
		p := &model.Post{
			ID:     bson.NewObjectID(),
			UserID: bson.NewObjectID(),
			Text:   text,
			Date:   base.Add(time.Duration(i) * time.Minute),
		}
		if err := posts.Insert(context.Background(), p); err != nil {
			t.Fatal(err)
		}
	}

	all, err := svc.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d posts", len(all))
	}
	if all[0].Text != "newest" || all[2].Text != "oldest" {
		t.Fatalf("order wrong: %s, %s, %s", all[0].Text, all[1].Text, all[2].Text)
	}
}

func TestDeleteOwnershipCheck(t *testing.T) {
	svc, _, u1, u2 := newPostFixture(t)
	post, err := svc.Create(context.Background(), u1, "mine")
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(context.Background(), post.ID, u2); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("non-author delete: got %v, want ErrNotAuthorized", err)
	}
	if _, err := svc.Get(context.Background(), post.ID); err != nil {
		t.Fatalf("post should be intact: %v", err)
	}

	if err := svc.Delete(context.Background(), post.ID, u1); err != nil {
		t.Fatalf("author delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), post.ID); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("got %v, want ErrPostNotFound", err)
	}
}

func TestLikeTwice(t *testing.T) {
	svc, _, u1, u2 := newPostFixture(t)
	post, err := svc.Create(context.Background(), u1, "like me")
	if err != nil {
		t.Fatal(err)
	}

	likes, err := svc.Like(context.Background(), post.ID, u2)
	if err != nil {
		t.Fatalf("first like: %v", err)
	}
	if len(likes) != 1 || likes[0].UserID != u2 {
		t.Fatalf("likes = %v", likes)
	}

	if _, err := svc.Like(context.Background(), post.ID, u2); !errors.Is(err, ErrAlreadyLiked) {
		t.Fatalf("second like: got %v, want ErrAlreadyLiked", err)
	}

	got, err := svc.Get(context.Background(), post.ID)
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for _, l := range got.Likes {
		if l.UserID == u2 {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("user has %d like entries, want 1", count)
	}
}

func TestUnlikeWithoutLike(t *testing.T) {
	svc, _, u1, u2 := newPostFixture(t)
	post, err := svc.Create(context.Background(), u1, "never liked")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Unlike(context.Background(), post.ID, u2); !errors.Is(err, ErrNotLiked) {
		t.Fatalf("got %v, want ErrNotLiked", err)
	}

	got, _ := svc.Get(context.Background(), post.ID)
	if len(got.Likes) != 0 {
		t.Fatalf("store changed: %v", got.Likes)
	}
}

func TestLikeUnlikeRoundtrip(t *testing.T) {
	svc, _, u1, u2 := newPostFixture(t)
	post, _ := svc.Create(context.Background(), u1, "toggle")

	if _, err := svc.Like(context.Background(), post.ID, u2); err != nil {
		t.Fatal(err)
	}
	likes, err := svc.Unlike(context.Background(), post.ID, u2)
	if err != nil {
		t.Fatalf("unlike: %v", err)
	}
	if len(likes) != 0 {
		t.Fatalf("likes = %v, want empty", likes)
	}
}

func TestCommentsNewestFirst(t *testing.T) {
	svc, _, u1, u2 := newPostFixture(t)
	post, _ := svc.Create(context.Background(), u1, "discuss")

	if _, err := svc.AddComment(context.Background(), post.ID, u2, "first"); err != nil {
		t.Fatal(err)
	}
	comments, err := svc.AddComment(context.Background(), post.ID, u1, "second")
	if err != nil {
		t.Fatal(err)
	}

	if len(comments) != 2 {
		t.Fatalf("got %d comments", len(comments))
	}
	if comments[0].Text != "second" || comments[1].Text != "first" {
		t.Fatalf("order wrong: %q, %q", comments[0].Text, comments[1].Text)
	}
	if comments[0].Name != "alice" {
		t.Errorf("comment snapshot name = %q", comments[0].Name)
	}
}

func TestCommentEmptyText(t *testing.T) {
	svc, _, u1, _ := newPostFixture(t)
	post, _ := svc.Create(context.Background(), u1, "p")
	if _, err := svc.AddComment(context.Background(), post.ID, u1, "  "); !errors.Is(err, ErrTextRequired) {
		t.Fatalf("got %v, want ErrTextRequired", err)
	}
}

func TestDeleteCommentOwnership(t *testing.T) {
	svc, _, u1, u2 := newPostFixture(t)
	post, _ := svc.Create(context.Background(), u1, "p")

	comments, err := svc.AddComment(context.Background(), post.ID, u2, "hi")
	if err != nil {
		t.Fatal(err)
	}
	commentID := comments[0].ID

	// post author is not the comment author; must be refused
	if _, err := svc.DeleteComment(context.Background(), post.ID, commentID, u1); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("got %v, want ErrNotAuthorized", err)
	}
	got, _ := svc.Get(context.Background(), post.ID)
	if len(got.Comments) != 1 {
		t.Fatalf("collection changed: %v", got.Comments)
	}

	remaining, err := svc.DeleteComment(context.Background(), post.ID, commentID, u2)
	if err != nil {
		t.Fatalf("author delete: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("remaining = %v", remaining)
	}
}

func TestDeleteCommentRemovesExactlyOne(t *testing.T) {
	svc, _, u1, u2 := newPostFixture(t)
	post, _ := svc.Create(context.Background(), u1, "p")

	// two comments from the same author; deletion must key on comment id
	if _, err := svc.AddComment(context.Background(), post.ID, u2, "keep"); err != nil {
		t.Fatal(err)
	}
	comments, err := svc.AddComment(context.Background(), post.ID, u2, "remove")
	if err != nil {
		t.Fatal(err)
	}
	target := comments[0] // newest first, text "remove"

	remaining, err := svc.DeleteComment(context.Background(), post.ID, target.ID, u2)
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 1 || remaining[0].Text != "keep" {
		t.Fatalf("remaining = %v", remaining)
	}
}

func TestDeleteCommentMissing(t *testing.T) {
	svc, _, u1, _ := newPostFixture(t)
	post, _ := svc.Create(context.Background(), u1, "p")
	if _, err := svc.DeleteComment(context.Background(), post.ID, bson.NewObjectID(), u1); !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("got %v, want ErrCommentNotFound", err)
	}
}
