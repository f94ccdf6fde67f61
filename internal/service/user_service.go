package service

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"devconnect/internal/repository"
	"devconnect/internal/token"
	"devconnect/model"
)

type UserService struct {
	users  repository.UserStore
	tokens *token.Manager
}

func NewUserService(users repository.UserStore, tokens *token.Manager) *UserService {
	return &UserService{users: users, tokens: tokens}
}

// Register creates an account and returns a signed credential for it.
// The avatar is derived from the email (gravatar), the password stored as
// a bcrypt hash.
func (s *UserService) Register(ctx context.Context, name, email, password string) (string, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return "", ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &model.User{
		ID:       bson.NewObjectID(),
		Name:     name,
		Email:    email,
		Password: string(hash),
		Avatar:   gravatarURL(email),
		Date:     time.Now().UTC(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return "", err
	}
	return s.tokens.Issue(user.ID.Hex())
}

// Login checks the password and returns a fresh credential. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrBadCredentials
	}
	if err != nil {
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrBadCredentials
	}
	return s.tokens.Issue(user.ID.Hex())
}

// Current returns the authenticated user. The password hash never leaves
// the model's json:"-" field.
func (s *UserService) Current(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func gravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&d=mm&r=pg", sum)
}
