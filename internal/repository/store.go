// Package repository is the document store gateway: find, save and delete
// per entity collection, nothing more. Services own all domain rules.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"devconnect/model"
)

var ErrNotFound = errors.New("document not found")

type UserStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Insert(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id bson.ObjectID) error
}

type ProfileStore interface {
	FindByUser(ctx context.Context, userID bson.ObjectID) (*model.Profile, error)
	FindAll(ctx context.Context) ([]model.Profile, error)
	Upsert(ctx context.Context, p *model.Profile) error
	DeleteByUser(ctx context.Context, userID bson.ObjectID) error
}

// PostStore persists posts as whole documents. Replace rewrites the full
// document, which is how nested comment/like mutations reach the store.
type PostStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*model.Post, error)
	FindAllNewestFirst(ctx context.Context) ([]model.Post, error)
	Insert(ctx context.Context, p *model.Post) error
	Replace(ctx context.Context, p *model.Post) error
	Delete(ctx context.Context, id bson.ObjectID) error
	DeleteByUser(ctx context.Context, userID bson.ObjectID) error
}
