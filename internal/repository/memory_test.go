package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"devconnect/model"
)

func TestMemoryPostStoreNotFound(t *testing.T) {
	s := NewMemoryPostStore()
	ctx := context.Background()

	if _, err := s.FindByID(ctx, bson.NewObjectID()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("find: %v", err)
	}
	if err := s.Delete(ctx, bson.NewObjectID()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Replace(ctx, &model.Post{ID: bson.NewObjectID()}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("replace: %v", err)
	}
}

func TestMemoryPostStoreCopies(t *testing.T) {
	s := NewMemoryPostStore()
	ctx := context.Background()

	p := &model.Post{
		ID:       bson.NewObjectID(),
		UserID:   bson.NewObjectID(),
		Text:     "original",
		Comments: []model.Comment{{ID: bson.NewObjectID(), Text: "c1"}},
		Date:     time.Now(),
	}
	if err := s.Insert(ctx, p); err != nil {
		t.Fatal(err)
	}

	// mutating a fetched document must not leak back into the store
	got, err := s.FindByID(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	got.Text = "mutated"
	got.Comments[0].Text = "mutated"

	again, err := s.FindByID(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if again.Text != "original" || again.Comments[0].Text != "c1" {
		t.Fatalf("store aliased: %+v", again)
	}
}
