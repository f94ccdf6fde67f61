package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"devconnect/model"
)

type MongoProfileStore struct {
	col *mongo.Collection
}

func NewMongoProfileStore(db *mongo.Database) *MongoProfileStore {
	return &MongoProfileStore{col: db.Collection("profiles")}
}

func (s *MongoProfileStore) FindByUser(ctx context.Context, userID bson.ObjectID) (*model.Profile, error) {
	var p model.Profile
	err := s.col.FindOne(ctx, bson.M{"user": userID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *MongoProfileStore) FindAll(ctx context.Context) ([]model.Profile, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []model.Profile
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert writes one profile per user, keyed by the user id.
func (s *MongoProfileStore) Upsert(ctx context.Context, p *model.Profile) error {
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	_, err := s.col.ReplaceOne(ctx, bson.M{"user": p.UserID}, p,
		options.Replace().SetUpsert(true))
	return err
}

func (s *MongoProfileStore) DeleteByUser(ctx context.Context, userID bson.ObjectID) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"user": userID})
	return err
}
