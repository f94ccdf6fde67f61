package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID       bson.ObjectID `json:"id"     bson:"_id,omitempty"`
	Name     string        `json:"name"   bson:"name"`
	Email    string        `json:"email"  bson:"email"`
	Password string        `json:"-"      bson:"password"` // bcrypt hash, never serialized
	Avatar   string        `json:"avatar" bson:"avatar"`
	Date     time.Time     `json:"date"   bson:"date"`
}
