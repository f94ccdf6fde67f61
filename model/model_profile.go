package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Profile struct {
	ID       bson.ObjectID `json:"id"                 bson:"_id,omitempty"`
	UserID   bson.ObjectID `json:"user"               bson:"user"`
	Status   string        `json:"status"             bson:"status"`
	Skills   []string      `json:"skills"             bson:"skills"`
	Company  string        `json:"company,omitempty"  bson:"company,omitempty"`
	Location string        `json:"location,omitempty" bson:"location,omitempty"`
	Bio      string        `json:"bio,omitempty"      bson:"bio,omitempty"`
	Date     time.Time     `json:"date"               bson:"date"`

	// Owner name/avatar attached on reads, not persisted with the profile.
	Name   string `json:"name,omitempty"   bson:"-"`
	Avatar string `json:"avatar,omitempty" bson:"-"`
}
