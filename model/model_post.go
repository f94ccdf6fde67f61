package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Post is the whole stored document: comments and likes live inside it and
// are rewritten with the post on every nested mutation. Name and Avatar are
// snapshots of the author taken at creation time; later profile edits do
// not touch them.
type Post struct {
	ID       bson.ObjectID `json:"id"       bson:"_id,omitempty"`
	UserID   bson.ObjectID `json:"user"     bson:"user"`
	Text     string        `json:"text"     bson:"text"`
	Name     string        `json:"name"     bson:"name"`
	Avatar   string        `json:"avatar"   bson:"avatar"`
	Likes    []Like        `json:"likes"    bson:"likes"`
	Comments []Comment     `json:"comments" bson:"comments"`
	Date     time.Time     `json:"date"     bson:"date"`
}

type Like struct {
	ID     bson.ObjectID `json:"id"   bson:"_id"`
	UserID bson.ObjectID `json:"user" bson:"user"`
	Date   time.Time     `json:"date" bson:"date"`
}

type Comment struct {
	ID     bson.ObjectID `json:"id"     bson:"_id"`
	UserID bson.ObjectID `json:"user"   bson:"user"`
	Text   string        `json:"text"   bson:"text"`
	Name   string        `json:"name"   bson:"name"`
	Avatar string        `json:"avatar" bson:"avatar"`
	Date   time.Time     `json:"date"   bson:"date"`
}

// LikedBy reports whether the user already has a like entry on the post.
// Membership is keyed by user id only.
func (p *Post) LikedBy(user bson.ObjectID) bool {
	for _, l := range p.Likes {
		if l.UserID == user {
			return true
		}
	}
	return false
}
