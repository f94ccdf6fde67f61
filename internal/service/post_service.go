package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"devconnect/internal/repository"
	"devconnect/model"
)

// PostService owns every post mutation: creation with author snapshots,
// ownership-checked deletes, and the nested like/comment collections.
//
// Nested mutations are read-modify-write over the whole post document.
// Two concurrent mutations of the same post can race and the second write
// wins; the store only guarantees single-document atomicity.
type PostService struct {
	posts repository.PostStore
	users repository.UserStore
}

func NewPostService(posts repository.PostStore, users repository.UserStore) *PostService {
	return &PostService{posts: posts, users: users}
}

// Create persists a new post, copying the author's current name and
// avatar onto it. The snapshot is not kept in sync with later profile
// edits.
func (s *PostService) Create(ctx context.Context, authorID bson.ObjectID, text string) (*model.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}

	author, err := s.users.FindByID(ctx, authorID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		ID:       bson.NewObjectID(),
		UserID:   authorID,
		Text:     text,
		Name:     author.Name,
		Avatar:   author.Avatar,
		Likes:    []model.Like{},
		Comments: []model.Comment{},
		Date:     time.Now().UTC(),
	}
	if err := s.posts.Insert(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// List returns all posts, newest first.
func (s *PostService) List(ctx context.Context) ([]model.Post, error) {
	return s.posts.FindAllNewestFirst(ctx)
}

func (s *PostService) Get(ctx context.Context, postID bson.ObjectID) (*model.Post, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post and everything nested in it. Only the author may
// delete.
func (s *PostService) Delete(ctx context.Context, postID, requester bson.ObjectID) error {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != requester {
		return ErrNotAuthorized
	}
	return s.posts.Delete(ctx, postID)
}

// Like prepends a like entry for the requester and returns the updated
// collection. A user may hold at most one like per post.
func (s *PostService) Like(ctx context.Context, postID, requester bson.ObjectID) ([]model.Like, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.LikedBy(requester) {
		return nil, ErrAlreadyLiked
	}

	like := model.Like{
		ID:     bson.NewObjectID(),
		UserID: requester,
		Date:   time.Now().UTC(),
	}
	post.Likes = append([]model.Like{like}, post.Likes...)

	if err := s.posts.Replace(ctx, post); err != nil {
		return nil, err
	}
	return post.Likes, nil
}

// Unlike removes the requester's like entry, located by user id.
func (s *PostService) Unlike(ctx context.Context, postID, requester bson.ObjectID) ([]model.Like, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, l := range post.Likes {
		if l.UserID == requester {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotLiked
	}
	post.Likes = append(post.Likes[:idx], post.Likes[idx+1:]...)

	if err := s.posts.Replace(ctx, post); err != nil {
		return nil, err
	}
	return post.Likes, nil
}

// AddComment prepends a comment with the author's name/avatar snapshot
// and returns the full collection, newest first.
func (s *PostService) AddComment(ctx context.Context, postID, authorID bson.ObjectID, text string) ([]model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}

	author, err := s.users.FindByID(ctx, authorID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := model.Comment{
		ID:     bson.NewObjectID(),
		UserID: authorID,
		Text:   text,
		Name:   author.Name,
		Avatar: author.Avatar,
		Date:   time.Now().UTC(),
	}
	post.Comments = append([]model.Comment{comment}, post.Comments...)

	if err := s.posts.Replace(ctx, post); err != nil {
		return nil, err
	}
	return post.Comments, nil
}

// DeleteComment removes the comment with the given id, only for its
// author. The entry is located by comment id, not by the first matching
// author.
func (s *PostService) DeleteComment(ctx context.Context, postID, commentID, requester bson.ObjectID) ([]model.Comment, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, cm := range post.Comments {
		if cm.ID == commentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrCommentNotFound
	}
	if post.Comments[idx].UserID != requester {
		return nil, ErrNotAuthorized
	}
	post.Comments = append(post.Comments[:idx], post.Comments[idx+1:]...)

	if err := s.posts.Replace(ctx, post); err != nil {
		return nil, err
	}
	return post.Comments, nil
}
