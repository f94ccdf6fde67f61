package repository

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"devconnect/model"
)

// In-memory stores implementing the same interfaces as the Mongo ones.
// Used by tests; every read and write copies so callers never alias the
// stored documents.

type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[bson.ObjectID]model.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[bson.ObjectID]model.User)}
}

func (s *MemoryUserStore) FindByID(_ context.Context, id bson.ObjectID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) Insert(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	s.users[u.ID] = *u
	return nil
}

func (s *MemoryUserStore) Delete(_ context.Context, id bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)
	return nil
}

type MemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[bson.ObjectID]model.Profile // keyed by owner user id
}

func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{profiles: make(map[bson.ObjectID]model.Profile)}
}

func (s *MemoryProfileStore) FindByUser(_ context.Context, userID bson.ObjectID) (*model.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return copyProfile(p), nil
}

func (s *MemoryProfileStore) FindAll(_ context.Context) ([]model.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, *copyProfile(p))
	}
	return out, nil
}

func (s *MemoryProfileStore) Upsert(_ context.Context, p *model.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	s.profiles[p.UserID] = *copyProfile(*p)
	return nil
}

func (s *MemoryProfileStore) DeleteByUser(_ context.Context, userID bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, userID)
	return nil
}

type MemoryPostStore struct {
	mu    sync.RWMutex
	posts map[bson.ObjectID]model.Post
}

func NewMemoryPostStore() *MemoryPostStore {
	return &MemoryPostStore{posts: make(map[bson.ObjectID]model.Post)}
}

func (s *MemoryPostStore) FindByID(_ context.Context, id bson.ObjectID) (*model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyPost(p), nil
}

func (s *MemoryPostStore) FindAllNewestFirst(_ context.Context) ([]model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, *copyPost(p))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (s *MemoryPostStore) Insert(_ context.Context, p *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	s.posts[p.ID] = *copyPost(*p)
	return nil
}

func (s *MemoryPostStore) Replace(_ context.Context, p *model.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[p.ID]; !ok {
		return ErrNotFound
	}
	s.posts[p.ID] = *copyPost(*p)
	return nil
}

func (s *MemoryPostStore) Delete(_ context.Context, id bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return ErrNotFound
	}
	delete(s.posts, id)
	return nil
}

func (s *MemoryPostStore) DeleteByUser(_ context.Context, userID bson.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, p := range s.posts {
		if p.UserID == userID {
			delete(s.posts, id)
		}
	}
	return nil
}

func copyPost(p model.Post) *model.Post {
	cp := p
	cp.Likes = append([]model.Like(nil), p.Likes...)
	cp.Comments = append([]model.Comment(nil), p.Comments...)
	return &cp
}

func copyProfile(p model.Profile) *model.Profile {
	cp := p
	cp.Skills = append([]string(nil), p.Skills...)
	return &cp
}
