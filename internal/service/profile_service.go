package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"devconnect/dto"
	"devconnect/internal/repository"
	"devconnect/model"
)

type ProfileService struct {
	profiles repository.ProfileStore
	users    repository.UserStore
	posts    repository.PostStore
}

func NewProfileService(profiles repository.ProfileStore, users repository.UserStore, posts repository.PostStore) *ProfileService {
	return &ProfileService{profiles: profiles, users: users, posts: posts}
}

func (s *ProfileService) GetOwn(ctx context.Context, userID bson.ObjectID) (*model.Profile, error) {
	return s.ByUser(ctx, userID)
}

func (s *ProfileService) ByUser(ctx context.Context, userID bson.ObjectID) (*model.Profile, error) {
	p, err := s.profiles.FindByUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	s.attachOwner(ctx, p)
	return p, nil
}

// Upsert creates or replaces the caller's profile. An existing profile
// keeps its identity and creation date.
func (s *ProfileService) Upsert(ctx context.Context, userID bson.ObjectID, in dto.UpsertProfileRequest) (*model.Profile, error) {
	p := &model.Profile{
		UserID:   userID,
		Status:   in.Status,
		Skills:   splitSkills(in.Skills),
		Company:  in.Company,
		Location: in.Location,
		Bio:      in.Bio,
		Date:     time.Now().UTC(),
	}

	if existing, err := s.profiles.FindByUser(ctx, userID); err == nil {
		p.ID = existing.ID
		p.Date = existing.Date
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, err
	}
	s.attachOwner(ctx, p)
	return p, nil
}

// All returns every profile with the owner's name/avatar attached.
// Profiles whose owner has vanished are returned without the overlay.
func (s *ProfileService) All(ctx context.Context) ([]model.Profile, error) {
	profiles, err := s.profiles.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		s.attachOwner(ctx, &profiles[i])
	}
	return profiles, nil
}

// DeleteAccount removes the user's posts, profile and account together.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID bson.ObjectID) error {
	if err := s.posts.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if err := s.profiles.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	err := s.users.Delete(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (s *ProfileService) attachOwner(ctx context.Context, p *model.Profile) {
	if owner, err := s.users.FindByID(ctx, p.UserID); err == nil {
		p.Name = owner.Name
		p.Avatar = owner.Avatar
	}
}

func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
