package service

import "errors"

// Domain failures as values; handlers translate them to status codes at
// the boundary, nothing here knows about HTTP.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrProfileNotFound = errors.New("profile not found")

	ErrNotAuthorized = errors.New("user not authorized")

	ErrTextRequired = errors.New("text is required")
	ErrAlreadyLiked = errors.New("post already liked")
	ErrNotLiked     = errors.New("post not yet liked")

	ErrEmailTaken     = errors.New("user already exists")
	ErrBadCredentials = errors.New("invalid credentials")
)
