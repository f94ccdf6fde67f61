package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"

	"devconnect/dto"
	"devconnect/internal/authctx"
	"devconnect/internal/service"
	"devconnect/internal/validation"
)

type PostHandler struct {
	svc *service.PostService
	log *logrus.Logger
}

func NewPostHandler(svc *service.PostService, log *logrus.Logger) *PostHandler {
	return &PostHandler{svc: svc, log: log}
}

// postID reads the given route param as an ObjectID. A malformed id
// behaves like a missing document.
func postID(c *fiber.Ctx, param string) (bson.ObjectID, bool) {
	id, err := bson.ObjectIDFromHex(c.Params(param))
	return id, err == nil
}

// POST /api/posts
func (h *PostHandler) Create(c *fiber.Ctx) error {
	uid, ok := authctx.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	var body dto.CreatePostRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Msg: "Invalid request body"})
	}
	if errs := validation.Struct(body); errs != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ValidationErrorResponse{Errors: errs})
	}

	post, err := h.svc.Create(c.Context(), uid, body.Text)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "User not found"})
	case errors.Is(err, service.ErrTextRequired):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "Text is required"})
	case err != nil:
		return serverError(c, h.log, err)
	}
	return c.JSON(post)
}

// GET /api/posts
func (h *PostHandler) List(c *fiber.Ctx) error {
	posts, err := h.svc.List(c.Context())
	if err != nil {
		return serverError(c, h.log, err)
	}
	return c.JSON(posts)
}

// GET /api/posts/:id
func (h *PostHandler) Get(c *fiber.Ctx) error {
	id, ok := postID(c, "id")
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "Post not found"})
	}

	post, err := h.svc.Get(c.Context(), id)
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "Post not found"})
	case err != nil:
		return serverError(c, h.log, err)
	}
	return c.JSON(post)
}

// DELETE /api/posts/:id
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	uid, ok := authctx.UserID(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := postID(c, "id")
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "Post not found"})
	}

	err := h.svc.Delete(c.Context(), id, uid)
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "Post not found"})
	case errors.Is(err, service.ErrNotAuthorized):
		// ownership failures answer 401, not 403
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Msg: "User not authorized"})
	case err != nil:
		return serverError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"msg": "Post removed"})
}

// PUT /api/posts/like/:id
func (h *PostHandler) Like(c *fiber.Ctx) error {
	uid, ok := authctx.UserID(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := postID(c, "id")
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "Post not found"})
	}

	likes, err := h.svc.Like(c.Context(), id, uid)
	switch {
	case errors.Is(err, service.ErrAlreadyLiked):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "Post already liked"})
	case errors.Is(err, service.ErrPostNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "Post not found"})
	case err != nil:
		return serverError(c, h.log, err)
	}
	return c.JSON(likes)
}

// PUT /api/posts/unlike/:id
func (h *PostHandler) Unlike(c *fiber.Ctx) error {
	uid, ok := authctx.UserID(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := postID(c, "id")
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "Post not found"})
	}

	likes, err := h.svc.Unlike(c.Context(), id, uid)
	switch {
	case errors.Is(err, service.ErrNotLiked):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "Post already unliked"})
	case errors.Is(err, service.ErrPostNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "Post not found"})
	case err != nil:
		return serverError(c, h.log, err)
	}
	return c.JSON(likes)
}

// POST /api/posts/comment/:id
func (h *PostHandler) AddComment(c *fiber.Ctx) error {
	uid, ok := authctx.UserID(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := postID(c, "id")
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "Post not found"})
	}

	var body dto.CreateCommentRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Msg: "Invalid request body"})
	}
	if errs := validation.Struct(body); errs != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ValidationErrorResponse{Errors: errs})
	}

	comments, err := h.svc.AddComment(c.Context(), id, uid, body.Text)
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "Post not found"})
	case errors.Is(err, service.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "User not found"})
	case errors.Is(err, service.ErrTextRequired):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "Text is required"})
	case err != nil:
		return serverError(c, h.log, err)
	}
	return c.JSON(comments)
}

// DELETE /api/posts/comment/:id/:comment_id
func (h *PostHandler) DeleteComment(c *fiber.Ctx) error {
	uid, ok := authctx.UserID(c)
	if !ok {
		return unauthorized(c)
	}
	id, ok := postID(c, "id")
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "Post not found"})
	}
	commentID, ok := postID(c, "comment_id")
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "Comment does not exists"})
	}

	comments, err := h.svc.DeleteComment(c.Context(), id, commentID, uid)
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "Post not found"})
	case errors.Is(err, service.ErrCommentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "Comment does not exists"})
	case errors.Is(err, service.ErrNotAuthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Msg: "User not authorized"})
	case err != nil:
		return serverError(c, h.log, err)
	}
	return c.JSON(comments)
}
