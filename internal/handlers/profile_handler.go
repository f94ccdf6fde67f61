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

type ProfileHandler struct {
	svc *service.ProfileService
	log *logrus.Logger
}

func NewProfileHandler(svc *service.ProfileService, log *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: log}
}

// GET /api/profile/me
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	uid, ok := authctx.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	profile, err := h.svc.GetOwn(c.Context(), uid)
	switch {
	case errors.Is(err, service.ErrProfileNotFound):
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Msg: "There is no profile for this user"})
	case err != nil:
		return serverError(c, h.log, err)
	}
	return c.JSON(profile)
}

// POST /api/profile
func (h *ProfileHandler) Upsert(c *fiber.Ctx) error {
	uid, ok := authctx.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	var body dto.UpsertProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Msg: "Invalid request body"})
	}
	if errs := validation.Struct(body); errs != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ValidationErrorResponse{Errors: errs})
	}

	profile, err := h.svc.Upsert(c.Context(), uid, body)
	if err != nil {
		return serverError(c, h.log, err)
	}
	return c.JSON(profile)
}

// GET /api/profile
func (h *ProfileHandler) All(c *fiber.Ctx) error {
	profiles, err := h.svc.All(c.Context())
	if err != nil {
		return serverError(c, h.log, err)
	}
	return c.JSON(profiles)
}

// GET /api/profile/user/:user_id
func (h *ProfileHandler) ByUser(c *fiber.Ctx) error {
	uid, err := bson.ObjectIDFromHex(c.Params("user_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "Profile not found"})
	}

	profile, svcErr := h.svc.ByUser(c.Context(), uid)
	switch {
	case errors.Is(svcErr, service.ErrProfileNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "Profile not found"})
	case svcErr != nil:
		return serverError(c, h.log, svcErr)
	}
	return c.JSON(profile)
}

// DELETE /api/profile
func (h *ProfileHandler) DeleteAccount(c *fiber.Ctx) error {
	uid, ok := authctx.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.svc.DeleteAccount(c.Context(), uid); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "User not found"})
		}
		return serverError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"msg": "User deleted"})
}
