package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"devconnect/dto"
	"devconnect/internal/authctx"
	"devconnect/internal/service"
	"devconnect/internal/validation"
)

type AuthHandler struct {
	svc *service.UserService
	log *logrus.Logger
}

func NewAuthHandler(svc *service.UserService, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: log}
}

// POST /api/auth
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Msg: "Invalid request body"})
	}
	if errs := validation.Struct(body); errs != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ValidationErrorResponse{Errors: errs})
	}

	tok, err := h.svc.Login(c.Context(), body.Email, body.Password)
	switch {
	case errors.Is(err, service.ErrBadCredentials):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Errors: []dto.FieldError{{Msg: "Invalid Credentials"}},
		})
	case err != nil:
		return serverError(c, h.log, err)
	}
	return c.JSON(dto.TokenResponse{Token: tok})
}

// GET /api/auth
func (h *AuthHandler) Current(c *fiber.Ctx) error {
	uid, ok := authctx.UserID(c)
	if !ok {
		return unauthorized(c)
	}

	user, err := h.svc.Current(c.Context(), uid)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "User not found"})
	case err != nil:
		return serverError(c, h.log, err)
	}
	return c.JSON(user)
}
