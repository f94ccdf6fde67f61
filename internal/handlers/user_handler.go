package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"devconnect/dto"
	"devconnect/internal/service"
	"devconnect/internal/validation"
)

type UserHandler struct {
	svc *service.UserService
	log *logrus.Logger
}

func NewUserHandler(svc *service.UserService, log *logrus.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

// POST /api/users
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Msg: "Invalid request body"})
	}
	if errs := validation.Struct(body); errs != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ValidationErrorResponse{Errors: errs})
	}

	tok, err := h.svc.Register(c.Context(), body.Name, body.Email, body.Password)
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Errors: []dto.FieldError{{Msg: "User already exists"}},
		})
	case err != nil:
		return serverError(c, h.log, err)
	}
	return c.JSON(dto.TokenResponse{Token: tok})
}
