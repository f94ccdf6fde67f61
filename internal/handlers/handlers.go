package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"devconnect/dto"
)

// serverError logs the cause with the request id and answers with a bare
// 500 "Server error"; the detail stays server-side.
func serverError(c *fiber.Ctx, log *logrus.Logger, err error) error {
	log.WithFields(logrus.Fields{
		"request_id": c.Locals("request_id"),
		"method":     c.Method(),
		"path":       c.Path(),
	}).WithError(err).Error("request failed")
	return c.Status(fiber.StatusInternalServerError).SendString("Server error")
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).
		JSON(dto.ErrorResponse{Msg: "No token, authorization denied"})
}
