package middleware

import (
	"github.com/gofiber/fiber/v2"

	"devconnect/dto"
	"devconnect/internal/token"
)

// TokenHeader carries the signed credential on every protected request.
const TokenHeader = "x-auth-token"

// RequireAuth verifies the credential header and stores the user id in
// Locals for downstream handlers. A missing header and an invalid one are
// distinct 401s.
func RequireAuth(tokens *token.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(TokenHeader)
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Msg: "No token, authorization denied"})
		}

		uid, err := tokens.Verify(raw)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Msg: "Token is not valid"})
		}

		c.Locals("user_id", uid)
		return c.Next()
	}
}
