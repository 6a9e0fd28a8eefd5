package handler

import (
	"context"
	"strings"

	"lobby-service/domain"

	"github.com/gofiber/fiber/v2"
)

// SessionVerifier resolves a bearer token to the identity it belongs to.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (domain.Identity, error)
}

// AuthGuard rejects requests without a valid session token and stores the
// resolved identity in the request locals for the handlers downstream.
func AuthGuard(sessions SessionVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing session token"})
		}

		identity, err := sessions.Verify(c.UserContext(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired session"})
		}

		c.Locals("user_id", identity.ID)
		c.Locals("username", identity.DisplayName)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return c.Cookies("session")
}
