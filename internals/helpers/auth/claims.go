// internals/helpers/auth/claims.go
package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserID reads the authenticated user id stashed by the auth middleware.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing user id")
	}
	return id, nil
}

func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals("role").(string)
	return role
}
