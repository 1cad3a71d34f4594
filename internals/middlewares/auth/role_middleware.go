// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/maruf-pfc/opsboard-sub000/internals/constants"
)

// RequireRoles rejects the request with 403 unless the token role is one of
// the allowed set. Admin always passes.
func RequireRoles(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role == constants.RoleAdmin {
			return c.Next()
		}
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, constants.ErrOnlyManagersCanAccess)
	}
}

// RequireAdmin is the strict variant for destructive admin-only routes.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if role, _ := c.Locals("role").(string); role != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, constants.ErrOnlyAdminsCanAccess)
		}
		return c.Next()
	}
}
