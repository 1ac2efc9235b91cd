package middleware

import (
	"siparhanud-backend/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// Role membatasi endpoint ke role tertentu. Dipasang setelah Auth.
func Role(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := auth.Require(CurrentUser(c), allowedRoles...); err != nil {
			return err
		}
		return c.Next()
	}
}
