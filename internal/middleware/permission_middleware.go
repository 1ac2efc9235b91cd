package middleware

import (
	"siparhanud-backend/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// SelfScope menolak role personnel yang mengakses NRP milik orang lain.
// param adalah nama parameter route yang berisi NRP.
func SelfScope(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := auth.CanAccessNRP(CurrentUser(c), c.Params(param)); err != nil {
			return err
		}
		return c.Next()
	}
}
