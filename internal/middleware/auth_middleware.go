package middleware

import (
	"siparhanud-backend/internal/apperr"
	"siparhanud-backend/internal/auth"
	"siparhanud-backend/internal/model"

	"github.com/gofiber/fiber/v2"
)

const localUser = "user"

func Auth(guard *auth.Guard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Ambil token dari Header Authorization, validasi, lalu muat user
		user, err := guard.Resolve(c.UserContext(), c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return err
		}

		// 2. Simpan user ke Context agar bisa dipakai di Handler
		c.Locals(localUser, user)
		c.Locals("user_id", user.ID)
		c.Locals("role", user.Role)

		return c.Next()
	}
}

// CurrentUser mengembalikan user yang diset middleware Auth, atau nil.
func CurrentUser(c *fiber.Ctx) *model.User {
	user, _ := c.Locals(localUser).(*model.User)
	return user
}

// MustUser sama dengan CurrentUser tetapi gagal Unauthenticated jika belum login.
func MustUser(c *fiber.Ctx) (*model.User, error) {
	user := CurrentUser(c)
	if user == nil {
		return nil, apperr.Unauthenticated("Token tidak ditemukan")
	}
	return user, nil
}
