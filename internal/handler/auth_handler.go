package handler

import (
	"siparhanud-backend/internal/audit"
	"siparhanud-backend/internal/middleware"
	"siparhanud-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	usecase *usecase.UserUsecase
	audit   audit.Recorder
}

func NewAuthHandler(u *usecase.UserUsecase, recorder audit.Recorder) *AuthHandler {
	return &AuthHandler{usecase: u, audit: recorder}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest("Format data salah")
	}
	if req.Username == "" || req.Password == "" {
		return badRequest("Username dan password wajib diisi")
	}

	res, err := h.usecase.Login(c.UserContext(), req.Username, req.Password, c.IP())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":    "Login berhasil",
		"token":      res.Token,
		"token_type": "bearer",
		"user":       res.User,
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := middleware.MustUser(c)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// Logout hanya dicatat. Token JWT tetap berlaku sampai kadaluarsa.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	a := actor(c)
	h.audit.Record(c.UserContext(), a, audit.ActionLogout, audit.EntityUser, a.ID, nil, nil)
	return c.JSON(fiber.Map{"message": "Logout berhasil"})
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest("Format data salah")
	}

	if err := h.usecase.ChangePassword(c.UserContext(), actor(c), req.OldPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Password berhasil diubah"})
}
