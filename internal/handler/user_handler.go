package handler

import (
	"siparhanud-backend/internal/repository"
	"siparhanud-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	usecase *usecase.UserUsecase
}

func NewUserHandler(u *usecase.UserUsecase) *UserHandler {
	return &UserHandler{usecase: u}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	page := pageFrom(c)
	users, total, err := h.usecase.List(c.UserContext(), repository.UserFilter{
		Role:   c.Query("role"),
		Search: c.Query("search"),
		Page:   page,
	})
	if err != nil {
		return err
	}
	return list(c, users, total, page)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.usecase.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(user)
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var input usecase.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest("Input tidak valid")
	}

	user, err := h.usecase.Create(c.UserContext(), actor(c), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User berhasil dibuat", "data": user})
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	var input usecase.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest("Input tidak valid")
	}

	user, err := h.usecase.Update(c.UserContext(), actor(c), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "User berhasil diperbarui", "data": user})
}

func (h *UserHandler) ResetPassword(c *fiber.Ctx) error {
	var input struct {
		NewPassword string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return badRequest("Input tidak valid")
	}

	if err := h.usecase.ResetPassword(c.UserContext(), actor(c), c.Params("id"), input.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Password berhasil direset"})
}

func (h *UserHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.usecase.Deactivate(c.UserContext(), actor(c), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "User berhasil dinonaktifkan"})
}
