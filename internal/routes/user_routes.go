package routes

import (
	"siparhanud-backend/internal/handler"
	"siparhanud-backend/internal/middleware"
	"siparhanud-backend/internal/model"
	"siparhanud-backend/internal/repository"
	"siparhanud-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(api fiber.Router, d *Dependencies) {
	uc := usecase.NewUserUsecase(repository.NewUserRepository(d.DB), d.Tokens, d.Audit)
	hdl := handler.NewUserHandler(uc)

	// Admin Routes (Kelola User)
	admin := api.Group("/users", middleware.Auth(d.Guard), middleware.Role(model.RoleAdmin))
	admin.Get("/", hdl.List)
	admin.Get("/:id", hdl.Get)
	admin.Post("/", hdl.Create)
	admin.Put("/:id", hdl.Update)
	admin.Post("/:id/reset-password", hdl.ResetPassword)
	admin.Delete("/:id", hdl.Deactivate)
}
