package routes

import (
	"siparhanud-backend/internal/handler"
	"siparhanud-backend/internal/middleware"
	"siparhanud-backend/internal/repository"
	"siparhanud-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(api fiber.Router, d *Dependencies) {
	uc := usecase.NewUserUsecase(repository.NewUserRepository(d.DB), d.Tokens, d.Audit)
	hdl := handler.NewAuthHandler(uc, d.Audit)

	// Auth Routes
	api.Post("/auth/login", hdl.Login)

	// Protected
	authed := api.Group("/auth", middleware.Auth(d.Guard))
	authed.Get("/me", hdl.Me)
	authed.Post("/logout", hdl.Logout)
	authed.Put("/change-password", hdl.ChangePassword)
}
