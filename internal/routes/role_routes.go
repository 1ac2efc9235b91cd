package routes

import (
	"siparhanud-backend/internal/handler"
	"siparhanud-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupRoleRoutes(api fiber.Router, d *Dependencies) {
	api.Get("/roles", middleware.Auth(d.Guard), handler.GetRoles)
}
