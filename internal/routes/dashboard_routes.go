package routes

import (
	"siparhanud-backend/internal/handler"
	"siparhanud-backend/internal/middleware"
	"siparhanud-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(api fiber.Router, d *Dependencies) {
	hdl := handler.NewDashboardHandler(repository.NewDashboardRepository(d.DB))
	api.Get("/dashboard/stats", middleware.Auth(d.Guard), hdl.GetStats)
}
