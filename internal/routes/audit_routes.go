package routes

import (
	"siparhanud-backend/internal/handler"
	"siparhanud-backend/internal/middleware"
	"siparhanud-backend/internal/model"
	"siparhanud-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupAuditRoutes(api fiber.Router, d *Dependencies) {
	hdl := handler.NewAuditHandler(repository.NewAuditRepository(d.DB))
	api.Get("/audit-logs", middleware.Auth(d.Guard), middleware.Role(model.RoleAdmin, model.RoleLeader), hdl.List)
}
