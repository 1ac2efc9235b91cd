package routes

import (
	"siparhanud-backend/internal/handler"
	"siparhanud-backend/internal/middleware"
	"siparhanud-backend/internal/model"
	"siparhanud-backend/internal/repository"
	"siparhanud-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupImportRoutes(api fiber.Router, d *Dependencies) {
	uc := usecase.NewImportUsecase(repository.NewPersonelRepository(d.DB), d.Audit)
	hdl := handler.NewImportHandler(uc)

	api.Post("/import/personel", middleware.Auth(d.Guard), middleware.Role(model.RoleAdmin, model.RoleStaff), hdl.ImportPersonel)
}
