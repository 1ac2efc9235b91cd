package routes

import (
	"siparhanud-backend/internal/handler"
	"siparhanud-backend/internal/middleware"
	"siparhanud-backend/internal/model"
	"siparhanud-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupExportRoutes(api fiber.Router, d *Dependencies) {
	hdl := handler.NewExportHandler(
		repository.NewPersonelRepository(d.DB),
		repository.NewDashboardRepository(d.DB),
		d.Audit,
	)

	grp := api.Group("/export", middleware.Auth(d.Guard), middleware.Role(model.RoleAdmin, model.RoleStaff, model.RoleLeader))
	grp.Get("/personel/excel", hdl.PersonelExcel)
	grp.Get("/personel/pdf", hdl.PersonelPDF)
	grp.Get("/statistik/excel", hdl.StatistikExcel)
}
