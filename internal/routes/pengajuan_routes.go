package routes

import (
	"siparhanud-backend/internal/handler"
	"siparhanud-backend/internal/middleware"
	"siparhanud-backend/internal/model"
	"siparhanud-backend/internal/repository"
	"siparhanud-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupPengajuanRoutes(api fiber.Router, d *Dependencies) {
	repo := repository.NewPengajuanRepository(d.DB)
	personelRepo := repository.NewPersonelRepository(d.DB) // Dibutuhkan untuk efek persetujuan

	uc := usecase.NewPengajuanUsecase(repo, personelRepo, d.Audit)
	hdl := handler.NewPengajuanHandler(uc, repo, personelRepo)

	grp := api.Group("/pengajuan", middleware.Auth(d.Guard))
	grp.Get("/", hdl.List)
	grp.Get("/:id", hdl.Get)
	// Aturan per jenis (personel hanya koreksi) dicek di usecase
	grp.Post("/", middleware.Role(model.RoleAdmin, model.RoleStaff, model.RolePersonnel), hdl.Create)
	grp.Put("/:id/verify", middleware.Role(model.RoleVerifier), hdl.Verify)

	api.Get("/reports/pengajuan", middleware.Auth(d.Guard),
		middleware.Role(model.RoleAdmin, model.RoleStaff, model.RoleLeader), hdl.Report)
}
