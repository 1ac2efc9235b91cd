package routes

import (
	"siparhanud-backend/internal/handler"
	"siparhanud-backend/internal/middleware"
	"siparhanud-backend/internal/model"
	"siparhanud-backend/internal/repository"
	"siparhanud-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupDokumenRoutes(api fiber.Router, d *Dependencies) {
	maxBytes := int64(d.Config.MaxUploadBytes())
	uc := usecase.NewDokumenUsecase(
		repository.NewDokumenRepository(d.DB),
		repository.NewPersonelRepository(d.DB),
		d.Store, d.Audit, d.Log, maxBytes,
	)
	hdl := handler.NewDokumenHandler(uc, maxBytes)

	editor := middleware.Role(model.RoleAdmin, model.RoleStaff)

	api.Get("/personel/:nrp/documents", middleware.Auth(d.Guard), middleware.SelfScope("nrp"), hdl.List)
	api.Post("/personel/:nrp/documents", middleware.Auth(d.Guard), editor, hdl.Upload)

	// Scoping pemilik dicek di usecase karena NRP baru diketahui setelah record dibaca
	docs := api.Group("/documents", middleware.Auth(d.Guard))
	docs.Get("/:id/download", hdl.Download)
	docs.Delete("/:id", editor, hdl.Delete)
}
