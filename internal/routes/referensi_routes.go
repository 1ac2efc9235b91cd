package routes

import (
	"siparhanud-backend/internal/handler"
	"siparhanud-backend/internal/middleware"
	"siparhanud-backend/internal/model"
	"siparhanud-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupReferensiRoutes(api fiber.Router, d *Dependencies) {
	hdl := handler.NewReferensiHandler(repository.NewReferensiRepository(d.DB), d.Audit)

	grp := api.Group("/reference", middleware.Auth(d.Guard))
	grp.Get("/:tipe", hdl.List)

	admin := middleware.Role(model.RoleAdmin)
	grp.Post("/:tipe", admin, hdl.Create)
	grp.Put("/:tipe/:id", admin, hdl.Update)
	grp.Delete("/:tipe/:id", admin, hdl.Delete)
}
