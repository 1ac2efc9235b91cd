package routes

import (
	"siparhanud-backend/internal/handler"
	"siparhanud-backend/internal/middleware"
	"siparhanud-backend/internal/model"
	"siparhanud-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// riwayatRoutes adalah handler list/create untuk satu sub-resource riwayat.
type riwayatRoutes interface {
	List(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
}

func SetupPersonelRoutes(api fiber.Router, d *Dependencies) {
	repo := repository.NewPersonelRepository(d.DB)
	hdl := handler.NewPersonelHandler(repo, d.Audit)

	authed := middleware.Auth(d.Guard)
	editor := middleware.Role(model.RoleAdmin, model.RoleStaff)
	self := middleware.SelfScope("nrp")

	api.Get("/personel", authed, hdl.List)
	api.Post("/personel", authed, editor, hdl.Create)

	// Group tanpa middleware agar Auth tidak ikut terpasang ke /personel/:nrp/documents
	one := api.Group("/personel/:nrp")
	one.Get("/", authed, self, hdl.Get)
	one.Put("/", authed, editor, hdl.Update)

	// Sub-resource riwayat
	sub := map[string]riwayatRoutes{
		"riwayat-pangkat": handler.NewRiwayatHandler[model.RiwayatPangkat](
			repository.NewRiwayatRepository[model.RiwayatPangkat](d.DB, "tmt_pangkat desc"), repo, d.Audit, "riwayat_pangkat"),
		"riwayat-jabatan": handler.NewRiwayatHandler[model.RiwayatJabatan](
			repository.NewRiwayatRepository[model.RiwayatJabatan](d.DB, "tmt_jabatan desc"), repo, d.Audit, "riwayat_jabatan"),
		"dikbang": handler.NewRiwayatHandler[model.Dikbang](
			repository.NewRiwayatRepository[model.Dikbang](d.DB, "tahun desc"), repo, d.Audit, "dikbang"),
		"tanda-jasa": handler.NewRiwayatHandler[model.TandaJasa](
			repository.NewRiwayatRepository[model.TandaJasa](d.DB, "tahun desc"), repo, d.Audit, "tanda_jasa"),
		"prestasi": handler.NewRiwayatHandler[model.Prestasi](
			repository.NewRiwayatRepository[model.Prestasi](d.DB, "tahun desc"), repo, d.Audit, "prestasi"),
		"hukuman": handler.NewRiwayatHandler[model.Hukuman](
			repository.NewRiwayatRepository[model.Hukuman](d.DB, "tanggal desc"), repo, d.Audit, "hukuman"),
		"cuti": handler.NewRiwayatHandler[model.Cuti](
			repository.NewRiwayatRepository[model.Cuti](d.DB, "tanggal_mulai desc"), repo, d.Audit, "cuti"),
		"keluarga": handler.NewRiwayatHandler[model.Keluarga](
			repository.NewRiwayatRepository[model.Keluarga](d.DB, "created_at asc"), repo, d.Audit, "keluarga"),
	}
	for path, h := range sub {
		one.Get("/"+path, authed, self, h.List)
		one.Post("/"+path, authed, editor, h.Create)
	}
}
