package handler

import (
	"siparhanud-backend/internal/middleware"
	"siparhanud-backend/internal/model"
	"siparhanud-backend/internal/repository"
	"siparhanud-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type PengajuanHandler struct {
	usecase  *usecase.PengajuanUsecase
	repo     repository.PengajuanRepository
	personel repository.PersonelRepository
}

func NewPengajuanHandler(u *usecase.PengajuanUsecase, repo repository.PengajuanRepository, personel repository.PersonelRepository) *PengajuanHandler {
	return &PengajuanHandler{usecase: u, repo: repo, personel: personel}
}

func (h *PengajuanHandler) List(c *fiber.Ctx) error {
	page := pageFrom(c)
	data, total, err := h.usecase.List(c.UserContext(), middleware.CurrentUser(c), repository.PengajuanFilter{
		Status: c.Query("status"),
		Jenis:  c.Query("jenis"),
		NRP:    c.Query("nrp"),
		Page:   page,
	})
	if err != nil {
		return err
	}
	return list(c, data, total, page)
}

func (h *PengajuanHandler) Get(c *fiber.Ctx) error {
	req, err := h.usecase.Get(c.UserContext(), middleware.CurrentUser(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(req)
}

func (h *PengajuanHandler) Create(c *fiber.Ctx) error {
	var input usecase.CreatePengajuanInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest("Format data salah")
	}

	req, err := h.usecase.Create(c.UserContext(), middleware.CurrentUser(c), c.IP(), input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Pengajuan berhasil dibuat", "data": req})
}

type VerifyRequest struct {
	Status  string `json:"status"`
	Catatan string `json:"catatan"`
}

func (h *PengajuanHandler) Verify(c *fiber.Ctx) error {
	var input VerifyRequest
	if err := c.BodyParser(&input); err != nil {
		return badRequest("Format data salah")
	}

	req, err := h.usecase.Resolve(c.UserContext(), middleware.CurrentUser(c), c.IP(), c.Params("id"), input.Status, input.Catatan)
	if err != nil {
		return err
	}

	msg := "Pengajuan ditolak"
	if req.Status == model.PengajuanApproved {
		msg = "Pengajuan disetujui"
	}
	return c.JSON(fiber.Map{"message": msg, "data": req})
}

// Report mengembalikan pengajuan beserta nama dan pangkat personelnya.
func (h *PengajuanHandler) Report(c *fiber.Ctx) error {
	items, _, err := h.repo.List(c.UserContext(), repository.PengajuanFilter{
		Status: c.Query("status"),
		Jenis:  c.Query("jenis"),
		Page:   repository.Page{Limit: repository.MaxLimit},
	})
	if err != nil {
		return err
	}

	// Map NRP -> personel agar lookup tidak diulang
	people := map[string]*model.Personel{}
	data := make([]fiber.Map, 0, len(items))
	for _, it := range items {
		p, ok := people[it.NRP]
		if !ok {
			p, _ = h.personel.FindByNRP(c.UserContext(), it.NRP)
			people[it.NRP] = p
		}

		row := fiber.Map{"pengajuan": it, "nama_lengkap": "", "pangkat": ""}
		if p != nil {
			row["nama_lengkap"] = p.NamaLengkap
			row["pangkat"] = p.Pangkat
		}
		data = append(data, row)
	}
	return c.JSON(fiber.Map{"data": data, "total": len(data)})
}
