package handler

import (
	"strings"

	"siparhanud-backend/internal/audit"
	"siparhanud-backend/internal/model"
	"siparhanud-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type ReferensiHandler struct {
	repo  repository.ReferensiRepository
	audit audit.Recorder
}

func NewReferensiHandler(repo repository.ReferensiRepository, recorder audit.Recorder) *ReferensiHandler {
	return &ReferensiHandler{repo: repo, audit: recorder}
}

type ReferensiRequest struct {
	Kode      *string `json:"kode"`
	Nama      *string `json:"nama"`
	Golongan  *string `json:"golongan"`
	Kategori  *string `json:"kategori"`
	Urutan    *int    `json:"urutan"`
	Tingkat   *string `json:"tingkat"`
	Induk     *string `json:"induk"`
	Deskripsi *string `json:"deskripsi"`
}

func tipeParam(c *fiber.Ctx) (string, error) {
	tipe := c.Params("tipe")
	if !model.ValidReferensiTipe(tipe) {
		return "", badRequest("Tipe referensi tidak dikenal")
	}
	return tipe, nil
}

func (h *ReferensiHandler) List(c *fiber.Ctx) error {
	tipe, err := tipeParam(c)
	if err != nil {
		return err
	}
	data, err := h.repo.ListByTipe(c.UserContext(), tipe)
	if err != nil {
		return err
	}
	return c.JSON(data)
}

func (h *ReferensiHandler) Create(c *fiber.Ctx) error {
	tipe, err := tipeParam(c)
	if err != nil {
		return err
	}

	var req ReferensiRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest("Data tidak valid")
	}
	if str(req.Kode) == "" || str(req.Nama) == "" {
		return badRequest("kode dan nama wajib diisi")
	}

	ref := &model.Referensi{
		Tipe:      tipe,
		Kode:      str(req.Kode),
		Nama:      str(req.Nama),
		Golongan:  str(req.Golongan),
		Kategori:  str(req.Kategori),
		Tingkat:   str(req.Tingkat),
		Induk:     str(req.Induk),
		Deskripsi: str(req.Deskripsi),
	}
	if req.Urutan != nil {
		ref.Urutan = *req.Urutan
	}
	if err := h.repo.Create(c.UserContext(), ref); err != nil {
		return err
	}

	h.audit.Record(c.UserContext(), actor(c), audit.ActionCreateReferensi, audit.EntityReferensi, ref.ID, nil, ref)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Data referensi berhasil ditambahkan", "data": ref})
}

func (h *ReferensiHandler) Update(c *fiber.Ctx) error {
	tipe, err := tipeParam(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var req ReferensiRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest("Data tidak valid")
	}

	fields := map[string]interface{}{}
	for col, v := range map[string]*string{
		"kode": req.Kode, "nama": req.Nama, "golongan": req.Golongan, "kategori": req.Kategori,
		"tingkat": req.Tingkat, "induk": req.Induk, "deskripsi": req.Deskripsi,
	} {
		if v != nil {
			fields[col] = strings.TrimSpace(*v)
		}
	}
	if req.Urutan != nil {
		fields["urutan"] = *req.Urutan
	}
	if len(fields) == 0 {
		return badRequest("Tidak ada data yang diubah")
	}

	before, err := h.repo.FindByID(c.UserContext(), tipe, id)
	if err != nil {
		return err
	}
	after, err := h.repo.Update(c.UserContext(), tipe, id, fields)
	if err != nil {
		return err
	}

	h.audit.Record(c.UserContext(), actor(c), audit.ActionUpdateReferensi, audit.EntityReferensi, id, before, after)
	return c.JSON(fiber.Map{"message": "Data referensi berhasil diperbarui", "data": after})
}

func (h *ReferensiHandler) Delete(c *fiber.Ctx) error {
	tipe, err := tipeParam(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	before, err := h.repo.FindByID(c.UserContext(), tipe, id)
	if err != nil {
		return err
	}
	if err := h.repo.Delete(c.UserContext(), tipe, id); err != nil {
		return err
	}

	h.audit.Record(c.UserContext(), actor(c), audit.ActionDeleteReferensi, audit.EntityReferensi, id, before, nil)
	return c.JSON(fiber.Map{"message": "Data referensi berhasil dihapus"})
}
