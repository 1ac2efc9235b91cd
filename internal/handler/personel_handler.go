package handler

import (
	"strings"

	"siparhanud-backend/internal/audit"
	"siparhanud-backend/internal/auth"
	"siparhanud-backend/internal/middleware"
	"siparhanud-backend/internal/model"
	"siparhanud-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type PersonelHandler struct {
	repo  repository.PersonelRepository
	audit audit.Recorder
}

func NewPersonelHandler(repo repository.PersonelRepository, recorder audit.Recorder) *PersonelHandler {
	return &PersonelHandler{repo: repo, audit: recorder}
}

// PersonelInput adalah kolom yang boleh diisi klien. NRP hanya dipakai saat create.
type PersonelInput struct {
	NRP             string  `json:"nrp"`
	NamaLengkap     *string `json:"nama_lengkap"`
	Kategori        *string `json:"kategori"`
	Pangkat         *string `json:"pangkat"`
	Korps           *string `json:"korps"`
	JabatanSekarang *string `json:"jabatan_sekarang"`
	SatuanInduk     *string `json:"satuan_induk"`
	StatusPersonel  *string `json:"status_personel"`
	TempatLahir     *string `json:"tempat_lahir"`
	TanggalLahir    *string `json:"tanggal_lahir"`
	JenisKelamin    *string `json:"jenis_kelamin"`
	Agama           *string `json:"agama"`
	TmtMasukDinas   *string `json:"tmt_masuk_dinas"`
	TmtPangkat      *string `json:"tmt_pangkat"`
	TmtJabatan      *string `json:"tmt_jabatan"`
	Prestasi        *string `json:"prestasi"`
	Dikbangum       *string `json:"dikbangum"`
	Dikbangspes     *string `json:"dikbangspes"`
}

// fields mengembalikan kolom yang dikirim klien saja.
func (in PersonelInput) fields() (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	set := func(col string, v *string) {
		if v != nil {
			fields[col] = strings.TrimSpace(*v)
		}
	}
	set("nama_lengkap", in.NamaLengkap)
	set("kategori", in.Kategori)
	set("pangkat", in.Pangkat)
	set("korps", in.Korps)
	set("jabatan_sekarang", in.JabatanSekarang)
	set("satuan_induk", in.SatuanInduk)
	set("status_personel", in.StatusPersonel)
	set("tempat_lahir", in.TempatLahir)
	set("tanggal_lahir", in.TanggalLahir)
	set("jenis_kelamin", in.JenisKelamin)
	set("agama", in.Agama)
	set("tmt_masuk_dinas", in.TmtMasukDinas)
	set("tmt_pangkat", in.TmtPangkat)
	set("tmt_jabatan", in.TmtJabatan)
	set("prestasi", in.Prestasi)
	set("dikbangum", in.Dikbangum)
	set("dikbangspes", in.Dikbangspes)

	if v, ok := fields["kategori"].(string); ok && v != "" && !model.ValidKategori(v) {
		return nil, badRequest("kategori tidak valid")
	}
	if v, ok := fields["status_personel"].(string); ok && !model.ValidStatusPersonel(v) {
		return nil, badRequest("status_personel tidak valid")
	}
	if v, ok := fields["nama_lengkap"].(string); ok && v == "" {
		return nil, badRequest("nama_lengkap wajib diisi")
	}
	return fields, nil
}

func str(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}

func (in PersonelInput) personel() *model.Personel {
	return &model.Personel{
		NRP:             strings.TrimSpace(in.NRP),
		NamaLengkap:     str(in.NamaLengkap),
		Kategori:        str(in.Kategori),
		Pangkat:         str(in.Pangkat),
		Korps:           str(in.Korps),
		JabatanSekarang: str(in.JabatanSekarang),
		SatuanInduk:     str(in.SatuanInduk),
		StatusPersonel:  str(in.StatusPersonel),
		TempatLahir:     str(in.TempatLahir),
		TanggalLahir:    str(in.TanggalLahir),
		JenisKelamin:    str(in.JenisKelamin),
		Agama:           str(in.Agama),
		TmtMasukDinas:   str(in.TmtMasukDinas),
		TmtPangkat:      str(in.TmtPangkat),
		TmtJabatan:      str(in.TmtJabatan),
		Prestasi:        str(in.Prestasi),
		Dikbangum:       str(in.Dikbangum),
		Dikbangspes:     str(in.Dikbangspes),
	}
}

func personelFilter(c *fiber.Ctx, user *model.User) repository.PersonelFilter {
	filter := repository.PersonelFilter{
		Search:   c.Query("search"),
		Kategori: c.Query("kategori"),
		Pangkat:  c.Query("pangkat"),
		Satuan:   c.Query("satuan"),
		Status:   c.Query("status"),
		Page:     pageFrom(c),
	}
	filter.ScopeNRP, filter.Scoped = auth.ScopeNRP(user)
	return filter
}

func (h *PersonelHandler) List(c *fiber.Ctx) error {
	filter := personelFilter(c, middleware.CurrentUser(c))
	data, total, err := h.repo.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return list(c, data, total, filter.Page)
}

func (h *PersonelHandler) Get(c *fiber.Ctx) error {
	p, err := h.repo.FindByNRP(c.UserContext(), c.Params("nrp"))
	if err != nil {
		return err
	}
	return c.JSON(p)
}

func (h *PersonelHandler) Create(c *fiber.Ctx) error {
	var input PersonelInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest("Format data salah")
	}
	if strings.TrimSpace(input.NRP) == "" || str(input.NamaLengkap) == "" {
		return badRequest("nrp dan nama_lengkap wajib diisi")
	}
	if _, err := input.fields(); err != nil {
		return err
	}

	p := input.personel()
	p.CreatedBy = middleware.CurrentUser(c).ID
	if err := h.repo.Create(c.UserContext(), p); err != nil {
		return err
	}

	h.audit.Record(c.UserContext(), actor(c), audit.ActionCreatePersonel, audit.EntityPersonel, p.NRP, nil, p)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Personel berhasil ditambahkan", "data": p})
}

// Update mengubah data personel secara langsung (di luar alur pengajuan).
func (h *PersonelHandler) Update(c *fiber.Ctx) error {
	nrp := c.Params("nrp")

	var input PersonelInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest("Format data salah")
	}
	if input.NRP != "" && input.NRP != nrp {
		return badRequest("NRP tidak dapat diubah")
	}
	fields, err := input.fields()
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return badRequest("Tidak ada data yang diubah")
	}

	before, err := h.repo.FindByNRP(c.UserContext(), nrp)
	if err != nil {
		return err
	}
	fields["updated_by"] = middleware.CurrentUser(c).ID

	after, err := h.repo.Update(c.UserContext(), nrp, fields)
	if err != nil {
		return err
	}

	h.audit.Record(c.UserContext(), actor(c), audit.ActionUpdatePersonel, audit.EntityPersonel, nrp, before, after)
	return c.JSON(fiber.Map{"message": "Personel berhasil diperbarui", "data": after})
}
