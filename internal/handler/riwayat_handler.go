package handler

import (
	"siparhanud-backend/internal/audit"
	"siparhanud-backend/internal/middleware"
	"siparhanud-backend/internal/model"
	"siparhanud-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type riwayatPtr[T any] interface {
	*T
	model.Riwayat
}

// RiwayatHandler melayani list dan create untuk satu jenis riwayat personel.
type RiwayatHandler[T any, P riwayatPtr[T]] struct {
	repo     repository.RiwayatRepository[T]
	personel repository.PersonelRepository
	audit    audit.Recorder
	entity   string
}

// NewRiwayatHandler membuat handler untuk entity seperti "riwayat_pangkat".
// Riwayat yang mengimplementasikan model.Promoting ikut memperbarui data personel.
func NewRiwayatHandler[T any, P riwayatPtr[T]](repo repository.RiwayatRepository[T], personel repository.PersonelRepository, recorder audit.Recorder, entity string) *RiwayatHandler[T, P] {
	return &RiwayatHandler[T, P]{repo: repo, personel: personel, audit: recorder, entity: entity}
}

func (h *RiwayatHandler[T, P]) List(c *fiber.Ctx) error {
	data, err := h.repo.ListByNRP(c.UserContext(), c.Params("nrp"))
	if err != nil {
		return err
	}
	return c.JSON(data)
}

func (h *RiwayatHandler[T, P]) Create(c *fiber.Ctx) error {
	nrp := c.Params("nrp")

	var rec T
	ptr := P(&rec)
	if err := c.BodyParser(ptr); err != nil {
		return badRequest("Format data salah")
	}
	// NRP dan id selalu dari server, bukan dari body
	ptr.Assign(nrp, middleware.CurrentUser(c).ID)

	if v, ok := any(ptr).(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return badRequest(err.Error())
		}
	}

	var err error
	if promoting, ok := any(ptr).(model.Promoting); ok {
		if rp, ok := any(ptr).(*model.RiwayatPangkat); ok && rp.PangkatLama == "" {
			if p, findErr := h.personel.FindByNRP(c.UserContext(), nrp); findErr == nil {
				rp.PangkatLama = p.Pangkat
			}
		}
		err = h.personel.RecordAndPromote(c.UserContext(), promoting)
	} else {
		err = h.repo.Create(c.UserContext(), &rec)
	}
	if err != nil {
		return err
	}

	h.audit.Record(c.UserContext(), actor(c), audit.CreateRiwayatAction(h.entity), h.entity, nrp, nil, ptr)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Data berhasil ditambahkan", "data": ptr})
}
