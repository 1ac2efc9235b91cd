package handler

import (
	"fmt"
	"time"

	"siparhanud-backend/internal/audit"
	"siparhanud-backend/internal/export"
	"siparhanud-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type ExportHandler struct {
	personel  repository.PersonelRepository
	dashboard repository.DashboardRepository
	audit     audit.Recorder
	now       func() time.Time
}

func NewExportHandler(personel repository.PersonelRepository, dashboard repository.DashboardRepository, recorder audit.Recorder) *ExportHandler {
	return &ExportHandler{
		personel:  personel,
		dashboard: dashboard,
		audit:     recorder,
		now:       time.Now,
	}
}

func exportFilter(c *fiber.Ctx) repository.PersonelFilter {
	return repository.PersonelFilter{
		Kategori: c.Query("kategori"),
		Pangkat:  c.Query("pangkat"),
		Satuan:   c.Query("satuan"),
		Status:   c.Query("status"),
	}
}

func sendFile(c *fiber.Ctx, filename, contentType string, data []byte) error {
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(data)
}

func (h *ExportHandler) PersonelExcel(c *fiber.Ctx) error {
	list, err := h.personel.ListAll(c.UserContext(), exportFilter(c))
	if err != nil {
		return err
	}

	data, err := export.PersonelExcel(list)
	if err != nil {
		return err
	}

	h.audit.Record(c.UserContext(), actor(c), audit.ActionExportPersonelExcel, audit.EntityExport, "", nil, fiber.Map{"total": len(list)})
	name := fmt.Sprintf("data_personel_%s.xlsx", h.now().Format("20060102_150405"))
	return sendFile(c, name, export.ContentTypeXLSX, data)
}

func (h *ExportHandler) PersonelPDF(c *fiber.Ctx) error {
	list, err := h.personel.ListAll(c.UserContext(), exportFilter(c))
	if err != nil {
		return err
	}

	at := h.now()
	data, err := export.PersonelPDF(list, "DAFTAR PERSONEL", at)
	if err != nil {
		return err
	}

	h.audit.Record(c.UserContext(), actor(c), audit.ActionExportPersonelPDF, audit.EntityExport, "", nil, fiber.Map{"total": len(list)})
	name := fmt.Sprintf("data_personel_%s.pdf", at.Format("20060102_150405"))
	return sendFile(c, name, export.ContentTypePDF, data)
}

func (h *ExportHandler) StatistikExcel(c *fiber.Ctx) error {
	stats, err := h.dashboard.GetDashboardStats(c.UserContext(), false)
	if err != nil {
		return err
	}

	data, err := export.StatistikExcel(stats)
	if err != nil {
		return err
	}

	h.audit.Record(c.UserContext(), actor(c), audit.ActionExportStatistikExcel, audit.EntityExport, "", nil, nil)
	name := fmt.Sprintf("statistik_personel_%s.xlsx", h.now().Format("20060102_150405"))
	return sendFile(c, name, export.ContentTypeXLSX, data)
}
