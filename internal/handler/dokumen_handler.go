package handler

import (
	"io"

	"siparhanud-backend/internal/middleware"
	"siparhanud-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type DokumenHandler struct {
	usecase  *usecase.DokumenUsecase
	maxBytes int64
}

func NewDokumenHandler(u *usecase.DokumenUsecase, maxBytes int64) *DokumenHandler {
	return &DokumenHandler{usecase: u, maxBytes: maxBytes}
}

func (h *DokumenHandler) List(c *fiber.Ctx) error {
	docs, err := h.usecase.List(c.UserContext(), middleware.CurrentUser(c), c.Params("nrp"))
	if err != nil {
		return err
	}
	return c.JSON(docs)
}

// formOrQuery membaca nilai dari query string, atau dari field multipart jika query kosong.
func formOrQuery(c *fiber.Ctx, key string) string {
	if v := c.Query(key); v != "" {
		return v
	}
	return c.FormValue(key)
}

func (h *DokumenHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest("File wajib diunggah")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	// Baca satu byte lebih dari batas agar file yang kebesaran tetap terdeteksi
	data, err := io.ReadAll(io.LimitReader(f, h.maxBytes+1))
	if err != nil {
		return err
	}

	doc, err := h.usecase.Upload(c.UserContext(), middleware.CurrentUser(c), c.IP(), usecase.UploadInput{
		NRP:          c.Params("nrp"),
		JenisDokumen: formOrQuery(c, "jenis_dokumen"),
		Keterangan:   formOrQuery(c, "keterangan"),
		FileName:     fileHeader.Filename,
		ContentType:  fileHeader.Header.Get(fiber.HeaderContentType),
		Data:         data,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Dokumen berhasil diunggah", "data": doc})
}

func (h *DokumenHandler) Download(c *fiber.Ctx) error {
	doc, data, err := h.usecase.Download(c.UserContext(), middleware.CurrentUser(c), c.Params("id"))
	if err != nil {
		return err
	}

	c.Attachment(doc.NamaFile)
	if doc.ContentType != "" {
		c.Set(fiber.HeaderContentType, doc.ContentType)
	}
	return c.Send(data)
}

func (h *DokumenHandler) Delete(c *fiber.Ctx) error {
	if err := h.usecase.Delete(c.UserContext(), middleware.CurrentUser(c), c.IP(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Dokumen berhasil dihapus"})
}
