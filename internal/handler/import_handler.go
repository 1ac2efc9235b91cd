package handler

import (
	"siparhanud-backend/internal/middleware"
	"siparhanud-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type ImportHandler struct {
	usecase *usecase.ImportUsecase
}

func NewImportHandler(u *usecase.ImportUsecase) *ImportHandler {
	return &ImportHandler{usecase: u}
}

func (h *ImportHandler) ImportPersonel(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest("File wajib diunggah")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	res, err := h.usecase.ImportPersonel(c.UserContext(), middleware.CurrentUser(c), c.IP(), fileHeader.Filename, f)
	if err != nil {
		return err
	}
	return c.JSON(res)
}
