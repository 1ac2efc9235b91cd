package handler

import (
	"siparhanud-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type AuditHandler struct {
	repo repository.AuditRepository
}

func NewAuditHandler(repo repository.AuditRepository) *AuditHandler {
	return &AuditHandler{repo: repo}
}

func (h *AuditHandler) List(c *fiber.Ctx) error {
	page := pageFrom(c)
	logs, total, err := h.repo.List(c.UserContext(), repository.AuditFilter{
		EntityType: c.Query("entity_type"),
		EntityID:   c.Query("entity_id"),
		UserID:     c.Query("user_id"),
		Action:     c.Query("action"),
		Page:       page,
	})
	if err != nil {
		return err
	}
	return list(c, logs, total, page)
}
