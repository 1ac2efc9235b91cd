package handler

import (
	"siparhanud-backend/internal/middleware"
	"siparhanud-backend/internal/model"
	"siparhanud-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	repo repository.DashboardRepository
}

func NewDashboardHandler(repo repository.DashboardRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	// Aktivitas terakhir hanya untuk admin dan pimpinan
	role := middleware.CurrentUser(c).Role
	withActivities := role == model.RoleAdmin || role == model.RoleLeader

	stats, err := h.repo.GetDashboardStats(c.UserContext(), withActivities)
	if err != nil {
		return err
	}

	return c.JSON(stats)
}
