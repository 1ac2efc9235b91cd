package handler

import (
	"siparhanud-backend/internal/model"

	"github.com/gofiber/fiber/v2"
)

var roleLabels = map[string]string{
	model.RoleAdmin:     "Administrator",
	model.RoleStaff:     "Staf Personalia",
	model.RoleVerifier:  "Verifikator",
	model.RoleLeader:    "Pimpinan",
	model.RolePersonnel: "Personel",
}

// GetRoles mengembalikan daftar role tetap beserta labelnya.
func GetRoles(c *fiber.Ctx) error {
	roles := make([]fiber.Map, 0, len(model.Roles))
	for _, r := range model.Roles {
		roles = append(roles, fiber.Map{"kode": r, "nama": roleLabels[r]})
	}
	return c.JSON(fiber.Map{"data": roles})
}
