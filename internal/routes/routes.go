package routes

import (
	"siparhanud-backend/config"
	"siparhanud-backend/internal/audit"
	"siparhanud-backend/internal/auth"
	"siparhanud-backend/internal/logger"
	"siparhanud-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Dependencies dibangun sekali di cmd/api lalu dibagikan ke semua route.
type Dependencies struct {
	DB     *gorm.DB
	Config *config.Config
	Tokens *auth.TokenService
	Guard  *auth.Guard
	Audit  *audit.Logger
	Store  storage.BlobStore
	Log    *logger.Logger
}

// Setup memasang semua route di bawah router api (biasanya group /api).
func Setup(api fiber.Router, d *Dependencies) {
	SetupAuthRoutes(api, d)
	SetupUserRoutes(api, d)
	SetupPersonelRoutes(api, d)
	SetupDokumenRoutes(api, d)
	SetupPengajuanRoutes(api, d)
	SetupExportRoutes(api, d)
	SetupImportRoutes(api, d)
	SetupAuditRoutes(api, d)
	SetupDashboardRoutes(api, d)
	SetupReferensiRoutes(api, d)
	SetupRoleRoutes(api, d)
}
