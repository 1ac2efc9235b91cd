// Package server merakit aplikasi fiber lengkap dengan middleware global dan semua route.
package server

import (
	"time"

	"siparhanud-backend/internal/handler"
	"siparhanud-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// multipartOverhead memberi ruang untuk boundary dan field form di atas ukuran file.
const multipartOverhead = 1 << 20

type Options struct {
	// AccessLog menyalakan log request fiber. Dimatikan di test.
	AccessLog bool
}

func New(d *routes.Dependencies, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "SIPARHANUD API",
		BodyLimit:    d.Config.MaxUploadBytes() + multipartOverhead,
		ErrorHandler: handler.ErrorHandler(d.Log),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	})

	// Middleware Global
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: d.Config.CORSOrigins}))
	if opts.AccessLog {
		app.Use(fiberlogger.New())
	}

	api := app.Group(d.Config.APIPrefix)
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "SIPARHANUD API", "version": "1.0.0"})
	})
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	routes.Setup(api, d)

	return app
}
