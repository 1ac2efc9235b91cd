package handler

import (
	"errors"

	"siparhanud-backend/internal/apperr"
	"siparhanud-backend/internal/audit"
	"siparhanud-backend/internal/logger"
	"siparhanud-backend/internal/middleware"
	"siparhanud-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// respondError menulis body {"message": ...} dengan status sesuai jenis error.
func respondError(c *fiber.Ctx, err error) error {
	return c.Status(apperr.Status(err)).JSON(fiber.Map{"message": apperr.Message(err)})
}

// ErrorHandler dipasang di fiber.Config. Error di luar taksonomi dicatat lalu dijawab 500.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
		}
		if !apperr.IsKnown(err) {
			log.Errorf(err, "%s %s gagal", c.Method(), c.Path())
		}
		return respondError(c, err)
	}
}

func badRequest(msg string) error {
	return apperr.Validation(msg)
}

func pageFrom(c *fiber.Ctx) repository.Page {
	return repository.Page{Skip: c.QueryInt("skip", 0), Limit: c.QueryInt("limit", 0)}.Normalize()
}

func list(c *fiber.Ctx, data interface{}, total int64, page repository.Page) error {
	return c.JSON(fiber.Map{
		"data":  data,
		"total": total,
		"skip":  page.Skip,
		"limit": page.Limit,
	})
}

func actor(c *fiber.Ctx) audit.Actor {
	return audit.ActorFrom(middleware.CurrentUser(c), c.IP())
}
