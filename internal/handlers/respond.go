package handlers

import (
	"log/slog"

	"github.com/careerpoint/admin-backend/internal/apperr"
	"github.com/careerpoint/admin-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// fail maps a service error to a status code and the contractual
// {success, message} body. Raw database error text never reaches the
// client; unclassified errors are logged and masked.
func fail(c *fiber.Ctx, err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindResolution:
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
	case apperr.KindForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail(err.Error()))
	case apperr.KindNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail(err.Error()))
	case apperr.KindConflict:
		return c.Status(fiber.StatusConflict).JSON(dto.Fail(err.Error()))
	default:
		slog.Error("unhandled service error", "method", c.Method(), "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}
}
