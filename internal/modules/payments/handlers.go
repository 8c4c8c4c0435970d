package payments

import (
	"log/slog"

	"github.com/careerpoint/admin-backend/internal/apperr"
	"github.com/careerpoint/admin-backend/internal/dto"
	"github.com/careerpoint/admin-backend/internal/identity"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *fiber.Ctx) error {
	settings, err := h.service.List()
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(fiber.Map{"settings": settings})
}

func (h *Handler) Set(c *fiber.Ctx) error {
	adminID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	key := c.Params("key", "")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Key parameter is required"))
	}

	var payload struct {
		Value string `json:"value"`
		Type  string `json:"type"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	if err := h.service.Set(key, payload.Value, payload.Type, adminID); err != nil {
		return failErr(c, err)
	}
	return c.JSON(dto.OK("Setting saved"))
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	key := c.Params("key", "")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Key parameter is required"))
	}

	if err := h.service.Delete(key); err != nil {
		return failErr(c, err)
	}
	return c.JSON(dto.OK("Setting deleted"))
}

func failErr(c *fiber.Ctx, err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
	case apperr.KindNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail(err.Error()))
	default:
		slog.Error("payments module error", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}
}
