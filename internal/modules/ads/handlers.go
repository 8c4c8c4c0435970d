package ads

import (
	"log/slog"

	"github.com/careerpoint/admin-backend/internal/apperr"
	"github.com/careerpoint/admin-backend/internal/dto"
	"github.com/careerpoint/admin-backend/internal/identity"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *fiber.Ctx) error {
	placement := c.Query("placement", "")
	activeOnly := c.Query("active", "") == "true"
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	list, total, err := h.service.List(placement, activeOnly, limit, offset)
	if err != nil {
		return failErr(c, err)
	}

	return c.JSON(fiber.Map{
		"advertisements": list,
		"total":          total,
		"limit":          limit,
		"offset":         offset,
	})
}

func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid advertisement ID"))
	}

	ad, err := h.service.Get(id)
	if err != nil {
		return failErr(c, err)
	}
	return c.JSON(ad)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	adminID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	var req SaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	ad, err := h.service.Create(adminID, &req)
	if err != nil {
		return failErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ad)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid advertisement ID"))
	}

	var req SaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	if err := h.service.Update(id, &req); err != nil {
		return failErr(c, err)
	}
	return c.JSON(dto.OK("Advertisement updated"))
}

func (h *Handler) Toggle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid advertisement ID"))
	}

	active, err := h.service.ToggleActive(id)
	if err != nil {
		return failErr(c, err)
	}

	message := "Advertisement deactivated"
	if active {
		message = "Advertisement activated"
	}
	return c.JSON(dto.OK(message))
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid advertisement ID"))
	}

	if err := h.service.Delete(id); err != nil {
		return failErr(c, err)
	}
	return c.JSON(dto.OK("Advertisement deleted"))
}

func failErr(c *fiber.Ctx, err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
	case apperr.KindNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail(err.Error()))
	default:
		slog.Error("ads module error", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}
}
