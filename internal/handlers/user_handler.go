package handlers

import (
	"github.com/careerpoint/admin-backend/internal/dto"
	"github.com/careerpoint/admin-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	q := dto.UserListQuery{
		UserType: c.Query("user_type", ""),
		Search:   c.Query("search", ""),
		Limit:    c.QueryInt("limit", 20),
		Offset:   c.QueryInt("offset", 0),
	}
	if raw := c.Query("suspended", ""); raw != "" {
		suspended := raw == "true" || raw == "1"
		q.Suspended = &suspended
	}

	users, total, err := h.users.ListUsers(&q)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"users":  users,
		"total":  total,
		"limit":  q.Limit,
		"offset": q.Offset,
	})
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid user ID"))
	}

	user, err := h.users.GetUser(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) AssignRole(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid user ID"))
	}

	var req dto.AssignRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	if err := h.users.AssignRole(userID, req.RoleID); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK("Role assignment updated"))
}
