package handlers

import (
	"fmt"

	"github.com/careerpoint/admin-backend/internal/dto"
	"github.com/careerpoint/admin-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RoleHandler exposes role/permission management. Routes are mounted
// behind the super-admin gate; the service re-checks the protected role.
type RoleHandler struct {
	authz *services.AuthzService
}

func NewRoleHandler(authz *services.AuthzService) *RoleHandler {
	return &RoleHandler{authz: authz}
}

func (h *RoleHandler) ListRoles(c *fiber.Ctx) error {
	roles, err := h.authz.ListRoles()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"roles": roles})
}

func (h *RoleHandler) GetRole(c *fiber.Ctx) error {
	roleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid role ID"))
	}

	role, err := h.authz.GetRole(roleID)
	if err != nil {
		return fail(c, err)
	}

	users, err := h.authz.CountRoleUsers(roleID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"role": role, "user_count": users})
}

func (h *RoleHandler) ListPermissions(c *fiber.Ctx) error {
	perms, err := h.authz.ListPermissions()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"permissions": perms})
}

func (h *RoleHandler) CreateRole(c *fiber.Ctx) error {
	var req dto.CreateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	role, err := h.authz.CreateRole(&req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Role created successfully",
		"role_id": role.ID,
	})
}

func (h *RoleHandler) UpdateRole(c *fiber.Ctx) error {
	roleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid role ID"))
	}

	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	if err := h.authz.UpdateRole(roleID, &req); err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.OK("Role updated successfully"))
}

func (h *RoleHandler) DeleteRole(c *fiber.Ctx) error {
	roleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid role ID"))
	}

	if err := h.authz.DeleteRole(roleID); err != nil {
		return fail(c, err)
	}

	return c.JSON(dto.OK("Role deleted successfully"))
}

func (h *RoleHandler) ToggleRoleStatus(c *fiber.Ctx) error {
	roleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid role ID"))
	}

	active, err := h.authz.ToggleRoleStatus(roleID)
	if err != nil {
		return fail(c, err)
	}

	state := "deactivated"
	if active {
		state = "activated"
	}
	return c.JSON(dto.OK(fmt.Sprintf("Role %s successfully", state)))
}
