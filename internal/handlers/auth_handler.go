package handlers

import (
	"errors"

	"github.com/careerpoint/admin-backend/internal/dto"
	"github.com/careerpoint/admin-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials),
			errors.Is(err, services.ErrNotStaff):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Invalid email or password"))
		case errors.Is(err, services.ErrAccountSuspended):
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("Account is suspended"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	resp, err := h.authService.Refresh(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) || errors.Is(err, services.ErrAccountSuspended) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	if err := h.authService.Logout(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Failed to logout"))
	}

	return c.JSON(dto.OK("Logged out successfully"))
}
