package handlers

import (
	"log/slog"

	"github.com/careerpoint/admin-backend/internal/dto"
	"github.com/careerpoint/admin-backend/internal/identity"
	"github.com/careerpoint/admin-backend/internal/models"
	"github.com/careerpoint/admin-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ReportHandler struct {
	moderation *services.ModerationService
	users      *services.UserService
	authz      *services.AuthzService
}

func NewReportHandler(moderation *services.ModerationService, users *services.UserService, authz *services.AuthzService) *ReportHandler {
	return &ReportHandler{moderation: moderation, users: users, authz: authz}
}

// CreateReport is the public intake: any authenticated user may file one.
func (h *ReportHandler) CreateReport(c *fiber.Ctx) error {
	reporterID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	reporter, err := h.users.GetUser(reporterID)
	if err != nil {
		return fail(c, err)
	}

	report, err := h.moderation.CreateReport(reporterID, reporter.UserType, &req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(report)
}

func (h *ReportHandler) ListReports(c *fiber.Ctx) error {
	status := c.Query("status", "")
	entityType := c.Query("entity_type", "")
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	reports, total, err := h.moderation.ListReports(status, entityType, limit, offset)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"reports": reports,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid report ID"))
	}

	report, err := h.moderation.GetReport(reportID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(report)
}

// ActionReport dispatches the moderation form's action field to the
// matching state transition.
func (h *ReportHandler) ActionReport(c *fiber.Ctx) error {
	adminID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Unauthorized"))
	}

	reportID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid report ID"))
	}

	var req dto.ReportActionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
	}

	// Suspension actions need their own capability on top of manage_reports
	if req.Action == "suspend_user" || req.Action == "unsuspend_user" {
		if !h.authz.HasPermission(adminID, "suspend_users") {
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("Access denied"))
		}
	}

	var message string
	switch req.Action {
	case "review":
		err = h.moderation.Review(reportID, adminID)
		message = "Report marked as " + models.ReportStatusUnderReview
	case "resolve":
		err = h.moderation.Resolve(reportID, adminID, req.AdminNotes)
		message = "Report resolved"
	case "dismiss":
		err = h.moderation.Dismiss(reportID, adminID, req.AdminNotes)
		message = "Report dismissed"
	case "suspend_user":
		err = h.moderation.SuspendUser(reportID, adminID, req.SuspensionDays, req.SuspensionReason)
		message = "User suspended and report updated"
	case "unsuspend_user":
		err = h.moderation.UnsuspendUser(reportID, adminID)
		message = "User unsuspended and report resolved"
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Unknown action"))
	}

	if err != nil {
		return fail(c, err)
	}

	slog.Info("report action applied",
		"action", req.Action, "report_id", reportID, "admin", identity.Email(c))
	return c.JSON(dto.OK(message))
}
