package handlers

import (
	"log/slog"

	"github.com/careerpoint/admin-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StatsHandler serves the dashboard counters. A failed counter is logged
// and reported as zero rather than failing the whole page.
type StatsHandler struct {
	db *gorm.DB
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{db: db}
}

type dashboardStats struct {
	TotalUsers     int64 `json:"total_users"`
	SuspendedUsers int64 `json:"suspended_users"`
	TotalJobs      int64 `json:"total_jobs"`
	ActiveJobs     int64 `json:"active_jobs"`
	OpenReports    int64 `json:"open_reports"`
}

func (h *StatsHandler) Dashboard(c *fiber.Ctx) error {
	var stats dashboardStats

	count := func(dst *int64, query *gorm.DB, what string) {
		if err := query.Count(dst).Error; err != nil {
			slog.Error("dashboard counter failed", "counter", what, "error", err)
		}
	}

	count(&stats.TotalUsers, h.db.Model(&models.User{}), "total_users")
	count(&stats.SuspendedUsers, h.db.Model(&models.User{}).Where("is_suspended = ?", true), "suspended_users")
	count(&stats.TotalJobs, h.db.Model(&models.Job{}), "total_jobs")
	count(&stats.ActiveJobs, h.db.Model(&models.Job{}).Where("status = ?", models.JobStatusActive), "active_jobs")
	count(&stats.OpenReports, h.db.Model(&models.Report{}).
		Where("status IN ?", []string{models.ReportStatusPending, models.ReportStatusUnderReview}), "open_reports")

	return c.JSON(stats)
}
