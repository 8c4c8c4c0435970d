package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/careerpoint/admin-backend/internal/apperr"
	"github.com/careerpoint/admin-backend/internal/dto"
	"github.com/careerpoint/admin-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Suspension windows are clamped into this range.
const (
	MinSuspensionDays = 1
	MaxSuspensionDays = 365
)

const defaultSuspensionReason = "Violation of platform policies"

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// ModerationService walks reports through their lifecycle:
// pending -> under_review -> resolved | dismissed | suspended, where
// suspended can still return to resolved via an explicit unsuspend.
// Every action that touches both the report and the target user runs in
// one transaction so the two rows always move together.
type ModerationService struct {
	db          *gorm.DB
	defaultDays int
}

func NewModerationService(db *gorm.DB, defaultSuspensionDays int) *ModerationService {
	return &ModerationService{db: db, defaultDays: defaultSuspensionDays}
}

func (s *ModerationService) CreateReport(reporterID uuid.UUID, reporterType string, req *dto.CreateReportRequest) (*models.Report, error) {
	if !models.ValidReportEntityType(req.ReportedEntityType) {
		return nil, apperr.Validation("invalid reported_entity_type %q", req.ReportedEntityType)
	}
	if !models.ValidReportReason(req.Reason) {
		return nil, apperr.Validation("invalid reason %q", req.Reason)
	}
	if req.ReportedEntityID == uuid.Nil {
		return nil, apperr.Validation("reported_entity_id is required")
	}

	report := models.Report{
		ID:                 uuid.New(),
		ReporterID:         reporterID,
		ReporterType:       reporterType,
		ReportedEntityType: req.ReportedEntityType,
		ReportedEntityID:   req.ReportedEntityID,
		Reason:             req.Reason,
		Description:        sanitize(req.Description),
		Status:             models.ReportStatusPending,
	}
	if err := s.db.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return &report, nil
}

// Review moves a pending report to under_review and stamps the reviewer.
func (s *ModerationService) Review(reportID, adminID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		report, err := loadReport(tx, reportID)
		if err != nil {
			return err
		}
		if report.Status != models.ReportStatusPending {
			return apperr.Validation("report is already %s", report.Status)
		}
		return markReviewed(tx, report, models.ReportStatusUnderReview, adminID, report.AdminNotes)
	})
}

// Resolve closes an open report with the given notes.
func (s *ModerationService) Resolve(reportID, adminID uuid.UUID, adminNotes string) error {
	return s.settle(reportID, adminID, models.ReportStatusResolved, adminNotes)
}

// Dismiss closes an open report without action against anyone.
func (s *ModerationService) Dismiss(reportID, adminID uuid.UUID, adminNotes string) error {
	return s.settle(reportID, adminID, models.ReportStatusDismissed, adminNotes)
}

func (s *ModerationService) settle(reportID, adminID uuid.UUID, status, adminNotes string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		report, err := loadReport(tx, reportID)
		if err != nil {
			return err
		}
		if !models.ReportStatusOpen(report.Status) {
			return apperr.Validation("report is already %s", report.Status)
		}
		return markReviewed(tx, report, status, adminID, sanitize(adminNotes))
	})
}

// SuspendUser resolves the reported user, suspends their account for the
// clamped number of days, revokes their sessions, and marks the report
// suspended. A zero days value means the form omitted the field; the
// configured default window applies.
func (s *ModerationService) SuspendUser(reportID, adminID uuid.UUID, days int, reason string) error {
	if days == 0 {
		days = s.defaultDays
	}
	days = ClampSuspensionDays(days)
	reason = sanitize(reason)
	if strings.TrimSpace(reason) == "" {
		reason = defaultSuspensionReason
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		report, err := loadReport(tx, reportID)
		if err != nil {
			return err
		}
		if report.Status == models.ReportStatusSuspended {
			return apperr.Validation("a suspension is already active for this report")
		}

		targetID, err := s.resolveTargetUser(tx, report)
		if err != nil {
			return err
		}

		now := time.Now()
		expires := now.AddDate(0, 0, days)
		updates := map[string]interface{}{
			"is_suspended":       true,
			"suspension_reason":  reason,
			"suspended_at":       now,
			"suspended_by":       adminID,
			"suspension_expires": expires,
		}
		result := tx.Model(&models.User{}).Where("id = ?", targetID).Updates(updates)
		if result.Error != nil {
			return fmt.Errorf("failed to suspend user: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperr.NotFound("target user not found")
		}

		// A suspended account must not keep usable sessions
		if err := tx.Model(&models.RefreshToken{}).
			Where("user_id = ? AND revoked = false", targetID).
			Update("revoked", true).Error; err != nil {
			return fmt.Errorf("failed to revoke sessions: %w", err)
		}

		note := fmt.Sprintf("[User suspended for %d day(s): %s]", days, reason)
		return markReviewed(tx, report, models.ReportStatusSuspended, adminID, appendNote(report.AdminNotes, note))
	})
}

// UnsuspendUser clears the target user's suspension fields and moves the
// report back to resolved, recording an unsuspend marker in admin_notes.
func (s *ModerationService) UnsuspendUser(reportID, adminID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		report, err := loadReport(tx, reportID)
		if err != nil {
			return err
		}
		if report.Status != models.ReportStatusSuspended && !strings.Contains(report.AdminNotes, "[User suspended") {
			return apperr.Validation("report has no active suspension")
		}

		targetID, err := s.resolveTargetUser(tx, report)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"is_suspended":       false,
			"suspension_reason":  nil,
			"suspended_at":       nil,
			"suspended_by":       nil,
			"suspension_expires": nil,
		}
		if err := tx.Model(&models.User{}).Where("id = ?", targetID).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to unsuspend user: %w", err)
		}

		// The front end pattern-matches on "[Unsuspended"; keep the marker.
		note := fmt.Sprintf("[Unsuspended on %s]", time.Now().Format("2006-01-02 15:04:05"))
		return markReviewed(tx, report, models.ReportStatusResolved, adminID, appendNote(report.AdminNotes, note))
	})
}

// ListReports returns the moderation table rows joined with reporter and
// reviewer display names.
func (s *ModerationService) ListReports(status, entityType string, limit, offset int) ([]dto.ReportRow, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	query := s.db.Model(&models.Report{})
	if status != "" {
		query = query.Where("reports.status = ?", status)
	}
	if entityType != "" {
		query = query.Where("reports.reported_entity_type = ?", entityType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reports: %w", err)
	}

	var rows []dto.ReportRow
	err := query.
		Select("reports.*, reporter.full_name AS reporter_name, reviewer.full_name AS reviewer_name").
		Joins("LEFT JOIN users AS reporter ON reporter.id = reports.reporter_id").
		Joins("LEFT JOIN users AS reviewer ON reviewer.id = reports.reviewed_by").
		Order("reports.created_at DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reports: %w", err)
	}
	return rows, total, nil
}

func (s *ModerationService) GetReport(reportID uuid.UUID) (*models.Report, error) {
	var report models.Report
	if err := s.db.First(&report, "id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("report not found")
		}
		return nil, fmt.Errorf("failed to load report: %w", err)
	}
	return &report, nil
}

// resolveTargetUser maps a report's entity reference to the user account
// any suspension applies to.
func (s *ModerationService) resolveTargetUser(tx *gorm.DB, report *models.Report) (uuid.UUID, error) {
	switch report.ReportedEntityType {
	case models.ReportEntityUser:
		return report.ReportedEntityID, nil
	case models.ReportEntityJob:
		var job models.Job
		if err := tx.First(&job, "id = ?", report.ReportedEntityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return uuid.Nil, apperr.Resolution("could not determine user to suspend")
			}
			return uuid.Nil, fmt.Errorf("failed to resolve job owner: %w", err)
		}
		return job.EmployerID, nil
	case models.ReportEntityApplication:
		var app models.Application
		if err := tx.First(&app, "id = ?", report.ReportedEntityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return uuid.Nil, apperr.Resolution("could not determine user to suspend")
			}
			return uuid.Nil, fmt.Errorf("failed to resolve applicant: %w", err)
		}
		return app.JobSeekerID, nil
	default:
		return uuid.Nil, apperr.Resolution("could not determine user to suspend")
	}
}

// loadReport fetches the report inside the caller's transaction. Concurrent
// moderation of the same report is last-write-wins.
func loadReport(tx *gorm.DB, reportID uuid.UUID) (*models.Report, error) {
	var report models.Report
	if err := tx.First(&report, "id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("report not found")
		}
		return nil, fmt.Errorf("failed to load report: %w", err)
	}
	return &report, nil
}

func markReviewed(tx *gorm.DB, report *models.Report, status string, adminID uuid.UUID, adminNotes string) error {
	now := time.Now()
	updates := map[string]interface{}{
		"status":      status,
		"admin_notes": adminNotes,
		"reviewed_by": adminID,
		"reviewed_at": now,
	}
	if err := tx.Model(&models.Report{}).Where("id = ?", report.ID).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update report: %w", err)
	}
	return nil
}

// ClampSuspensionDays forces a requested window into [1, 365].
func ClampSuspensionDays(days int) int {
	if days < MinSuspensionDays {
		return MinSuspensionDays
	}
	if days > MaxSuspensionDays {
		return MaxSuspensionDays
	}
	return days
}

func appendNote(existing, note string) string {
	existing = strings.TrimSpace(existing)
	if existing == "" {
		return note
	}
	return existing + "\n" + note
}

func sanitize(text string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(text, ""))
}
