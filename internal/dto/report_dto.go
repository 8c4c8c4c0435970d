package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateReportRequest struct {
	ReportedEntityType string    `json:"reported_entity_type"`
	ReportedEntityID   uuid.UUID `json:"reported_entity_id"`
	Reason             string    `json:"reason"`
	Description        string    `json:"description"`
}

// ReportActionRequest carries the form fields of the admin report panel.
// Action is one of review, resolve, dismiss, suspend_user, unsuspend_user.
type ReportActionRequest struct {
	Action           string `json:"action"`
	AdminNotes       string `json:"admin_notes"`
	SuspensionDays   int    `json:"suspension_days"`
	SuspensionReason string `json:"suspension_reason"`
}

// ReportRow is the list projection: report columns plus reporter and
// reviewer display names for the table view.
type ReportRow struct {
	ID                 uuid.UUID  `json:"id"`
	ReporterID         uuid.UUID  `json:"reporter_id"`
	ReporterName       string     `json:"reporter_name"`
	ReporterType       string     `json:"reporter_type"`
	ReportedEntityType string     `json:"reported_entity_type"`
	ReportedEntityID   uuid.UUID  `json:"reported_entity_id"`
	Reason             string     `json:"reason"`
	Description        string     `json:"description"`
	Status             string     `json:"status"`
	AdminNotes         string     `json:"admin_notes"`
	ReviewerName       string     `json:"reviewer_name,omitempty"`
	ReviewedAt         *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}
