package models

import (
	"time"

	"github.com/google/uuid"
)

// Report statuses. Pending and under_review are open; the rest are
// settled, except that suspended can still move to resolved via an
// explicit unsuspend.
const (
	ReportStatusPending     = "pending"
	ReportStatusUnderReview = "under_review"
	ReportStatusResolved    = "resolved"
	ReportStatusDismissed   = "dismissed"
	ReportStatusSuspended   = "suspended"
)

// Kinds of entity a report can target.
const (
	ReportEntityJob         = "job"
	ReportEntityUser        = "user"
	ReportEntityCompany     = "company"
	ReportEntityApplication = "application"
	ReportEntityOther       = "other"
)

// Accepted report reasons.
var ReportReasons = []string{
	"fake_profile", "fake_job", "inappropriate_content",
	"harassment", "spam", "scam", "other",
}

type Report struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ReporterID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"reporter_id"`
	ReporterType       string     `gorm:"size:20;not null" json:"reporter_type"`
	ReportedEntityType string     `gorm:"size:20;not null;index" json:"reported_entity_type"`
	ReportedEntityID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"reported_entity_id"`
	Reason             string     `gorm:"size:50;not null" json:"reason"`
	Description        string     `gorm:"size:2000" json:"description,omitempty"`
	Status             string     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	AdminNotes         string     `gorm:"type:text" json:"admin_notes,omitempty"`
	ReviewedBy         *uuid.UUID `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt         *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	Reporter User  `gorm:"foreignKey:ReporterID" json:"-"`
	Reviewer *User `gorm:"foreignKey:ReviewedBy" json:"-"`
}

// Open reports a status an admin action may still move forward.
func ReportStatusOpen(status string) bool {
	return status == ReportStatusPending || status == ReportStatusUnderReview
}

func ValidReportEntityType(t string) bool {
	switch t {
	case ReportEntityJob, ReportEntityUser, ReportEntityCompany,
		ReportEntityApplication, ReportEntityOther:
		return true
	}
	return false
}

func ValidReportReason(r string) bool {
	for _, known := range ReportReasons {
		if r == known {
			return true
		}
	}
	return false
}
