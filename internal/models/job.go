package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Job posting statuses.
const (
	JobStatusPending = "pending"
	JobStatusActive  = "active"
	JobStatusClosed  = "closed"
)

type Job struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EmployerID  uuid.UUID `gorm:"type:uuid;not null;index" json:"employer_id"`
	Title       string    `gorm:"not null;size:255" json:"title"`
	CompanyName string    `gorm:"size:255" json:"company_name"`
	Location    string    `gorm:"size:255" json:"location"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Status      string    `gorm:"size:20;not null;default:'pending';index" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Employer User `gorm:"foreignKey:EmployerID" json:"-"`
}

// Application links a job seeker to a job. Needed by report moderation to
// resolve the submitting seeker when a report targets an application.
type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	JobID       uuid.UUID `gorm:"type:uuid;not null;index" json:"job_id"`
	JobSeekerID uuid.UUID `gorm:"type:uuid;not null;index" json:"job_seeker_id"`
	Status      string    `gorm:"size:20;not null;default:'submitted'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Job       Job  `gorm:"foreignKey:JobID" json:"-"`
	JobSeeker User `gorm:"foreignKey:JobSeekerID" json:"-"`
}
