package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User type discriminator values.
const (
	UserTypeAdmin     = "admin"
	UserTypeEmployer  = "employer"
	UserTypeJobSeeker = "job_seeker"
)

// User covers all three account kinds. AdminRoleID is only meaningful for
// admin-typed users; a nil role means no elevated permission.
type User struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email       string     `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password    string     `gorm:"not null" json:"-"`
	FullName    string     `gorm:"size:255" json:"full_name"`
	UserType    string     `gorm:"size:20;not null;default:'job_seeker';index" json:"user_type"`
	AdminRoleID *uuid.UUID `gorm:"type:uuid;index" json:"admin_role_id,omitempty"`
	AdminRole   *Role      `gorm:"foreignKey:AdminRoleID" json:"-"`

	// Suspension fields move together: IsSuspended implies SuspendedAt and
	// SuspendedBy are set; unsuspending clears all four.
	IsSuspended       bool       `gorm:"not null;default:false;index" json:"is_suspended"`
	SuspensionReason  *string    `gorm:"size:500" json:"suspension_reason,omitempty"`
	SuspendedAt       *time.Time `json:"suspended_at,omitempty"`
	SuspendedBy       *uuid.UUID `gorm:"type:uuid" json:"suspended_by,omitempty"`
	SuspensionExpires *time.Time `json:"suspension_expires,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
