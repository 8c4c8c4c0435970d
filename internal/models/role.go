package models

import (
	"time"

	"github.com/google/uuid"
)

// SuperAdminSlug marks the one immutable role. It cannot be edited,
// toggled, or deleted, and holders bypass granular permission checks.
const SuperAdminSlug = "super_admin"

type Role struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null;size:100" json:"name"`
	Slug        string    `gorm:"not null;size:100;uniqueIndex" json:"slug"`
	Description string    `gorm:"size:500" json:"description,omitempty"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Permissions []Permission `gorm:"many2many:role_permissions;joinForeignKey:RoleID;joinReferences:PermissionID" json:"permissions,omitempty"`
}

func (r *Role) IsSuperAdmin() bool {
	return r.Slug == SuperAdminSlug
}

// Permission is seeded reference data; the admin surface never creates
// permissions, only assigns them to roles.
type Permission struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:100" json:"name"`
	Slug      string    `gorm:"not null;size:100;uniqueIndex" json:"slug"`
	Module    string    `gorm:"not null;size:50;index" json:"module"`
	CreatedAt time.Time `json:"created_at"`
}

// RolePermission is the join row. A role's set is always replaced whole
// (delete-all-then-insert) inside one transaction.
type RolePermission struct {
	RoleID       uuid.UUID  `gorm:"type:uuid;primaryKey" json:"role_id"`
	PermissionID uuid.UUID  `gorm:"type:uuid;primaryKey" json:"permission_id"`
	Role         Role       `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE" json:"-"`
	Permission   Permission `gorm:"foreignKey:PermissionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}
