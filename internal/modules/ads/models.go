package ads

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Banner placements recognized by the front end.
const (
	PlacementHome    = "home"
	PlacementSidebar = "sidebar"
	PlacementListing = "listing"
)

type Advertisement struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string     `gorm:"not null;size:255" json:"title"`
	ImageURL  string     `gorm:"size:500" json:"image_url"`
	TargetURL string     `gorm:"size:500" json:"target_url"`
	Placement string     `gorm:"size:50;not null;default:'sidebar';index" json:"placement"`
	StartsAt  *time.Time `json:"starts_at,omitempty"`
	EndsAt    *time.Time `json:"ends_at,omitempty"`
	IsActive  bool       `gorm:"not null;default:true;index" json:"is_active"`
	CreatedBy uuid.UUID  `gorm:"type:uuid" json:"created_by"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func ValidPlacement(p string) bool {
	switch p {
	case PlacementHome, PlacementSidebar, PlacementListing:
		return true
	}
	return false
}
