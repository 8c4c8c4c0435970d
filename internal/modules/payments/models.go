package payments

import (
	"time"

	"github.com/google/uuid"
)

// Value types a setting can declare.
const (
	TypeString = "string"
	TypeBool   = "bool"
	TypeInt    = "int"
	TypeJSON   = "json"
)

// Setting is one payment configuration row (gateway keys, plan pricing,
// currency). Values are stored as strings and decoded by declared type.
type Setting struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Key       string    `gorm:"not null;size:100;uniqueIndex" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	Type      string    `gorm:"size:10;not null;default:'string'" json:"type"`
	UpdatedBy uuid.UUID `gorm:"type:uuid" json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "payment_settings"
}

func ValidType(t string) bool {
	switch t {
	case TypeString, TypeBool, TypeInt, TypeJSON:
		return true
	}
	return false
}
