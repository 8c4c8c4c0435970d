package payments

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/careerpoint/admin-backend/internal/apperr"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// All returns every setting decoded to its declared type, keyed by name.
func (s *Service) All() (map[string]interface{}, error) {
	var settings []Setting
	if err := s.db.Order("key ASC").Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch payment settings: %w", err)
	}

	result := make(map[string]interface{}, len(settings))
	for _, setting := range settings {
		result[setting.Key] = decode(&setting)
	}
	return result, nil
}

func (s *Service) List() ([]Setting, error) {
	var settings []Setting
	if err := s.db.Order("key ASC").Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch payment settings: %w", err)
	}
	return settings, nil
}

// Set upserts one setting by key.
func (s *Service) Set(key, value, valueType string, updatedBy uuid.UUID) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return apperr.Validation("setting key is required")
	}
	if value == "" {
		return apperr.Validation("setting value is required")
	}
	if valueType == "" {
		valueType = TypeString
	}
	if !ValidType(valueType) {
		return apperr.Validation("invalid setting type %q", valueType)
	}

	var existing Setting
	err := s.db.Where("key = ?", key).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting := Setting{
			ID:        uuid.New(),
			Key:       key,
			Value:     value,
			Type:      valueType,
			UpdatedBy: updatedBy,
		}
		if err := s.db.Create(&setting).Error; err != nil {
			return fmt.Errorf("failed to create payment setting: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check payment setting: %w", err)
	}

	updates := map[string]interface{}{
		"value":      value,
		"type":       valueType,
		"updated_by": updatedBy,
	}
	if err := s.db.Model(&Setting{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update payment setting: %w", err)
	}
	return nil
}

func (s *Service) Delete(key string) error {
	result := s.db.Where("key = ?", key).Delete(&Setting{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete payment setting: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("payment setting not found")
	}
	return nil
}

func decode(setting *Setting) interface{} {
	switch setting.Type {
	case TypeBool:
		v, _ := strconv.ParseBool(setting.Value)
		return v
	case TypeInt:
		v, _ := strconv.Atoi(setting.Value)
		return v
	case TypeJSON:
		var v interface{}
		if err := json.Unmarshal([]byte(setting.Value), &v); err != nil {
			return setting.Value
		}
		return v
	default:
		return setting.Value
	}
}
