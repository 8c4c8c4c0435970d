package ads

import (
	"errors"
	"fmt"
	"strings"
	"time"

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

type SaveRequest struct {
	Title     string     `json:"title"`
	ImageURL  string     `json:"image_url"`
	TargetURL string     `json:"target_url"`
	Placement string     `json:"placement"`
	StartsAt  *time.Time `json:"starts_at"`
	EndsAt    *time.Time `json:"ends_at"`
}

func (r *SaveRequest) validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return apperr.Validation("title is required")
	}
	if r.Placement == "" {
		r.Placement = PlacementSidebar
	}
	if !ValidPlacement(r.Placement) {
		return apperr.Validation("invalid placement %q", r.Placement)
	}
	if r.StartsAt != nil && r.EndsAt != nil && r.EndsAt.Before(*r.StartsAt) {
		return apperr.Validation("ends_at must be after starts_at")
	}
	return nil
}

func (s *Service) List(placement string, activeOnly bool, limit, offset int) ([]Advertisement, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	query := s.db.Model(&Advertisement{})
	if placement != "" {
		query = query.Where("placement = ?", placement)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count advertisements: %w", err)
	}

	var list []Advertisement
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list advertisements: %w", err)
	}
	return list, total, nil
}

func (s *Service) Get(id uuid.UUID) (*Advertisement, error) {
	var ad Advertisement
	if err := s.db.First(&ad, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("advertisement not found")
		}
		return nil, fmt.Errorf("failed to load advertisement: %w", err)
	}
	return &ad, nil
}

func (s *Service) Create(createdBy uuid.UUID, req *SaveRequest) (*Advertisement, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	ad := Advertisement{
		ID:        uuid.New(),
		Title:     strings.TrimSpace(req.Title),
		ImageURL:  req.ImageURL,
		TargetURL: req.TargetURL,
		Placement: req.Placement,
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
		IsActive:  true,
		CreatedBy: createdBy,
	}
	if err := s.db.Create(&ad).Error; err != nil {
		return nil, fmt.Errorf("failed to create advertisement: %w", err)
	}
	return &ad, nil
}

func (s *Service) Update(id uuid.UUID, req *SaveRequest) error {
	if err := req.validate(); err != nil {
		return err
	}

	updates := map[string]interface{}{
		"title":      strings.TrimSpace(req.Title),
		"image_url":  req.ImageURL,
		"target_url": req.TargetURL,
		"placement":  req.Placement,
		"starts_at":  req.StartsAt,
		"ends_at":    req.EndsAt,
	}
	result := s.db.Model(&Advertisement{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update advertisement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("advertisement not found")
	}
	return nil
}

func (s *Service) ToggleActive(id uuid.UUID) (bool, error) {
	ad, err := s.Get(id)
	if err != nil {
		return false, err
	}

	newState := !ad.IsActive
	if err := s.db.Model(&Advertisement{}).Where("id = ?", id).Update("is_active", newState).Error; err != nil {
		return false, fmt.Errorf("failed to toggle advertisement: %w", err)
	}
	return newState, nil
}

func (s *Service) Delete(id uuid.UUID) error {
	result := s.db.Delete(&Advertisement{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete advertisement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("advertisement not found")
	}
	return nil
}
