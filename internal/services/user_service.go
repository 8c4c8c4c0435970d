package services

import (
	"errors"
	"fmt"

	"github.com/careerpoint/admin-backend/internal/apperr"
	"github.com/careerpoint/admin-backend/internal/dto"
	"github.com/careerpoint/admin-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService backs the user administration pages.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) ListUsers(q *dto.UserListQuery) ([]models.User, int64, error) {
	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	query := s.db.Model(&models.User{})
	if q.UserType != "" {
		query = query.Where("user_type = ?", q.UserType)
	}
	if q.Suspended != nil {
		query = query.Where("is_suspended = ?", *q.Suspended)
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		query = query.Where("email LIKE ? OR full_name LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var users []models.User
	if err := query.Preload("AdminRole").Order("created_at DESC").Limit(limit).Offset(q.Offset).Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

func (s *UserService) GetUser(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("AdminRole").First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

// AssignRole sets or clears an admin user's role. Only admin-typed users
// carry a role reference.
func (s *UserService) AssignRole(userID uuid.UUID, roleID *uuid.UUID) error {
	user, err := s.GetUser(userID)
	if err != nil {
		return err
	}
	if user.UserType != models.UserTypeAdmin {
		return apperr.Validation("only admin accounts can hold a role")
	}

	if roleID != nil {
		var role models.Role
		if err := s.db.First(&role, "id = ?", *roleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("role not found")
			}
			return fmt.Errorf("failed to load role: %w", err)
		}
	}

	if err := s.db.Model(&models.User{}).Where("id = ?", userID).Update("admin_role_id", roleID).Error; err != nil {
		return fmt.Errorf("failed to assign role: %w", err)
	}
	return nil
}

// ClearExpiredSuspensions lifts suspensions whose window has passed.
// Indefinite suspensions (null expiry) are never touched.
func (s *UserService) ClearExpiredSuspensions() (int64, error) {
	result := s.db.Model(&models.User{}).
		Where("is_suspended = ? AND suspension_expires IS NOT NULL AND suspension_expires < CURRENT_TIMESTAMP", true).
		Updates(map[string]interface{}{
			"is_suspended":       false,
			"suspension_reason":  nil,
			"suspended_at":       nil,
			"suspended_by":       nil,
			"suspension_expires": nil,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to clear expired suspensions: %w", result.Error)
	}
	return result.RowsAffected, nil
}
