package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/careerpoint/admin-backend/internal/apperr"
	"github.com/careerpoint/admin-backend/internal/dto"
	"github.com/careerpoint/admin-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthzService answers "may user U perform capability C" and manages the
// role/permission reference data. Permission queries fail closed: any
// lookup problem degrades to false, never to an error.
type AuthzService struct {
	db *gorm.DB
}

func NewAuthzService(db *gorm.DB) *AuthzService {
	return &AuthzService{db: db}
}

// grant is a user's resolved authorization. The super-admin bypass is a
// variant here, not a slug comparison at call sites.
type grant struct {
	super bool
	perms map[string]struct{}
}

var emptyGrant = &grant{}

func (g *grant) allows(slug string) bool {
	if g.super {
		return true
	}
	_, ok := g.perms[slug]
	return ok
}

func (s *AuthzService) resolveGrant(userID uuid.UUID) (*grant, error) {
	if userID == uuid.Nil {
		return emptyGrant, nil
	}

	var user models.User
	if err := s.db.Preload("AdminRole").First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return emptyGrant, nil
		}
		return nil, err
	}

	if user.UserType != models.UserTypeAdmin || user.AdminRole == nil {
		return emptyGrant, nil
	}
	role := user.AdminRole
	if !role.IsActive {
		return emptyGrant, nil
	}
	if role.IsSuperAdmin() {
		return &grant{super: true}, nil
	}

	var slugs []string
	err := s.db.Model(&models.Permission{}).
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Where("role_permissions.role_id = ?", role.ID).
		Pluck("permissions.slug", &slugs).Error
	if err != nil {
		return nil, err
	}

	perms := make(map[string]struct{}, len(slugs))
	for _, slug := range slugs {
		perms[slug] = struct{}{}
	}
	return &grant{perms: perms}, nil
}

// IsSuperAdmin reports whether the user holds the active super_admin role.
func (s *AuthzService) IsSuperAdmin(userID uuid.UUID) bool {
	g, err := s.resolveGrant(userID)
	if err != nil {
		slog.Error("authz grant resolution failed", "user_id", userID, "error", err)
		return false
	}
	return g.super
}

// HasPermission reports whether the user may perform the named capability.
func (s *AuthzService) HasPermission(userID uuid.UUID, permissionSlug string) bool {
	g, err := s.resolveGrant(userID)
	if err != nil {
		slog.Error("authz grant resolution failed", "user_id", userID, "error", err)
		return false
	}
	return g.allows(permissionSlug)
}

// HasAnyPermission reports whether any one of the listed permissions holds.
func (s *AuthzService) HasAnyPermission(userID uuid.UUID, permissionSlugs ...string) bool {
	g, err := s.resolveGrant(userID)
	if err != nil {
		slog.Error("authz grant resolution failed", "user_id", userID, "error", err)
		return false
	}
	for _, slug := range permissionSlugs {
		if g.allows(slug) {
			return true
		}
	}
	return false
}

func (s *AuthzService) CreateRole(req *dto.CreateRoleRequest) (*models.Role, error) {
	name := strings.TrimSpace(req.Name)
	slug := strings.TrimSpace(req.Slug)
	if name == "" || slug == "" {
		return nil, apperr.Validation("role name and slug are required")
	}

	var existing models.Role
	if err := s.db.Where("slug = ?", slug).First(&existing).Error; err == nil {
		return nil, apperr.Validation("a role with slug %q already exists", slug)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check role slug: %w", err)
	}

	role := models.Role{
		ID:          uuid.New(),
		Name:        name,
		Slug:        slug,
		Description: strings.TrimSpace(req.Description),
		IsActive:    true,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&role).Error; err != nil {
			return fmt.Errorf("failed to create role: %w", err)
		}
		return replacePermissions(tx, role.ID, req.PermissionIDs)
	})
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// UpdateRole replaces name, description, and the full permission set.
func (s *AuthzService) UpdateRole(roleID uuid.UUID, req *dto.UpdateRoleRequest) error {
	role, err := s.GetRole(roleID)
	if err != nil {
		return err
	}
	if role.IsSuperAdmin() {
		return apperr.Forbidden("the Super Admin role cannot be modified")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return apperr.Validation("role name is required")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":        name,
			"description": strings.TrimSpace(req.Description),
		}
		if err := tx.Model(&models.Role{}).Where("id = ?", roleID).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update role: %w", err)
		}
		if err := tx.Where("role_id = ?", roleID).Delete(&models.RolePermission{}).Error; err != nil {
			return fmt.Errorf("failed to clear role permissions: %w", err)
		}
		return replacePermissions(tx, roleID, req.PermissionIDs)
	})
}

func (s *AuthzService) DeleteRole(roleID uuid.UUID) error {
	role, err := s.GetRole(roleID)
	if err != nil {
		return err
	}
	if role.IsSuperAdmin() {
		return apperr.Forbidden("the Super Admin role cannot be deleted")
	}

	users, err := s.CountRoleUsers(roleID)
	if err != nil {
		return err
	}
	if users > 0 {
		return apperr.Conflict("cannot delete role: %d user(s) still assigned", users)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", roleID).Delete(&models.RolePermission{}).Error; err != nil {
			return fmt.Errorf("failed to delete role permissions: %w", err)
		}
		if err := tx.Delete(&models.Role{}, "id = ?", roleID).Error; err != nil {
			return fmt.Errorf("failed to delete role: %w", err)
		}
		return nil
	})
}

// ToggleRoleStatus flips is_active and returns the new value.
func (s *AuthzService) ToggleRoleStatus(roleID uuid.UUID) (bool, error) {
	role, err := s.GetRole(roleID)
	if err != nil {
		return false, err
	}
	if role.IsSuperAdmin() {
		return false, apperr.Forbidden("the Super Admin role cannot be deactivated")
	}

	newStatus := !role.IsActive
	if err := s.db.Model(&models.Role{}).Where("id = ?", roleID).Update("is_active", newStatus).Error; err != nil {
		return false, fmt.Errorf("failed to toggle role status: %w", err)
	}
	return newStatus, nil
}

func (s *AuthzService) GetRole(roleID uuid.UUID) (*models.Role, error) {
	var role models.Role
	if err := s.db.Preload("Permissions").First(&role, "id = ?", roleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("role not found")
		}
		return nil, fmt.Errorf("failed to load role: %w", err)
	}
	return &role, nil
}

func (s *AuthzService) ListRoles() ([]models.Role, error) {
	var roles []models.Role
	if err := s.db.Preload("Permissions").Order("name ASC").Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return roles, nil
}

// ListPermissions returns the seeded catalog ordered for module grouping.
func (s *AuthzService) ListPermissions() ([]models.Permission, error) {
	var perms []models.Permission
	if err := s.db.Order("module ASC, name ASC").Find(&perms).Error; err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	return perms, nil
}

func (s *AuthzService) CountRoleUsers(roleID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("admin_role_id = ?", roleID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count role users: %w", err)
	}
	return count, nil
}

// replacePermissions inserts the given set for a role. Callers clear the
// old rows first; the whole swap runs inside the caller's transaction.
func replacePermissions(tx *gorm.DB, roleID uuid.UUID, permissionIDs []uuid.UUID) error {
	if len(permissionIDs) == 0 {
		return nil
	}

	seen := make(map[uuid.UUID]struct{}, len(permissionIDs))
	deduped := make([]uuid.UUID, 0, len(permissionIDs))
	for _, pid := range permissionIDs {
		if _, ok := seen[pid]; ok {
			continue
		}
		seen[pid] = struct{}{}
		deduped = append(deduped, pid)
	}
	permissionIDs = deduped

	var count int64
	if err := tx.Model(&models.Permission{}).Where("id IN ?", permissionIDs).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to verify permissions: %w", err)
	}
	if int(count) != len(permissionIDs) {
		return apperr.Validation("one or more permission ids do not exist")
	}

	rows := make([]models.RolePermission, 0, len(permissionIDs))
	for _, pid := range permissionIDs {
		rows = append(rows, models.RolePermission{RoleID: roleID, PermissionID: pid})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to assign permissions: %w", err)
	}
	return nil
}
