package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/careerpoint/admin-backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Definition is one seeded permission. The set is static; the admin
// surface assigns permissions to roles but never invents new ones.
type Definition struct {
	Slug   string
	Name   string
	Module string
}

var definitions = []Definition{
	{Slug: "view_users", Name: "View Users", Module: "users"},
	{Slug: "manage_users", Name: "Manage Users", Module: "users"},
	{Slug: "view_jobs", Name: "View Jobs", Module: "jobs"},
	{Slug: "manage_jobs", Name: "Manage Jobs", Module: "jobs"},
	{Slug: "view_ads", Name: "View Advertisements", Module: "ads"},
	{Slug: "edit_ads", Name: "Edit Advertisements", Module: "ads"},
	{Slug: "delete_ads", Name: "Delete Advertisements", Module: "ads"},
	{Slug: "view_reports", Name: "View Reports", Module: "reports"},
	{Slug: "manage_reports", Name: "Manage Reports", Module: "reports"},
	{Slug: "suspend_users", Name: "Suspend Users", Module: "reports"},
	{Slug: "view_settings", Name: "View Payment Settings", Module: "payments"},
	{Slug: "edit_settings", Name: "Edit Payment Settings", Module: "payments"},
	{Slug: "view_stats", Name: "View Dashboard Stats", Module: "dashboard"},
}

// Registry answers slug lookups without touching the database.
type Registry struct {
	mu    sync.RWMutex
	perms map[string]*Definition
}

func NewRegistry() *Registry {
	r := &Registry{perms: make(map[string]*Definition, len(definitions))}
	for i := range definitions {
		r.perms[definitions[i].Slug] = &definitions[i]
	}
	return r
}

func (r *Registry) Exists(slug string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.perms[slug]
	return ok
}

func (r *Registry) Get(slug string) *Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.perms[slug]
}

func (r *Registry) All() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]Definition, 0, len(definitions))
	result = append(result, definitions...)
	return result
}

// Seed inserts missing permissions and the super_admin role. Idempotent;
// safe to run on every start.
func Seed(db *gorm.DB) error {
	for _, def := range definitions {
		var existing models.Permission
		err := db.Where("slug = ?", def.Slug).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check permission %q: %w", def.Slug, err)
		}
		perm := models.Permission{
			ID:     uuid.New(),
			Name:   def.Name,
			Slug:   def.Slug,
			Module: def.Module,
		}
		if err := db.Create(&perm).Error; err != nil {
			return fmt.Errorf("failed to seed permission %q: %w", def.Slug, err)
		}
	}

	var superAdmin models.Role
	err := db.Where("slug = ?", models.SuperAdminSlug).First(&superAdmin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		superAdmin = models.Role{
			ID:          uuid.New(),
			Name:        "Super Admin",
			Slug:        models.SuperAdminSlug,
			Description: "Full access to every module",
			IsActive:    true,
		}
		if err := db.Create(&superAdmin).Error; err != nil {
			return fmt.Errorf("failed to seed super admin role: %w", err)
		}
		slog.Info("super admin role created", "role_id", superAdmin.ID)
	} else if err != nil {
		return fmt.Errorf("failed to check super admin role: %w", err)
	}

	return nil
}

// SeedBootstrapAdmin creates the first super admin account when none
// exists and credentials were supplied via config.
func SeedBootstrapAdmin(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("user_type = ?", models.UserTypeAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var superAdmin models.Role
	if err := db.Where("slug = ?", models.SuperAdminSlug).First(&superAdmin).Error; err != nil {
		return fmt.Errorf("super admin role missing, run Seed first: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	admin := models.User{
		ID:          uuid.New(),
		Email:       email,
		Password:    string(hash),
		FullName:    "Super Admin",
		UserType:    models.UserTypeAdmin,
		AdminRoleID: &superAdmin.ID,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	slog.Info("bootstrap super admin created", "email", email)
	return nil
}
