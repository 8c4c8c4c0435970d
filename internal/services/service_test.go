package services

import (
	"path/filepath"
	"testing"

	"github.com/careerpoint/admin-backend/internal/catalog"
	"github.com/careerpoint/admin-backend/internal/database"
	"github.com/careerpoint/admin-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.sqlite")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.SharedModels()...))
	require.NoError(t, catalog.Seed(db))
	return db
}

func makeRole(t *testing.T, db *gorm.DB, name, slug string, active bool, permSlugs ...string) *models.Role {
	t.Helper()

	role := models.Role{
		ID:       uuid.New(),
		Name:     name,
		Slug:     slug,
		IsActive: active,
	}
	require.NoError(t, db.Create(&role).Error)
	// GORM coerces a zero-value IsActive to the default:true tag on Create,
	// so an inactive role must be downgraded with an explicit column update.
	if !active {
		require.NoError(t, db.Model(&role).Update("is_active", false).Error)
		role.IsActive = false
	}

	for _, permSlug := range permSlugs {
		var perm models.Permission
		require.NoError(t, db.Where("slug = ?", permSlug).First(&perm).Error)
		require.NoError(t, db.Create(&models.RolePermission{
			RoleID:       role.ID,
			PermissionID: perm.ID,
		}).Error)
	}
	return &role
}

func makeUser(t *testing.T, db *gorm.DB, userType string, roleID *uuid.UUID) *models.User {
	t.Helper()

	user := models.User{
		ID:          uuid.New(),
		Email:       uuid.NewString() + "@example.com",
		Password:    "irrelevant",
		FullName:    "Test User",
		UserType:    userType,
		AdminRoleID: roleID,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func superAdminRoleID(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()

	var role models.Role
	require.NoError(t, db.Where("slug = ?", models.SuperAdminSlug).First(&role).Error)
	return role.ID
}

func permissionIDs(t *testing.T, db *gorm.DB, slugs ...string) []uuid.UUID {
	t.Helper()

	ids := make([]uuid.UUID, 0, len(slugs))
	for _, slug := range slugs {
		var perm models.Permission
		require.NoError(t, db.Where("slug = ?", slug).First(&perm).Error)
		ids = append(ids, perm.ID)
	}
	return ids
}
