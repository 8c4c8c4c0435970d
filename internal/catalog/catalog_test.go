package catalog

import (
	"path/filepath"
	"testing"

	"github.com/careerpoint/admin-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.sqlite")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Role{}, &models.Permission{}, &models.RolePermission{}))
	return db
}

func TestSeedIsIdempotent(t *testing.T) {
	db := testDB(t)

	require.NoError(t, Seed(db))
	var permCount, roleCount int64
	require.NoError(t, db.Model(&models.Permission{}).Count(&permCount).Error)
	require.NoError(t, db.Model(&models.Role{}).Count(&roleCount).Error)
	assert.EqualValues(t, len(definitions), permCount)
	assert.EqualValues(t, 1, roleCount)

	require.NoError(t, Seed(db))
	var permCount2, roleCount2 int64
	require.NoError(t, db.Model(&models.Permission{}).Count(&permCount2).Error)
	require.NoError(t, db.Model(&models.Role{}).Count(&roleCount2).Error)
	assert.Equal(t, permCount, permCount2)
	assert.Equal(t, roleCount, roleCount2)

	var superAdmin models.Role
	require.NoError(t, db.Where("slug = ?", models.SuperAdminSlug).First(&superAdmin).Error)
	assert.True(t, superAdmin.IsActive)
}

func TestRegistryLookups(t *testing.T) {
	r := NewRegistry()

	assert.True(t, r.Exists("view_ads"))
	assert.False(t, r.Exists("launch_rockets"))

	def := r.Get("edit_settings")
	require.NotNil(t, def)
	assert.Equal(t, "payments", def.Module)

	assert.Len(t, r.All(), len(definitions))
}

func TestSeedBootstrapAdmin(t *testing.T) {
	db := testDB(t)
	require.NoError(t, Seed(db))

	// No credentials: nothing happens
	require.NoError(t, SeedBootstrapAdmin(db, "", ""))
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)

	require.NoError(t, SeedBootstrapAdmin(db, "root@example.com", "swordfish1"))
	var admin models.User
	require.NoError(t, db.Where("email = ?", "root@example.com").First(&admin).Error)
	assert.Equal(t, models.UserTypeAdmin, admin.UserType)
	require.NotNil(t, admin.AdminRoleID)

	// A second run must not add another admin
	require.NoError(t, SeedBootstrapAdmin(db, "other@example.com", "swordfish1"))
	require.NoError(t, db.Model(&models.User{}).Where("user_type = ?", models.UserTypeAdmin).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
