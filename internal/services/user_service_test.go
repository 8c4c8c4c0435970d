package services

import (
	"testing"
	"time"

	"github.com/careerpoint/admin-backend/internal/apperr"
	"github.com/careerpoint/admin-backend/internal/dto"
	"github.com/careerpoint/admin-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsersFilters(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)

	makeUser(t, db, models.UserTypeJobSeeker, nil)
	makeUser(t, db, models.UserTypeJobSeeker, nil)
	employer := makeUser(t, db, models.UserTypeEmployer, nil)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", employer.ID).
		Update("is_suspended", true).Error)

	_, total, err := svc.ListUsers(&dto.UserListQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	seekers, total, err := svc.ListUsers(&dto.UserListQuery{UserType: models.UserTypeJobSeeker})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, seekers, 2)

	suspended := true
	got, total, err := svc.ListUsers(&dto.UserListQuery{Suspended: &suspended})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, got, 1)
	assert.Equal(t, employer.ID, got[0].ID)
}

func TestAssignRole(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)

	role := makeRole(t, db, "Support", "support", true, "view_users")
	admin := makeUser(t, db, models.UserTypeAdmin, nil)
	seeker := makeUser(t, db, models.UserTypeJobSeeker, nil)

	require.NoError(t, svc.AssignRole(admin.ID, &role.ID))
	got, err := svc.GetUser(admin.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AdminRoleID)
	assert.Equal(t, role.ID, *got.AdminRoleID)

	// Clearing the role
	require.NoError(t, svc.AssignRole(admin.ID, nil))
	got, err = svc.GetUser(admin.ID)
	require.NoError(t, err)
	assert.Nil(t, got.AdminRoleID)

	// Non-admin accounts cannot hold roles
	err = svc.AssignRole(seeker.ID, &role.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestClearExpiredSuspensions(t *testing.T) {
	db := testDB(t)
	svc := NewUserService(db)

	expired := makeUser(t, db, models.UserTypeJobSeeker, nil)
	current := makeUser(t, db, models.UserTypeJobSeeker, nil)
	indefinite := makeUser(t, db, models.UserTypeJobSeeker, nil)

	past := time.Now().AddDate(0, 0, -1)
	future := time.Now().AddDate(0, 0, 30)
	suspend := func(u *models.User, expires *time.Time) {
		require.NoError(t, db.Model(&models.User{}).Where("id = ?", u.ID).Updates(map[string]interface{}{
			"is_suspended":       true,
			"suspended_at":       time.Now(),
			"suspended_by":       u.ID,
			"suspension_expires": expires,
		}).Error)
	}
	suspend(expired, &past)
	suspend(current, &future)
	suspend(indefinite, nil)

	cleared, err := svc.ClearExpiredSuspensions()
	require.NoError(t, err)
	assert.EqualValues(t, 1, cleared)

	assert.False(t, reloadUser(t, db, expired.ID).IsSuspended)
	assert.True(t, reloadUser(t, db, current.ID).IsSuspended)
	assert.True(t, reloadUser(t, db, indefinite.ID).IsSuspended)
}
