package services

import (
	"testing"
	"time"

	"github.com/careerpoint/admin-backend/internal/config"
	"github.com/careerpoint/admin-backend/internal/dto"
	"github.com/careerpoint/admin-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testAuthService(t *testing.T, db *gorm.DB) *AuthService {
	t.Helper()
	return NewAuthService(db, &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
	})
}

func makeStaff(t *testing.T, db *gorm.DB, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	superID := superAdminRoleID(t, db)
	user := makeUser(t, db, models.UserTypeAdmin, &superID)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("password", string(hash)).Error)
	return user
}

func TestLogin(t *testing.T) {
	db := testDB(t)
	svc := testAuthService(t, db)
	staff := makeStaff(t, db, "correct horse")

	resp, err := svc.Login(&dto.LoginRequest{Email: staff.Email, Password: "correct horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, staff.ID, resp.User.ID)
	assert.Equal(t, models.SuperAdminSlug, resp.User.RoleSlug)

	_, err = svc.Login(&dto.LoginRequest{Email: staff.Email, Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsNonStaff(t *testing.T) {
	db := testDB(t)
	svc := testAuthService(t, db)

	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)
	seeker := makeUser(t, db, models.UserTypeJobSeeker, nil)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", seeker.ID).
		Update("password", string(hash)).Error)

	_, err = svc.Login(&dto.LoginRequest{Email: seeker.Email, Password: "pw"})
	assert.ErrorIs(t, err, ErrNotStaff)
}

func TestLoginRejectsSuspendedStaff(t *testing.T) {
	db := testDB(t)
	svc := testAuthService(t, db)
	staff := makeStaff(t, db, "pw")
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", staff.ID).
		Update("is_suspended", true).Error)

	_, err := svc.Login(&dto.LoginRequest{Email: staff.Email, Password: "pw"})
	assert.ErrorIs(t, err, ErrAccountSuspended)
}

func TestRefreshRotation(t *testing.T) {
	db := testDB(t)
	svc := testAuthService(t, db)
	staff := makeStaff(t, db, "pw")

	resp, err := svc.Login(&dto.LoginRequest{Email: staff.Email, Password: "pw"})
	require.NoError(t, err)

	next, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, resp.RefreshToken, next.RefreshToken)

	// The consumed token is dead
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: "garbage"})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogout(t *testing.T) {
	db := testDB(t)
	svc := testAuthService(t, db)
	staff := makeStaff(t, db, "pw")

	resp, err := svc.Login(&dto.LoginRequest{Email: staff.Email, Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}))
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshRejectedAfterSuspension(t *testing.T) {
	db := testDB(t)
	svc := testAuthService(t, db)
	moderation := NewModerationService(db, 7)

	staff := makeStaff(t, db, "pw")
	resp, err := svc.Login(&dto.LoginRequest{Email: staff.Email, Password: "pw"})
	require.NoError(t, err)

	admin := makeUser(t, db, models.UserTypeAdmin, nil)
	report := models.Report{
		ID:                 uuid.New(),
		ReporterID:         admin.ID,
		ReporterType:       models.UserTypeAdmin,
		ReportedEntityType: models.ReportEntityUser,
		ReportedEntityID:   staff.ID,
		Reason:             "inappropriate_content",
		Status:             models.ReportStatusPending,
	}
	require.NoError(t, db.Create(&report).Error)
	require.NoError(t, moderation.SuspendUser(report.ID, admin.ID, 5, "abuse of access"))

	// Suspension revoked the outstanding refresh token
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}
