package services

import (
	"testing"
	"time"

	"github.com/careerpoint/admin-backend/internal/apperr"
	"github.com/careerpoint/admin-backend/internal/dto"
	"github.com/careerpoint/admin-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func makeReport(t *testing.T, db *gorm.DB, entityType string, entityID uuid.UUID) *models.Report {
	t.Helper()

	reporter := makeUser(t, db, models.UserTypeJobSeeker, nil)
	report := models.Report{
		ID:                 uuid.New(),
		ReporterID:         reporter.ID,
		ReporterType:       reporter.UserType,
		ReportedEntityType: entityType,
		ReportedEntityID:   entityID,
		Reason:             "spam",
		Status:             models.ReportStatusPending,
	}
	require.NoError(t, db.Create(&report).Error)
	return &report
}

func reloadReport(t *testing.T, db *gorm.DB, id uuid.UUID) *models.Report {
	t.Helper()
	var report models.Report
	require.NoError(t, db.First(&report, "id = ?", id).Error)
	return &report
}

func reloadUser(t *testing.T, db *gorm.DB, id uuid.UUID) *models.User {
	t.Helper()
	var user models.User
	require.NoError(t, db.First(&user, "id = ?", id).Error)
	return &user
}

func TestClampSuspensionDays(t *testing.T) {
	assert.Equal(t, 1, ClampSuspensionDays(0))
	assert.Equal(t, 1, ClampSuspensionDays(-5))
	assert.Equal(t, 365, ClampSuspensionDays(400))
	assert.Equal(t, 10, ClampSuspensionDays(10))
	assert.Equal(t, 1, ClampSuspensionDays(1))
	assert.Equal(t, 365, ClampSuspensionDays(365))
}

func TestCreateReportValidation(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, 7)
	reporter := makeUser(t, db, models.UserTypeJobSeeker, nil)

	_, err := svc.CreateReport(reporter.ID, reporter.UserType, &dto.CreateReportRequest{
		ReportedEntityType: "galaxy", ReportedEntityID: uuid.New(), Reason: "spam",
	})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = svc.CreateReport(reporter.ID, reporter.UserType, &dto.CreateReportRequest{
		ReportedEntityType: models.ReportEntityUser, ReportedEntityID: uuid.New(), Reason: "because",
	})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	report, err := svc.CreateReport(reporter.ID, reporter.UserType, &dto.CreateReportRequest{
		ReportedEntityType: models.ReportEntityUser,
		ReportedEntityID:   uuid.New(),
		Reason:             "harassment",
		Description:        "<script>alert(1)</script>harsh words",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusPending, report.Status)
	assert.Equal(t, "alert(1)harsh words", report.Description)
}

func TestReviewTransition(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, 7)
	admin := makeUser(t, db, models.UserTypeAdmin, nil)
	report := makeReport(t, db, models.ReportEntityUser, uuid.New())

	require.NoError(t, svc.Review(report.ID, admin.ID))

	got := reloadReport(t, db, report.ID)
	assert.Equal(t, models.ReportStatusUnderReview, got.Status)
	require.NotNil(t, got.ReviewedBy)
	assert.Equal(t, admin.ID, *got.ReviewedBy)
	assert.NotNil(t, got.ReviewedAt)

	// A second review is rejected, not re-applied
	err := svc.Review(report.ID, admin.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestReviewNeverRevertsSettledReport(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, 7)
	admin := makeUser(t, db, models.UserTypeAdmin, nil)
	report := makeReport(t, db, models.ReportEntityUser, uuid.New())

	require.NoError(t, svc.Resolve(report.ID, admin.ID, "handled"))

	err := svc.Review(report.ID, admin.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Equal(t, models.ReportStatusResolved, reloadReport(t, db, report.ID).Status)
}

func TestResolveAndDismiss(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, 7)
	admin := makeUser(t, db, models.UserTypeAdmin, nil)

	resolved := makeReport(t, db, models.ReportEntityUser, uuid.New())
	require.NoError(t, svc.Resolve(resolved.ID, admin.ID, "<i>done</i>"))
	got := reloadReport(t, db, resolved.ID)
	assert.Equal(t, models.ReportStatusResolved, got.Status)
	assert.Equal(t, "done", got.AdminNotes)

	dismissed := makeReport(t, db, models.ReportEntityUser, uuid.New())
	require.NoError(t, svc.Review(dismissed.ID, admin.ID))
	require.NoError(t, svc.Dismiss(dismissed.ID, admin.ID, "not actionable"))
	assert.Equal(t, models.ReportStatusDismissed, reloadReport(t, db, dismissed.ID).Status)

	// Settled reports cannot be settled again
	err := svc.Resolve(dismissed.ID, admin.ID, "again")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestSuspendUserDirectTarget(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, 7)
	admin := makeUser(t, db, models.UserTypeAdmin, nil)
	target := makeUser(t, db, models.UserTypeJobSeeker, nil)
	report := makeReport(t, db, models.ReportEntityUser, target.ID)

	require.NoError(t, svc.SuspendUser(report.ID, admin.ID, 10, "policy violation"))

	got := reloadUser(t, db, target.ID)
	assert.True(t, got.IsSuspended)
	require.NotNil(t, got.SuspendedAt)
	require.NotNil(t, got.SuspendedBy)
	assert.Equal(t, admin.ID, *got.SuspendedBy)
	require.NotNil(t, got.SuspensionReason)
	assert.Equal(t, "policy violation", *got.SuspensionReason)
	require.NotNil(t, got.SuspensionExpires)
	expected := time.Now().AddDate(0, 0, 10)
	assert.WithinDuration(t, expected, *got.SuspensionExpires, time.Minute)

	rep := reloadReport(t, db, report.ID)
	assert.Equal(t, models.ReportStatusSuspended, rep.Status)
	assert.Contains(t, rep.AdminNotes, "[User suspended for 10 day(s): policy violation]")
}

func TestSuspendUserAppliesDefaultWindow(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, 7)
	admin := makeUser(t, db, models.UserTypeAdmin, nil)
	target := makeUser(t, db, models.UserTypeJobSeeker, nil)
	report := makeReport(t, db, models.ReportEntityUser, target.ID)

	// Omitted suspension_days falls back to the configured window
	require.NoError(t, svc.SuspendUser(report.ID, admin.ID, 0, "spam"))

	got := reloadUser(t, db, target.ID)
	require.NotNil(t, got.SuspensionExpires)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 7), *got.SuspensionExpires, time.Minute)
	assert.Contains(t, reloadReport(t, db, report.ID).AdminNotes, "[User suspended for 7 day(s)")
}

func TestSuspendUserRevokesSessions(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, 7)
	admin := makeUser(t, db, models.UserTypeAdmin, nil)
	target := makeUser(t, db, models.UserTypeJobSeeker, nil)
	bystander := makeUser(t, db, models.UserTypeJobSeeker, nil)

	makeToken := func(userID uuid.UUID, hash string) {
		require.NoError(t, db.Create(&models.RefreshToken{
			ID:        uuid.New(),
			UserID:    userID,
			TokenHash: hash,
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}).Error)
	}
	makeToken(target.ID, "aaa")
	makeToken(target.ID, "bbb")
	makeToken(bystander.ID, "ccc")

	report := makeReport(t, db, models.ReportEntityUser, target.ID)
	require.NoError(t, svc.SuspendUser(report.ID, admin.ID, 5, "spam"))

	var live int64
	require.NoError(t, db.Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked = false", target.ID).Count(&live).Error)
	assert.Zero(t, live)

	require.NoError(t, db.Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked = false", bystander.ID).Count(&live).Error)
	assert.EqualValues(t, 1, live)
}

func TestSuspendUserResolvesJobOwner(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, 7)
	admin := makeUser(t, db, models.UserTypeAdmin, nil)
	employer := makeUser(t, db, models.UserTypeEmployer, nil)

	job := models.Job{ID: uuid.New(), EmployerID: employer.ID, Title: "Backend Engineer"}
	require.NoError(t, db.Create(&job).Error)

	report := makeReport(t, db, models.ReportEntityJob, job.ID)
	require.NoError(t, svc.SuspendUser(report.ID, admin.ID, 400, ""))

	got := reloadUser(t, db, employer.ID)
	assert.True(t, got.IsSuspended)
	require.NotNil(t, got.SuspensionReason)
	assert.NotEmpty(t, *got.SuspensionReason) // blank reason gets the default

	// 400 days clamps to 365
	require.NotNil(t, got.SuspensionExpires)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 365), *got.SuspensionExpires, time.Minute)
}

func TestSuspendUserResolvesApplicant(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, 7)
	admin := makeUser(t, db, models.UserTypeAdmin, nil)
	employer := makeUser(t, db, models.UserTypeEmployer, nil)
	seeker := makeUser(t, db, models.UserTypeJobSeeker, nil)

	job := models.Job{ID: uuid.New(), EmployerID: employer.ID, Title: "Designer"}
	require.NoError(t, db.Create(&job).Error)
	app := models.Application{ID: uuid.New(), JobID: job.ID, JobSeekerID: seeker.ID}
	require.NoError(t, db.Create(&app).Error)

	report := makeReport(t, db, models.ReportEntityApplication, app.ID)
	require.NoError(t, svc.SuspendUser(report.ID, admin.ID, 3, "fake cv"))

	assert.True(t, reloadUser(t, db, seeker.ID).IsSuspended)
	assert.False(t, reloadUser(t, db, employer.ID).IsSuspended)
}

func TestSuspendUserResolutionFailureLeavesReportUntouched(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, 7)
	admin := makeUser(t, db, models.UserTypeAdmin, nil)

	report := makeReport(t, db, models.ReportEntityOther, uuid.New())
	err := svc.SuspendUser(report.ID, admin.ID, 5, "whatever")
	assert.True(t, apperr.IsKind(err, apperr.KindResolution))

	got := reloadReport(t, db, report.ID)
	assert.Equal(t, models.ReportStatusPending, got.Status)
	assert.Empty(t, got.AdminNotes)
	assert.Nil(t, got.ReviewedBy)

	// Dangling entity reference fails the same way
	missing := makeReport(t, db, models.ReportEntityJob, uuid.New())
	err = svc.SuspendUser(missing.ID, admin.ID, 5, "gone")
	assert.True(t, apperr.IsKind(err, apperr.KindResolution))
	assert.Equal(t, models.ReportStatusPending, reloadReport(t, db, missing.ID).Status)
}

func TestUnsuspendUser(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, 7)
	admin := makeUser(t, db, models.UserTypeAdmin, nil)
	target := makeUser(t, db, models.UserTypeJobSeeker, nil)
	report := makeReport(t, db, models.ReportEntityUser, target.ID)

	require.NoError(t, svc.SuspendUser(report.ID, admin.ID, 10, "policy violation"))
	require.NoError(t, svc.UnsuspendUser(report.ID, admin.ID))

	got := reloadUser(t, db, target.ID)
	assert.False(t, got.IsSuspended)
	assert.Nil(t, got.SuspensionReason)
	assert.Nil(t, got.SuspendedAt)
	assert.Nil(t, got.SuspendedBy)
	assert.Nil(t, got.SuspensionExpires)

	rep := reloadReport(t, db, report.ID)
	assert.Equal(t, models.ReportStatusResolved, rep.Status)
	assert.Contains(t, rep.AdminNotes, "[Unsuspended on ")
	// The suspension history stays in the notes
	assert.Contains(t, rep.AdminNotes, "[User suspended for 10 day(s)")
}

func TestUnsuspendWithoutSuspensionRejected(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, 7)
	admin := makeUser(t, db, models.UserTypeAdmin, nil)
	report := makeReport(t, db, models.ReportEntityUser, uuid.New())

	err := svc.UnsuspendUser(report.ID, admin.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestActionsOnMissingReport(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, 7)
	admin := makeUser(t, db, models.UserTypeAdmin, nil)

	assert.True(t, apperr.IsKind(svc.Review(uuid.New(), admin.ID), apperr.KindNotFound))
	assert.True(t, apperr.IsKind(svc.Resolve(uuid.New(), admin.ID, "x"), apperr.KindNotFound))
	assert.True(t, apperr.IsKind(svc.SuspendUser(uuid.New(), admin.ID, 5, "x"), apperr.KindNotFound))
	assert.True(t, apperr.IsKind(svc.UnsuspendUser(uuid.New(), admin.ID), apperr.KindNotFound))
}

func TestListReportsJoinsDisplayNames(t *testing.T) {
	db := testDB(t)
	svc := NewModerationService(db, 7)
	admin := makeUser(t, db, models.UserTypeAdmin, nil)

	first := makeReport(t, db, models.ReportEntityUser, uuid.New())
	makeReport(t, db, models.ReportEntityJob, uuid.New())
	require.NoError(t, svc.Resolve(first.ID, admin.ID, "done"))

	rows, total, err := svc.ListReports("", "", 50, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "Test User", row.ReporterName)
	}

	resolved, total, err := svc.ListReports(models.ReportStatusResolved, "", 50, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, resolved, 1)
	assert.Equal(t, "Test User", resolved[0].ReviewerName)

	jobs, _, err := svc.ListReports("", models.ReportEntityJob, 50, 0)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, models.ReportEntityJob, jobs[0].ReportedEntityType)
}
