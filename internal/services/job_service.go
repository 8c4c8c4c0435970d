package services

import (
	"errors"
	"fmt"

	"github.com/careerpoint/admin-backend/internal/apperr"
	"github.com/careerpoint/admin-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobService backs the job administration pages.
type JobService struct {
	db *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{db: db}
}

// JobRow is the list projection with the owning employer's display name.
type JobRow struct {
	models.Job
	EmployerName string `json:"employer_name"`
}

func (s *JobService) ListJobs(status string, limit, offset int) ([]JobRow, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	query := s.db.Model(&models.Job{})
	if status != "" {
		query = query.Where("jobs.status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	var rows []JobRow
	err := query.
		Select("jobs.*, employers.full_name AS employer_name").
		Joins("LEFT JOIN users AS employers ON employers.id = jobs.employer_id").
		Order("jobs.created_at DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}
	return rows, total, nil
}

func (s *JobService) GetJob(jobID uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := s.db.First(&job, "id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("job not found")
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	return &job, nil
}

func (s *JobService) SetJobStatus(jobID uuid.UUID, status string) error {
	switch status {
	case models.JobStatusPending, models.JobStatusActive, models.JobStatusClosed:
	default:
		return apperr.Validation("invalid job status %q", status)
	}

	result := s.db.Model(&models.Job{}).Where("id = ?", jobID).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update job status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("job not found")
	}
	return nil
}

func (s *JobService) DeleteJob(jobID uuid.UUID) error {
	result := s.db.Delete(&models.Job{}, "id = ?", jobID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("job not found")
	}
	return nil
}
