package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hireorbit/backend/internal/apperror"
	"github.com/hireorbit/backend/internal/model"
	"github.com/hireorbit/backend/internal/repository"
)

// Field length limits for job postings.
const (
	MaxJobTitleLength       = 100
	MaxJobDescriptionLength = 255
	MaxJobDeadlineLength    = 50
)

// JobService handles business logic for job postings.
type JobService struct {
	repo   repository.JobRepository
	logger *slog.Logger
}

// NewJobService creates a JobService.
func NewJobService(repo repository.JobRepository, logger *slog.Logger) *JobService {
	return &JobService{
		repo:   repo,
		logger: logger,
	}
}

// Create validates and persists a new job posting owned by ownerID.
// The owner comes from the authenticated session, never from the payload,
// so a caller cannot create jobs on another account.
func (s *JobService) Create(ctx context.Context, ownerID, title, description, deadline string) (*model.Job, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("service/job: owner ID must not be empty")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperror.ValidationFailed("title", "title must not be empty")
	}
	if len(title) > MaxJobTitleLength {
		return nil, apperror.ValidationFailed("title",
			fmt.Sprintf("title must be %d characters or fewer", MaxJobTitleLength))
	}
	if len(description) > MaxJobDescriptionLength {
		return nil, apperror.ValidationFailed("description",
			fmt.Sprintf("description must be %d characters or fewer", MaxJobDescriptionLength))
	}
	if len(deadline) > MaxJobDeadlineLength {
		return nil, apperror.ValidationFailed("deadline",
			fmt.Sprintf("deadline must be %d characters or fewer", MaxJobDeadlineLength))
	}

	job := &model.Job{
		Title:       title,
		Description: description,
		Deadline:    deadline,
		OwnerID:     ownerID,
	}

	if err := s.repo.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("service/job: creating job: %w", err)
	}

	s.logger.Info("job created",
		slog.String("jobID", job.ID),
		slog.String("ownerID", ownerID),
	)

	return job, nil
}

// ListForOwner returns the jobs owned by ownerID.
func (s *JobService) ListForOwner(ctx context.Context, ownerID string, opts repository.ListOptions) ([]model.Job, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("service/job: owner ID must not be empty")
	}

	jobs, err := s.repo.ListJobsByOwner(ctx, ownerID, opts)
	if err != nil {
		return nil, fmt.Errorf("service/job: listing jobs for owner %s: %w", ownerID, err)
	}

	return jobs, nil
}
