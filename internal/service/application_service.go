package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "jobportal/internal/errors"
	"jobportal/internal/model"
	"jobportal/internal/repository"
)

// SubmitInput carries the client-supplied fields of an application. The
// applicant's user ID always comes from the validated token, never from here.
type SubmitInput struct {
	JobID       uuid.UUID
	Name        string
	Email       string
	ResumeLink  string
	CoverLetter string
}

// ApplicationService handles application submission and triage.
type ApplicationService interface {
	List(ctx context.Context) ([]model.Application, error)
	Submit(ctx context.Context, input SubmitInput, userID uuid.UUID) (*model.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Application, error)
}

type applicationService struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
}

// NewApplicationService creates a new application service.
func NewApplicationService(applications repository.ApplicationRepository, jobs repository.JobRepository) ApplicationService {
	return &applicationService{
		applications: applications,
		jobs:         jobs,
	}
}

// List returns all applications, most recent first, with jobs preloaded.
func (s *applicationService) List(ctx context.Context) ([]model.Application, error) {
	return s.applications.ListWithJobs(ctx)
}

// Submit stores a new application for the authenticated caller. The job must
// exist at submission time or the whole operation fails.
func (s *applicationService) Submit(ctx context.Context, input SubmitInput, userID uuid.UUID) (*model.Application, error) {
	if _, err := s.jobs.FindByID(ctx, input.JobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobDoesNotExist
		}
		return nil, fmt.Errorf("check job existence: %w", err)
	}

	application := &model.Application{
		JobID:       input.JobID,
		UserID:      &userID,
		Name:        input.Name,
		Email:       input.Email,
		ResumeLink:  input.ResumeLink,
		CoverLetter: input.CoverLetter,
		AppliedDate: time.Now(),
		Status:      model.StatusPending,
	}
	if err := s.applications.Create(ctx, application); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	return application, nil
}

// UpdateStatus overwrites the status of an application. Any status may change
// to any other; only the enum itself is enforced.
func (s *applicationService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Application, error) {
	if !model.ValidStatus(status) {
		return nil, apperrors.ErrInvalidStatus
	}

	application, err := s.applications.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, err
	}

	application.Status = status
	if err := s.applications.Update(ctx, application); err != nil {
		return nil, fmt.Errorf("update application status: %w", err)
	}
	return application, nil
}
