package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobportal/internal/cache"
	apperrors "jobportal/internal/errors"
	"jobportal/internal/model"
	"jobportal/internal/repository"
)

const jobCacheTTL = 5 * time.Minute

// JobInput carries the mutable fields of a job posting.
type JobInput struct {
	Title       string
	Company     string
	Location    string
	Description string
	Salary      string
}

// JobService handles job directory operations.
type JobService interface {
	List(ctx context.Context) ([]model.Job, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Job, error)
	Create(ctx context.Context, input JobInput) (*model.Job, error)
	Update(ctx context.Context, id uuid.UUID, input JobInput) (*model.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type jobService struct {
	repo  repository.JobRepository
	cache *cache.Client
}

// NewJobService creates a new job service.
func NewJobService(repo repository.JobRepository, cache *cache.Client) JobService {
	return &jobService{
		repo:  repo,
		cache: cache,
	}
}

func (s *jobService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("job:%s", id.String())
}

// List returns all jobs, most recently posted first.
func (s *jobService) List(ctx context.Context) ([]model.Job, error) {
	return s.repo.List(ctx)
}

// Get retrieves a job by ID with caching.
func (s *jobService) Get(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Job
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(job); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, jobCacheTTL)
	}
	return job, nil
}

// Create persists a new job posting with a server-assigned posted date.
func (s *jobService) Create(ctx context.Context, input JobInput) (*model.Job, error) {
	job := &model.Job{
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		Description: input.Description,
		Salary:      input.Salary,
		PostedDate:  time.Now(),
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

// Update replaces all mutable fields of an existing job.
func (s *jobService) Update(ctx context.Context, id uuid.UUID, input JobInput) (*model.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}

	job.Title = input.Title
	job.Company = input.Company
	job.Location = input.Location
	job.Description = input.Description
	job.Salary = input.Salary

	if err := s.repo.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return job, nil
}

// Delete removes a job and cascades to its applications.
func (s *jobService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteWithApplications(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrJobNotFound
		}
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
