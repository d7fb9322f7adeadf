package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobportal/internal/model"
)

// JobRepository defines job persistence operations.
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	Update(ctx context.Context, job *model.Job) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error)
	List(ctx context.Context) ([]model.Job, error)
	DeleteWithApplications(ctx context.Context, id uuid.UUID) error
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create creates a new job posting.
func (r *jobRepository) Create(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// Update replaces an existing job posting.
func (r *jobRepository) Update(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// FindByID finds a job by ID.
func (r *jobRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var job model.Job
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// List returns all jobs ordered by posted date descending.
func (r *jobRepository) List(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job
	if err := r.db.WithContext(ctx).Order("posted_date DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// DeleteWithApplications removes a job and every application referencing it
// in a single transaction, so no orphaned application is ever retrievable.
// Returns gorm.ErrRecordNotFound when the job does not exist.
func (r *jobRepository) DeleteWithApplications(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Applications go first so the job_id foreign key never blocks the
		// job delete. A missing job rolls the whole transaction back.
		if err := tx.Where("job_id = ?", id).Delete(&model.Application{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.Job{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
