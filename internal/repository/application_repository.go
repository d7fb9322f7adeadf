package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobportal/internal/model"
)

// ApplicationRepository defines application persistence operations.
type ApplicationRepository interface {
	Create(ctx context.Context, application *model.Application) error
	Update(ctx context.Context, application *model.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error)
	ListWithJobs(ctx context.Context) ([]model.Application, error)
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create creates a new application.
func (r *applicationRepository) Create(ctx context.Context, application *model.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

// Update saves an existing application.
func (r *applicationRepository) Update(ctx context.Context, application *model.Application) error {
	return r.db.WithContext(ctx).Save(application).Error
}

// FindByID finds an application by ID.
func (r *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	var application model.Application
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&application).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

// ListWithJobs returns all applications ordered by applied date descending,
// with the referenced Job preloaded. The Job relation is nil when the job has
// been deleted out from under the application.
func (r *applicationRepository) ListWithJobs(ctx context.Context) ([]model.Application, error) {
	var applications []model.Application
	if err := r.db.WithContext(ctx).Preload("Job").Order("applied_date DESC").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}
