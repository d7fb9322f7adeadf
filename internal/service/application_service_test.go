package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "jobportal/internal/errors"
	"jobportal/internal/model"
)

// MockApplicationRepository is a mock implementation of ApplicationRepository.
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, application *model.Application) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

func (m *MockApplicationRepository) Update(ctx context.Context, application *model.Application) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

func (m *MockApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Application), args.Error(1)
}

func (m *MockApplicationRepository) ListWithJobs(ctx context.Context) ([]model.Application, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Application), args.Error(1)
}

func TestApplicationService_Submit(t *testing.T) {
	jobID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name          string
		setupMocks    func(*MockApplicationRepository, *MockJobRepository)
		expectedError error
	}{
		{
			name: "successful submission",
			setupMocks: func(apps *MockApplicationRepository, jobs *MockJobRepository) {
				jobs.On("FindByID", mock.Anything, jobID).Return(&model.Job{ID: jobID}, nil)
				apps.On("Create", mock.Anything, mock.AnythingOfType("*model.Application")).Return(nil)
			},
		},
		{
			name: "job does not exist",
			setupMocks: func(apps *MockApplicationRepository, jobs *MockJobRepository) {
				jobs.On("FindByID", mock.Anything, jobID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrJobDoesNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockApps := new(MockApplicationRepository)
			mockJobs := new(MockJobRepository)
			tt.setupMocks(mockApps, mockJobs)

			svc := NewApplicationService(mockApps, mockJobs)
			application, err := svc.Submit(context.Background(), SubmitInput{
				JobID: jobID,
				Name:  "Jane Applicant",
				Email: "jane@test.com",
			}, userID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, application)
				// Nothing was persisted.
				mockApps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, jobID, application.JobID)
				// Caller identity comes from the token, not the body.
				assert.NotNil(t, application.UserID)
				assert.Equal(t, userID, *application.UserID)
				assert.Equal(t, model.StatusPending, application.Status)
				assert.WithinDuration(t, time.Now(), application.AppliedDate, time.Minute)
			}
			mockApps.AssertExpectations(t)
			mockJobs.AssertExpectations(t)
		})
	}
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	appID := uuid.New()

	tests := []struct {
		name          string
		status        string
		setupMock     func(*MockApplicationRepository)
		expectedError error
	}{
		{
			name:   "accept a pending application",
			status: model.StatusAccepted,
			setupMock: func(m *MockApplicationRepository) {
				m.On("FindByID", mock.Anything, appID).Return(&model.Application{ID: appID, Status: model.StatusPending}, nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.Application")).Return(nil)
			},
		},
		{
			name:   "any status may change to any other",
			status: model.StatusPending,
			setupMock: func(m *MockApplicationRepository) {
				m.On("FindByID", mock.Anything, appID).Return(&model.Application{ID: appID, Status: model.StatusRejected}, nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.Application")).Return(nil)
			},
		},
		{
			name:          "status outside the enum",
			status:        "Archived",
			setupMock:     func(m *MockApplicationRepository) {},
			expectedError: apperrors.ErrInvalidStatus,
		},
		{
			name:   "application not found",
			status: model.StatusRejected,
			setupMock: func(m *MockApplicationRepository) {
				m.On("FindByID", mock.Anything, appID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrApplicationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockApps := new(MockApplicationRepository)
			tt.setupMock(mockApps)

			svc := NewApplicationService(mockApps, new(MockJobRepository))
			application, err := svc.UpdateStatus(context.Background(), appID, tt.status)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, application)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.status, application.Status)
			}
			mockApps.AssertExpectations(t)
		})
	}
}

func TestApplicationService_List(t *testing.T) {
	job := &model.Job{ID: uuid.New(), Title: "X", Company: "Acme"}
	apps := []model.Application{
		{ID: uuid.New(), JobID: job.ID, Job: job, AppliedDate: time.Now()},
		{ID: uuid.New(), JobID: uuid.New(), Job: nil, AppliedDate: time.Now().Add(-time.Hour)},
	}

	mockApps := new(MockApplicationRepository)
	mockApps.On("ListWithJobs", mock.Anything).Return(apps, nil)

	svc := NewApplicationService(mockApps, new(MockJobRepository))
	got, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.NotNil(t, got[0].Job)
	assert.Nil(t, got[1].Job)
	mockApps.AssertExpectations(t)
}
