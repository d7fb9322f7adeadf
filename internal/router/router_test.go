package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"jobportal/internal/auth"
	"jobportal/internal/config"
	"jobportal/internal/handler"
	"jobportal/internal/model"
	"jobportal/internal/service"
)

// stubAuthService satisfies service.AuthService for wiring tests.
type stubAuthService struct{}

func (stubAuthService) Register(ctx context.Context, email, password, role string) (string, *model.User, error) {
	return "", nil, service.ErrEmailTaken
}

func (stubAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	return "", nil, service.ErrInvalidCredentials
}

// stubJobService satisfies service.JobService.
type stubJobService struct{}

func (stubJobService) List(ctx context.Context) ([]model.Job, error)             { return nil, nil }
func (stubJobService) Get(ctx context.Context, id uuid.UUID) (*model.Job, error) { return nil, nil }
func (stubJobService) Create(ctx context.Context, input service.JobInput) (*model.Job, error) {
	return &model.Job{}, nil
}
func (stubJobService) Update(ctx context.Context, id uuid.UUID, input service.JobInput) (*model.Job, error) {
	return &model.Job{}, nil
}
func (stubJobService) Delete(ctx context.Context, id uuid.UUID) error { return nil }

// stubApplicationService records the identity Submit was called with.
type stubApplicationService struct {
	submittedAs *uuid.UUID
}

func (s *stubApplicationService) List(ctx context.Context) ([]model.Application, error) {
	return nil, nil
}

func (s *stubApplicationService) Submit(ctx context.Context, input service.SubmitInput, userID uuid.UUID) (*model.Application, error) {
	s.submittedAs = &userID
	return &model.Application{
		ID:     uuid.New(),
		JobID:  input.JobID,
		UserID: &userID,
		Status: model.StatusPending,
	}, nil
}

func (s *stubApplicationService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Application, error) {
	return &model.Application{ID: id, Status: status}, nil
}

func newTestRouter(apps *stubApplicationService, secret string) *echo.Echo {
	e := echo.New()
	cfg := &config.Config{JWTSecret: secret}
	Register(
		e,
		cfg,
		handler.NewAuthHandler(stubAuthService{}),
		handler.NewJobHandler(stubJobService{}),
		handler.NewApplicationHandler(apps),
	)
	return e
}

func TestApplicationSubmitGate(t *testing.T) {
	const secret = "test-secret"
	jobID := uuid.New()
	body := `{"jobId":"` + jobID.String() + `","name":"Jane","email":"jane@test.com"}`

	newSubmit := func(token string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/applications", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		if token != "" {
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		}
		return req
	}

	t.Run("missing token is 401", func(t *testing.T) {
		apps := &stubApplicationService{}
		e := newTestRouter(apps, secret)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, newSubmit(""))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Authentication token required.")
		assert.Nil(t, apps.submittedAs)
	})

	t.Run("garbage token is 403", func(t *testing.T) {
		apps := &stubApplicationService{}
		e := newTestRouter(apps, secret)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, newSubmit("not.a.jwt"))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid or expired token.")
		assert.Nil(t, apps.submittedAs)
	})

	t.Run("token signed with another key is 403", func(t *testing.T) {
		token, err := auth.NewJWTService("other-secret").GenerateToken(&model.User{
			ID: uuid.New(), Email: "user@test.com", Role: model.RoleUser,
		})
		assert.NoError(t, err)

		apps := &stubApplicationService{}
		e := newTestRouter(apps, secret)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, newSubmit(token))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Nil(t, apps.submittedAs)
	})

	t.Run("valid token submits as the token identity", func(t *testing.T) {
		userID := uuid.New()
		token, err := auth.NewJWTService(secret).GenerateToken(&model.User{
			ID: userID, Email: "user@test.com", Role: model.RoleUser,
		})
		assert.NoError(t, err)

		apps := &stubApplicationService{}
		e := newTestRouter(apps, secret)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, newSubmit(token))

		assert.Equal(t, http.StatusCreated, rec.Code)
		if assert.NotNil(t, apps.submittedAs) {
			assert.Equal(t, userID, *apps.submittedAs)
		}

		var got model.Application
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, userID, *got.UserID)
	})
}

func TestPublicRoutesNeedNoToken(t *testing.T) {
	apps := &stubApplicationService{}
	e := newTestRouter(apps, "test-secret")

	for _, path := range []string{"/api/jobs", "/api/applications", "/healthz"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}
