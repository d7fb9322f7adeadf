package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jobportal/internal/auth"
	apperrors "jobportal/internal/errors"
	"jobportal/internal/model"
	"jobportal/internal/service"
)

// ApplicationHandler handles application endpoints.
type ApplicationHandler struct {
	applicationService service.ApplicationService
}

// NewApplicationHandler creates a new application handler.
func NewApplicationHandler(applicationService service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// SubmitRequest represents an application submission.
type SubmitRequest struct {
	JobID       string `json:"jobId" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	ResumeLink  string `json:"resumeLink"`
	CoverLetter string `json:"coverLetter"`
}

// StatusRequest represents a status-update request.
type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Accepted Rejected"`
}

// JobRef is the expanded job reference embedded in listed applications.
type JobRef struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Company string    `json:"company"`
}

// ApplicationResponse is an application with its job reference expanded.
// Job is null when the referenced job no longer exists.
type ApplicationResponse struct {
	model.Application
	Job *JobRef `json:"job"`
}

func toApplicationResponse(app model.Application) ApplicationResponse {
	resp := ApplicationResponse{Application: app}
	if app.Job != nil {
		resp.Job = &JobRef{ID: app.Job.ID, Title: app.Job.Title, Company: app.Job.Company}
	}
	return resp
}

// List godoc
// @Summary List all applications, newest first, with expanded job references
// @Tags applications
// @Produce json
// @Success 200 {array} ApplicationResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /applications [get]
func (h *ApplicationHandler) List(c echo.Context) error {
	applications, err := h.applicationService.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{
			Message: "Failed to fetch applications.",
			Error:   err.Error(),
		})
	}

	out := make([]ApplicationResponse, 0, len(applications))
	for _, app := range applications {
		out = append(out, toApplicationResponse(app))
	}
	return c.JSON(http.StatusOK, out)
}

// Submit godoc
// @Summary Submit a job application
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SubmitRequest true "Application fields"
// @Success 201 {object} model.Application
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /applications [post]
func (h *ApplicationHandler) Submit(c echo.Context) error {
	claims := auth.ClaimsFromContext(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Message: "Authentication token required."})
	}

	var req SubmitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: "Invalid request body."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Message: "Missing required application fields: jobId, name, email",
		})
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Message: "Invalid jobId provided: Job does not exist.",
		})
	}

	application, err := h.applicationService.Submit(c.Request().Context(), service.SubmitInput{
		JobID:       jobID,
		Name:        req.Name,
		Email:       req.Email,
		ResumeLink:  req.ResumeLink,
		CoverLetter: req.CoverLetter,
	}, claims.UserID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		if httpErr.StatusCode == http.StatusInternalServerError {
			return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{
				Message: "Failed to submit application.",
				Error:   err.Error(),
			})
		}
		return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
	}
	return c.JSON(http.StatusCreated, application)
}

// UpdateStatus godoc
// @Summary Update the status of an application
// @Tags applications
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body StatusRequest true "New status"
// @Success 200 {object} model.Application
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /applications/{id}/status [put]
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, apperrors.ErrorResponse{Message: "Application not found for status update."})
	}

	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: "Invalid request body."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Message: "Invalid status provided. Must be Pending, Accepted, or Rejected.",
		})
	}

	application, err := h.applicationService.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToResponse())
	}
	return c.JSON(http.StatusOK, application)
}
