package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrJobNotFound is returned when a job is not found.
	ErrJobNotFound = errors.New("job not found")
	// ErrApplicationNotFound is returned when an application is not found.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrJobDoesNotExist is returned when an application references a job that does not exist.
	ErrJobDoesNotExist = errors.New("invalid jobId provided: job does not exist")
	// ErrInvalidStatus is returned when an application status is outside the enum.
	ErrInvalidStatus = errors.New("invalid status provided, must be Pending, Accepted, or Rejected")
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// ToResponse converts an HTTPError to an ErrorResponse body.
func (e *HTTPError) ToResponse() ErrorResponse {
	return ErrorResponse{Message: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrJobNotFound):
		return NewHTTPError(http.StatusNotFound, "Job not found")
	case errors.Is(err, ErrApplicationNotFound):
		return NewHTTPError(http.StatusNotFound, "Application not found")
	case errors.Is(err, ErrJobDoesNotExist):
		return NewHTTPError(http.StatusBadRequest, "Invalid jobId provided: Job does not exist.")
	case errors.Is(err, ErrInvalidStatus):
		return NewHTTPError(http.StatusBadRequest, "Invalid status provided. Must be Pending, Accepted, or Rejected.")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
