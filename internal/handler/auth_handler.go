package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "jobportal/internal/errors"
	"jobportal/internal/model"
	"jobportal/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest represents a sign-up request.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

// SigninRequest represents a sign-in request.
type SigninRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents a successful authentication response.
type AuthResponse struct {
	Message string           `json:"message"`
	Token   string           `json:"token"`
	User    model.PublicUser `json:"user"`
}

// Signup godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Registration data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: "Invalid request body."})
	}

	if err := c.Validate(&req); err != nil {
		if req.Email == "" || req.Password == "" {
			return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: "Email and password are required."})
		}
		if len(req.Password) < 6 {
			return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: "Password must be at least 6 characters long."})
		}
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: err.Error()})
	}

	token, user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, apperrors.ErrorResponse{Message: "User with that email already exists."})
		}
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{
			Message: "Server error during registration.",
			Error:   err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, AuthResponse{
		Message: "User registered successfully!",
		Token:   token,
		User:    user.Public(),
	})
}

// Signin godoc
// @Summary Authenticate a user and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SigninRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req SigninRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: "Invalid request body."})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: "Email and password are required."})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Message: "Invalid credentials."})
		}
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{
			Message: "Server error during login.",
			Error:   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Message: "Logged in successfully!",
		Token:   token,
		User:    user.Public(),
	})
}
