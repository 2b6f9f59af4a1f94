package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	apperrors "github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/errors"
	"github.com/NCHAKRADHAR-SINGH1/learn-hub/internal/service"
)

// AuthHandler handles registration and login endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Type     string `json:"type" validate:"omitempty,oneof=learner educator"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest represents a token refresh request.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Success      bool        `json:"success"`
	Message      string      `json:"message"`
	Token        string      `json:"token"`
	RefreshToken string      `json:"refresh_token,omitempty"`
	UserData     interface{} `json:"userData"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} errors.Response
// @Failure 400 {object} errors.Response
// @Failure 409 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Response{Success: false, Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Response{Success: false, Message: err.Error()})
	}

	if _, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password, req.Type); err != nil {
		return c.JSON(apperrors.HTTPStatus(err), apperrors.Fail(err))
	}

	return c.JSON(http.StatusCreated, apperrors.Response{Success: true, Message: "Register successful"})
}

// Login godoc
// @Summary Login and receive a one-day token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Response{Success: false, Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Response{Success: false, Message: err.Error()})
	}

	accessToken, refreshToken, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return c.JSON(apperrors.HTTPStatus(err), apperrors.Fail(err))
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Success:      true,
		Message:      "Login successful",
		Token:        accessToken,
		RefreshToken: refreshToken,
		UserData:     user,
	})
}

// Refresh godoc
// @Summary Refresh an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Response{Success: false, Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Response{Success: false, Message: err.Error()})
	}

	accessToken, err := h.authService.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return c.JSON(apperrors.HTTPStatus(err), apperrors.Fail(err))
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "token": accessToken})
}

// Logout godoc
// @Summary Invalidate a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Response{Success: false, Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.Response{Success: false, Message: err.Error()})
	}

	if err := h.authService.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return c.JSON(apperrors.HTTPStatus(err), apperrors.Fail(err))
	}

	return c.JSON(http.StatusOK, apperrors.Response{Success: true, Message: "Logged out successfully"})
}

// Me godoc
// @Summary Return the authenticated user's record
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apperrors.Response{Success: false, Message: "invalid token"})
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apperrors.Response{Success: false, Message: "invalid token"})
	}
	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return c.JSON(http.StatusUnauthorized, apperrors.Response{Success: false, Message: "invalid token"})
	}

	user, err := h.authService.Me(c.Request().Context(), uint(userID))
	if err != nil {
		return c.JSON(apperrors.HTTPStatus(err), apperrors.Fail(err))
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "userData": user})
}
