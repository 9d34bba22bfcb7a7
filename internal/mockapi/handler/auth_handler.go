package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Didine-06/travel-agency-sub000/internal/dto"
	"github.com/Didine-06/travel-agency-sub000/internal/mockapi/middleware"
	"github.com/Didine-06/travel-agency-sub000/internal/mockapi/service"
	"github.com/Didine-06/travel-agency-sub000/pkg/response"
)

// AuthHandler handles authentication and profile HTTP requests
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles account creation
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			response.Error(c, 409, "User with this email already exists")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, result)
}

// Login handles user login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.auth.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			// A failed login is a business rejection, not a session
			// expiry, so it must not come back as 401.
			response.BadRequest(c, "Invalid email or password")
		case errors.Is(err, service.ErrUserInactive):
			response.Forbidden(c, "User account is inactive")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Success(c, result)
}

// Logout revokes the caller's token
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	raw := c.GetString(middleware.CtxToken)
	if err := h.auth.Logout(c.Request.Context(), raw); err != nil {
		response.InternalError(c, err)
		return
	}
	response.SuccessMessage(c, nil, "logged out")
}

// GetProfile returns the caller's profile
// GET /api/v1/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	result, err := h.auth.Profile(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, result)
}

// UpdateProfile applies a partial profile update
// PUT /api/v1/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.auth.UpdateProfile(c.Request.Context(), c.GetString(middleware.CtxUserID), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, result)
}
