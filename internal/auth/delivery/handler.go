package delivery

import (
	"errors"
	"net/http"

	authdomain "github.com/xniebuhr/FinanceTracker/internal/auth/domain"
	authdto "github.com/xniebuhr/FinanceTracker/internal/auth/dto"
	"github.com/xniebuhr/FinanceTracker/internal/auth/usecase"
	"github.com/xniebuhr/FinanceTracker/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles auth and profile HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Register creates a new account and returns the first token pair.
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	result, err := h.authUsecase.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, authdomain.ErrDuplicateEmail),
			errors.Is(err, authdomain.ErrDuplicateUsername),
			errors.Is(err, authdomain.ErrPasswordPolicy):
			response.Fail(c, http.StatusBadRequest, "Registration failed", err.Error())
		default:
			response.Fail(c, http.StatusBadRequest, "Registration failed")
		}
		return
	}

	response.Created(c, "User registered successfully", result)
}

// Login verifies credentials and issues a new token pair.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	result, err := h.authUsecase.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, authdomain.ErrMissingLoginID):
			response.Fail(c, http.StatusBadRequest, "Invalid input", err.Error())
		case errors.Is(err, authdomain.ErrInvalidCredentials):
			response.Fail(c, http.StatusUnauthorized, "Invalid credentials")
		default:
			response.Fail(c, http.StatusUnauthorized, "Invalid credentials")
		}
		return
	}

	response.OK(c, "Login successful", result)
}

// Refresh rotates the refresh token and returns a new token pair.
// POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req authdto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	result, err := h.authUsecase.Refresh(&req)
	if err != nil {
		// One body for every failure mode, so callers cannot tell a missing
		// user from a stale token.
		response.Fail(c, http.StatusUnauthorized, "Invalid refresh request")
		return
	}

	response.OK(c, "Token refreshed successfully", result)
}

// ForgotPassword requests a password-reset code. The response is identical
// whether or not the email belongs to an account.
// POST /api/auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req authdto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	if err := h.authUsecase.ForgotPassword(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Request failed")
		return
	}

	response.OK(c, "Password reset instructions have been sent to your email", nil)
}

// ResetPassword sets a new password using a previously issued reset code.
// POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req authdto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	if err := h.authUsecase.ResetPassword(&req); err != nil {
		switch {
		case errors.Is(err, authdomain.ErrInvalidResetCode),
			errors.Is(err, authdomain.ErrPasswordPolicy):
			response.Fail(c, http.StatusBadRequest, "Password reset failed", err.Error())
		default:
			response.Fail(c, http.StatusBadRequest, "Password reset failed")
		}
		return
	}

	response.OK(c, "Password has been reset successfully", nil)
}

// DeleteAccount removes the authenticated user's account.
// DELETE /api/auth/delete
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.authUsecase.DeleteAccount(userID); err != nil {
		if errors.Is(err, authdomain.ErrUserNotFound) {
			response.Fail(c, http.StatusNotFound, "User not found", err.Error())
			return
		}
		response.Fail(c, http.StatusBadRequest, "Account deletion failed")
		return
	}

	response.OK(c, "Account deleted successfully", nil)
}

// Me returns the authenticated user's profile.
// GET /api/users/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("userID")

	profile, err := h.authUsecase.GetProfile(userID)
	if err != nil {
		if errors.Is(err, authdomain.ErrUserNotFound) {
			response.Fail(c, http.StatusNotFound, "User not found", err.Error())
			return
		}
		response.Fail(c, http.StatusBadRequest, "Request failed")
		return
	}

	response.OK(c, "User retrieved successfully", profile)
}

// UpdateProfile applies a partial update to the authenticated user's profile.
// PUT /api/users/update
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString("userID")

	var req authdto.UpdateInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	profile, err := h.authUsecase.UpdateProfile(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, authdomain.ErrUserNotFound):
			response.Fail(c, http.StatusNotFound, "User not found", err.Error())
		case errors.Is(err, authdomain.ErrEmptyProfileUpdate):
			response.Fail(c, http.StatusBadRequest, "Invalid input", err.Error())
		case errors.Is(err, authdomain.ErrDuplicateUsername):
			response.Fail(c, http.StatusBadRequest, "Update failed", err.Error())
		default:
			response.Fail(c, http.StatusBadRequest, "Update failed")
		}
		return
	}

	response.OK(c, "User updated successfully", profile)
}

// ChangePassword verifies the current password and sets a new one.
// POST /api/users/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := c.GetString("userID")

	var req authdto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindingError(c, err)
		return
	}

	if err := h.authUsecase.ChangePassword(userID, &req); err != nil {
		switch {
		case errors.Is(err, authdomain.ErrUserNotFound):
			response.Fail(c, http.StatusNotFound, "User not found", err.Error())
		case errors.Is(err, authdomain.ErrWrongCurrentPassword),
			errors.Is(err, authdomain.ErrPasswordPolicy):
			response.Fail(c, http.StatusBadRequest, "Password change failed", err.Error())
		default:
			response.Fail(c, http.StatusBadRequest, "Password change failed")
		}
		return
	}

	response.OK(c, "Password changed successfully", nil)
}
