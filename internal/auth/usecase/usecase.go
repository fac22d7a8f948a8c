package usecase

import (
	authdomain "github.com/xniebuhr/FinanceTracker/internal/auth/domain"
	authdto "github.com/xniebuhr/FinanceTracker/internal/auth/dto"
)

// RecordPurger removes the domain records a user owns. Account deletion
// calls it so no records outlive their owner.
type RecordPurger interface {
	DeleteByUserID(userID string) error
}

// AuthUsecase defines the credential and token lifecycle operations.
type AuthUsecase interface {
	// Register creates an account and issues the first token pair.
	Register(req *authdto.RegisterRequest) (*authdto.RegisterResponse, error)

	// Login verifies credentials (by username or email) and rotates the
	// stored refresh token.
	Login(req *authdto.LoginRequest) (*authdto.LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair,
	// invalidating the presented token.
	Refresh(req *authdto.RefreshRequest) (*authdto.RefreshResponse, error)

	// ForgotPassword requests a reset code for the email if an account
	// exists. It never reveals whether one does.
	ForgotPassword(req *authdto.ForgotPasswordRequest) error

	// ResetPassword changes the password using a previously issued reset
	// code. A missing account is indistinguishable from success.
	ResetPassword(req *authdto.ResetPasswordRequest) error

	// DeleteAccount removes the user record and with it the refresh token.
	DeleteAccount(userID string) error

	// GetProfile returns the profile for an authenticated subject.
	GetProfile(userID string) (*authdto.UserResponse, error)

	// UpdateProfile applies a partial profile update.
	UpdateProfile(userID string, req *authdto.UpdateInfoRequest) (*authdto.UserResponse, error)

	// ChangePassword verifies the current password then sets a new one.
	ChangePassword(userID string, req *authdto.ChangePasswordRequest) error

	// ValidateToken verifies a bearer access token and resolves its subject.
	ValidateToken(tokenString string) (*authdomain.User, error)
}
