package domain

import "errors"

// Error taxonomy for the auth core. The delivery layer maps these to HTTP
// statuses; nothing below ever carries store-internal detail.
var (
	// ErrDuplicateEmail and ErrDuplicateUsername are safe to disclose at
	// registration: proving you don't already own an identity is intrinsic
	// to the operation.
	ErrDuplicateEmail    = errors.New("an account with this email already exists")
	ErrDuplicateUsername = errors.New("an account with this username already exists")

	// ErrInvalidCredentials is returned identically whether the account is
	// missing or the password is wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidRefresh covers every refresh failure (unknown user, empty,
	// mismatched or expired token) so the endpoint cannot be used to probe
	// account existence.
	ErrInvalidRefresh = errors.New("refresh token is invalid or expired")

	// ErrUserNotFound is only surfaced to already-authenticated callers.
	ErrUserNotFound = errors.New("no account exists for the current user")

	// ErrInvalidResetCode is surfaced only when the target account exists.
	ErrInvalidResetCode = errors.New("reset code is invalid or expired")

	ErrPasswordPolicy = errors.New("password must be at least 8 characters and contain an upper-case letter, a lower-case letter, and a digit")

	// Request-shape failures detected after binding.
	ErrMissingLoginID       = errors.New("username or email is required")
	ErrEmptyProfileUpdate   = errors.New("at least one field must be provided to update user info")
	ErrWrongCurrentPassword = errors.New("current password is incorrect")
)
