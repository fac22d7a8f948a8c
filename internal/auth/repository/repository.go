package repository

import (
	authdomain "github.com/xniebuhr/FinanceTracker/internal/auth/domain"
)

// UserRepository is the credential-store capability the auth core depends on.
// It owns password hashing and the reset-code lifecycle; callers never see a
// hash or a stored code. Find methods return (nil, nil) when no user matches.
type UserRepository interface {
	// Create persists a new user with the given plaintext password. It
	// enforces the password policy and uniqueness of username and email,
	// returning the taxonomy errors from the domain package on violation.
	Create(user *authdomain.User, password string) error

	FindByEmail(email string) (*authdomain.User, error)
	FindByUsername(username string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)

	// VerifyPassword reports whether the candidate matches the user's
	// stored hash.
	VerifyPassword(user *authdomain.User, password string) bool

	// ChangePassword replaces the user's password after policy checks.
	ChangePassword(user *authdomain.User, newPassword string) error

	// GenerateResetCode issues a single-use, time-limited reset code for
	// the user, replacing any outstanding code. Only the code itself is
	// returned; the store keeps a hash.
	GenerateResetCode(user *authdomain.User) (string, error)

	// ConsumeResetCode validates the code and, if valid, atomically clears
	// it and sets the new password. Returns ErrInvalidResetCode when the
	// code does not match or has expired.
	ConsumeResetCode(user *authdomain.User, code, newPassword string) error

	Update(user *authdomain.User) error
	Delete(user *authdomain.User) error
}
