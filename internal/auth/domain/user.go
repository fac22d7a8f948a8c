package domain

import "time"

// User is the persisted account record. A user holds at most one live
// refresh token; issuing a new one overwrites the previous value.
type User struct {
	ID           string `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"uniqueIndex"`
	Email        string `json:"email" gorm:"uniqueIndex"`
	PasswordHash string `json:"-"` // Never return the hash in JSON
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`

	RefreshToken          string     `json:"-"`
	RefreshTokenExpiresAt *time.Time `json:"-"`

	// Single-use password-reset material. Only the bcrypt hash of the code
	// is stored; both fields are cleared when the code is consumed.
	ResetCodeHash      string     `json:"-"`
	ResetCodeExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
