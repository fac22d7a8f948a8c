package repository

import (
	"errors"
	"time"
	"unicode"

	authdomain "github.com/xniebuhr/FinanceTracker/internal/auth/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// resetCodeTTL bounds how long an issued password-reset code stays valid.
const resetCodeTTL = time.Hour

// userRepository implements UserRepository on GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(user *authdomain.User, password string) error {
	if err := checkPasswordPolicy(password); err != nil {
		return err
	}

	if existing, err := r.FindByEmail(user.Email); err != nil {
		return err
	} else if existing != nil {
		return authdomain.ErrDuplicateEmail
	}
	if existing, err := r.FindByUsername(user.Username); err != nil {
		return err
	} else if existing != nil {
		return authdomain.ErrDuplicateUsername
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}

	user.ID = uuid.New().String()
	user.PasswordHash = hash
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	return r.db.Create(user).Error
}

func (r *userRepository) FindByEmail(email string) (*authdomain.User, error) {
	return r.findOne("email = ?", email)
}

func (r *userRepository) FindByUsername(username string) (*authdomain.User, error) {
	return r.findOne("username = ?", username)
}

func (r *userRepository) FindByID(id string) (*authdomain.User, error) {
	return r.findOne("id = ?", id)
}

func (r *userRepository) findOne(query string, arg string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where(query, arg).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) VerifyPassword(user *authdomain.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

func (r *userRepository) ChangePassword(user *authdomain.User, newPassword string) error {
	if err := checkPasswordPolicy(newPassword); err != nil {
		return err
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return r.Update(user)
}

func (r *userRepository) GenerateResetCode(user *authdomain.User) (string, error) {
	code := uuid.New().String()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	expiresAt := time.Now().Add(resetCodeTTL)
	user.ResetCodeHash = string(hash)
	user.ResetCodeExpiresAt = &expiresAt
	if err := r.Update(user); err != nil {
		return "", err
	}
	return code, nil
}

func (r *userRepository) ConsumeResetCode(user *authdomain.User, code, newPassword string) error {
	if user.ResetCodeHash == "" ||
		user.ResetCodeExpiresAt == nil ||
		user.ResetCodeExpiresAt.Before(time.Now()) ||
		bcrypt.CompareHashAndPassword([]byte(user.ResetCodeHash), []byte(code)) != nil {
		return authdomain.ErrInvalidResetCode
	}

	if err := checkPasswordPolicy(newPassword); err != nil {
		return err
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	// Clear the code with the password change so it cannot be replayed.
	user.PasswordHash = hash
	user.ResetCodeHash = ""
	user.ResetCodeExpiresAt = nil
	return r.Update(user)
}

func (r *userRepository) Update(user *authdomain.User) error {
	user.UpdatedAt = time.Now()
	return r.db.Save(user).Error
}

func (r *userRepository) Delete(user *authdomain.User) error {
	return r.db.Delete(user).Error
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// checkPasswordPolicy enforces the account password strength rules.
func checkPasswordPolicy(password string) error {
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if len(password) < 8 || !upper || !lower || !digit {
		return authdomain.ErrPasswordPolicy
	}
	return nil
}
