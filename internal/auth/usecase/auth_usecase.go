package usecase

import (
	"crypto/subtle"
	"time"

	authdomain "github.com/xniebuhr/FinanceTracker/internal/auth/domain"
	authdto "github.com/xniebuhr/FinanceTracker/internal/auth/dto"
	"github.com/xniebuhr/FinanceTracker/internal/auth/repository"
	"github.com/xniebuhr/FinanceTracker/internal/auth/token"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *token.Issuer
	records  RecordPurger
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokens *token.Issuer, records RecordPurger) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		records:  records,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.RegisterResponse, error) {
	user := &authdomain.User{
		Username:    req.Username,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	}

	if err := u.userRepo.Create(user, req.Password); err != nil {
		return nil, err
	}

	accessToken, expiresAt, refreshToken, err := u.rotateTokens(user)
	if err != nil {
		return nil, err
	}

	return &authdto.RegisterResponse{
		ID:           user.ID,
		Username:     user.Username,
		FirstName:    user.FirstName,
		AccessToken:  accessToken,
		ExpiresAt:    expiresAt,
		RefreshToken: refreshToken,
	}, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.LoginResponse, error) {
	var (
		user *authdomain.User
		err  error
	)
	switch {
	case req.Email != "":
		user, err = u.userRepo.FindByEmail(req.Email)
	case req.Username != "":
		user, err = u.userRepo.FindByUsername(req.Username)
	default:
		return nil, authdomain.ErrMissingLoginID
	}
	if err != nil {
		return nil, err
	}

	// A missing account and a wrong password produce the same error.
	if user == nil || !u.userRepo.VerifyPassword(user, req.Password) {
		return nil, authdomain.ErrInvalidCredentials
	}

	accessToken, expiresAt, refreshToken, err := u.rotateTokens(user)
	if err != nil {
		return nil, err
	}

	return &authdto.LoginResponse{
		ID:           user.ID,
		Username:     user.Username,
		FirstName:    user.FirstName,
		AccessToken:  accessToken,
		ExpiresAt:    expiresAt,
		RefreshToken: refreshToken,
	}, nil
}

func (u *authUsecase) Refresh(req *authdto.RefreshRequest) (*authdto.RefreshResponse, error) {
	user, err := u.userRepo.FindByID(req.UserID)
	if err != nil {
		return nil, err
	}

	// Every failure mode maps to the same error so the endpoint cannot be
	// used to probe which check was tripped.
	if user == nil || !refreshTokenValid(user, req.RefreshToken, time.Now()) {
		return nil, authdomain.ErrInvalidRefresh
	}

	accessToken, expiresAt, refreshToken, err := u.rotateTokens(user)
	if err != nil {
		return nil, err
	}

	return &authdto.RefreshResponse{
		AccessToken:  accessToken,
		ExpiresAt:    expiresAt,
		RefreshToken: refreshToken,
	}, nil
}

func (u *authUsecase) ForgotPassword(req *authdto.ForgotPasswordRequest) error {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return err
	}
	if user == nil {
		// Same outcome as the success path: account existence stays hidden.
		return nil
	}

	_, err = u.userRepo.GenerateResetCode(user)
	// TODO: deliver the code via the mailer once SMTP settings land.
	// It must never appear in an API response.
	return err
}

func (u *authUsecase) ResetPassword(req *authdto.ResetPasswordRequest) error {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return err
	}
	if user == nil {
		// Indistinguishable from a successful reset.
		return nil
	}
	return u.userRepo.ConsumeResetCode(user, req.ResetToken, req.NewPassword)
}

func (u *authUsecase) DeleteAccount(userID string) error {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return authdomain.ErrUserNotFound
	}

	// The user's records go with the account.
	if err := u.records.DeleteByUserID(user.ID); err != nil {
		return err
	}
	return u.userRepo.Delete(user)
}

func (u *authUsecase) GetProfile(userID string) (*authdto.UserResponse, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}
	return profileOf(user), nil
}

func (u *authUsecase) UpdateProfile(userID string, req *authdto.UpdateInfoRequest) (*authdto.UserResponse, error) {
	if req.Username == "" && req.FirstName == "" && req.LastName == "" && req.PhoneNumber == "" {
		return nil, authdomain.ErrEmptyProfileUpdate
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}

	if req.Username != "" && req.Username != user.Username {
		existing, err := u.userRepo.FindByUsername(req.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, authdomain.ErrDuplicateUsername
		}
		user.Username = req.Username
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}

	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}
	return profileOf(user), nil
}

func (u *authUsecase) ChangePassword(userID string, req *authdto.ChangePasswordRequest) error {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return authdomain.ErrUserNotFound
	}
	if !u.userRepo.VerifyPassword(user, req.CurrentPassword) {
		return authdomain.ErrWrongCurrentPassword
	}
	return u.userRepo.ChangePassword(user, req.NewPassword)
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.User, error) {
	userID, err := u.tokens.ParseAccessToken(tokenString, time.Now())
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUserNotFound
	}
	return user, nil
}

// rotateTokens mints a fresh access/refresh pair and unconditionally
// overwrites the user's stored refresh token. Only the latest token is ever
// valid; the write is last-writer-wins per user row.
func (u *authUsecase) rotateTokens(user *authdomain.User) (accessToken string, expiresAt time.Time, refreshToken string, err error) {
	now := time.Now()

	accessToken, expiresAt, err = u.tokens.IssueAccessToken(user, now)
	if err != nil {
		return "", time.Time{}, "", err
	}

	refreshToken, err = u.tokens.GenerateRefreshToken()
	if err != nil {
		return "", time.Time{}, "", err
	}

	refreshExpiry := u.tokens.RefreshTokenExpiry(now)
	user.RefreshToken = refreshToken
	user.RefreshTokenExpiresAt = &refreshExpiry
	if err = u.userRepo.Update(user); err != nil {
		return "", time.Time{}, "", err
	}
	return accessToken, expiresAt, refreshToken, nil
}

func refreshTokenValid(user *authdomain.User, candidate string, now time.Time) bool {
	if user.RefreshToken == "" || user.RefreshTokenExpiresAt == nil || !now.Before(*user.RefreshTokenExpiresAt) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(user.RefreshToken), []byte(candidate)) == 1
}

func profileOf(user *authdomain.User) *authdto.UserResponse {
	return &authdto.UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
	}
}
