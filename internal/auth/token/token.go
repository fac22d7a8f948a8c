// Package token mints the two kinds of session credential: signed HS256
// access tokens and opaque random refresh tokens.
package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	authdomain "github.com/xniebuhr/FinanceTracker/internal/auth/domain"
	"github.com/xniebuhr/FinanceTracker/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// refreshTokenBytes is the entropy drawn for each refresh token (512 bits).
const refreshTokenBytes = 64

// Issuer produces self-contained access tokens. The signing configuration is
// read once at construction and never mutated.
type Issuer struct {
	secret        []byte
	issuer        string
	audience      string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewIssuer builds an Issuer from the validated process configuration.
// Config.Validate has already rejected an empty signing key at boot.
func NewIssuer(cfg *config.Config) *Issuer {
	return &Issuer{
		secret:        []byte(cfg.JWTSecret),
		issuer:        cfg.JWTIssuer,
		audience:      cfg.JWTAudience,
		accessExpiry:  time.Duration(cfg.AccessTokenMinutes) * time.Minute,
		refreshExpiry: time.Duration(cfg.RefreshTokenDays) * 24 * time.Hour,
	}
}

// IssueAccessToken signs a claim bundle for the user. The jti claim makes two
// tokens for the same user distinct even when issued in the same instant.
func (i *Issuer) IssueAccessToken(user *authdomain.User, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessExpiry)

	claims := jwt.MapClaims{
		"sub":       user.ID,
		"jti":       uuid.New().String(),
		"username":  user.Username,
		"email":     user.Email,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"iss":       i.issuer,
		"aud":       i.audience,
		"iat":       now.Unix(),
		"exp":       expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseAccessToken verifies the signature, lifetime, issuer, and audience of
// an access token and returns the subject user id.
func (i *Issuer) ParseAccessToken(tokenString string, now time.Time) (string, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	},
		jwt.WithIssuer(i.issuer),
		jwt.WithAudience(i.audience),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("invalid access token: %w", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid access token claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("access token missing subject")
	}
	return sub, nil
}

// GenerateRefreshToken draws fresh entropy from the system CSPRNG. The result
// is a lookup key, not a claim bundle: it carries no structure.
func (i *Issuer) GenerateRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating refresh token: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

// RefreshTokenExpiry returns the expiry for a refresh token issued at now.
func (i *Issuer) RefreshTokenExpiry(now time.Time) time.Time {
	return now.Add(i.refreshExpiry)
}
