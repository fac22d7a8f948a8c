package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrMissingSigningKey is returned by Validate when JWT_SECRET is absent.
// A missing signing key is a startup-fatal misconfiguration, never a
// per-request error.
var ErrMissingSigningKey = errors.New("config: JWT_SECRET is not set")

type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret          string
	JWTIssuer          string
	JWTAudience        string
	AccessTokenMinutes int
	RefreshTokenDays   int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=finance_tracker port=5432 sslmode=disable"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTIssuer:          getEnv("JWT_ISSUER", "finance-tracker"),
		JWTAudience:        getEnv("JWT_AUDIENCE", "finance-tracker-api"),
		AccessTokenMinutes: getEnvInt("JWT_ACCESS_EXPIRY_MINUTES", 60),
		RefreshTokenDays:   getEnvInt("JWT_REFRESH_EXPIRY_DAYS", 7),
	}
}

// Validate checks the invariants that must hold before the process can serve
// traffic.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingSigningKey
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}
