package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	// AuthModeOpaque keeps the legacy scheme where the bearer token is the
	// username itself. AuthModeJWT issues signed expiring HS256 tokens.
	AuthModeOpaque = "opaque"
	AuthModeJWT    = "jwt"

	// PasswordSchemeSHA256 is the legacy unsalted hash kept for compatibility
	// with existing password rows. PasswordSchemeBcrypt opts into bcrypt.
	PasswordSchemeSHA256 = "sha256"
	PasswordSchemeBcrypt = "bcrypt"
)

// Config holds the application configuration, loaded from the environment.
type Config struct {
	Port           string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	JWTSecret      []byte
	JWTExpiration  time.Duration
	AuthMode       string
	PasswordScheme string
	IsProd         bool
}

// Load reads configuration from environment variables, loading a .env file
// first if one is present.
func Load() *Config {
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your-secret-key-change-this-in-production"
	}

	return &Config{
		Port:           envOr("PORT", "8080"),
		DBHost:         envOr("DB_HOST", "localhost"),
		DBPort:         envOr("DB_PORT", "5432"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSSLMode:      envOr("DB_SSLMODE", "disable"),
		JWTSecret:      []byte(secret),
		JWTExpiration:  24 * time.Hour,
		AuthMode:       envOr("AUTH_MODE", AuthModeOpaque),
		PasswordScheme: envOr("PASSWORD_SCHEME", PasswordSchemeSHA256),
		IsProd:         os.Getenv("IS_PROD") == "true",
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
