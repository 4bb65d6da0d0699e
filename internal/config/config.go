package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds process-wide settings. It is loaded once at startup and
// read-only afterwards; the JWT secret is never logged.
type Config struct {
	Port   string
	DBPath string

	JWTSecret    string
	JWTAlgorithm string
	TokenTTL     time.Duration
}

// Load reads configuration from the environment. Every value has a
// development default; JWT_SECRET_KEY must be overridden in production.
func Load() *Config {
	return &Config{
		Port:         getEnv("APP_PORT", "8080"),
		DBPath:       getEnv("DB_PATH", "catalog.db"),
		JWTSecret:    getEnv("JWT_SECRET_KEY", "dev-secret-key-change-in-production"),
		JWTAlgorithm: getEnv("JWT_ALGORITHM", "HS256"),
		TokenTTL:     time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 20)) * time.Minute,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
