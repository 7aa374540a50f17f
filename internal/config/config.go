package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	DatabaseURL    string
	JWTSecret      string
	AuthEnabled    bool
	Port           string
	Env            string
	LogLevel       string
	LogFormat      string
	AllowedOrigins []string

	// Deployment-specific pipeline constants. Different installations mark
	// approved items and reset split-out posts with different status strings,
	// so both are configuration rather than hardcoded values.
	ApprovedStatus  string
	PostResetStatus string
}

// Load reads configuration from environment variables. A .env file in the
// working directory is loaded first if present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		JWTSecret:       os.Getenv("SUPABASE_JWT_SECRET"),
		AuthEnabled:     getEnvWithDefault("AUTH_ENABLED", "true") != "false",
		Port:            getEnvWithDefault("PORT", "8080"),
		Env:             getEnvWithDefault("ENV", "development"),
		LogLevel:        getEnvWithDefault("LOG_LEVEL", "info"),
		LogFormat:       getEnvWithDefault("LOG_FORMAT", "text"),
		AllowedOrigins:  splitCommaList(getEnvWithDefault("ALLOWED_ORIGINS", "http://localhost:8080")),
		ApprovedStatus:  getEnvWithDefault("APPROVED_STATUS", "approved"),
		PostResetStatus: getEnvWithDefault("POST_RESET_STATUS", "content_in_progress"),
	}

	if cfg.AuthEnabled && cfg.JWTSecret == "" {
		log.Println("WARNING: SUPABASE_JWT_SECRET is not set. All bearer tokens will be rejected.")
	}

	return cfg
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitCommaList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
