package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the server needs, loaded once at startup and
// passed explicitly into constructors. The ERP credentials authenticate all
// report fetches; Login uses the caller's own credentials.
type Config struct {
	Addr            string
	Environment     string
	CompanyName     string
	ERPBaseURL      string
	ERPAPIKey       string
	ERPAPISecret    string
	ERPTimeout      time.Duration
	CORSOrigins     []string
	DefaultPageSize int
}

func Load() Config {
	// A missing .env is fine; the environment may be populated directly.
	_ = godotenv.Load()

	return Config{
		Addr:            getEnv("APP_ADDR", ":8080"),
		Environment:     getEnv("APP_ENV", "development"),
		CompanyName:     getEnv("COMPANY_NAME", "BizSmart Enterprises Ltd"),
		ERPBaseURL:      getEnv("ERP_BASE_URL", ""),
		ERPAPIKey:       getEnv("ERP_API_KEY", ""),
		ERPAPISecret:    getEnv("ERP_API_SECRET", ""),
		ERPTimeout:      getEnvDuration("ERP_TIMEOUT", 30*time.Second),
		CORSOrigins:     getEnvSlice("CORS_ORIGINS", []string{"*"}),
		DefaultPageSize: getEnvInt("DEFAULT_PAGE_SIZE", 25),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvSlice(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ERPBaseURL) == "" {
		return fmt.Errorf("ERP_BASE_URL is required")
	}
	if strings.TrimSpace(c.ERPAPIKey) == "" || strings.TrimSpace(c.ERPAPISecret) == "" {
		return fmt.Errorf("ERP_API_KEY and ERP_API_SECRET are required")
	}
	if c.ERPTimeout < 0 {
		return fmt.Errorf("ERP_TIMEOUT must not be negative")
	}
	if c.DefaultPageSize < 1 {
		return fmt.Errorf("DEFAULT_PAGE_SIZE must be positive")
	}
	return nil
}
