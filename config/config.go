package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Environment string
	Port        string

	// Course-management backend
	BackendBaseURL  string
	BackendUsername string
	BackendPassword string
	BackendTimeout  time.Duration

	// OAuth identity provider
	OAuthClientID     string
	OAuthClientSecret string
	OAuthRedirectURL  string

	// Sessions
	SessionSecret string
	SessionTTL    time.Duration
	StaffDomain   string

	// Delivery
	AllowedOrigins []string

	// Email export delivery
	MailProvider       string
	MailFromAddress    string
	MailFromName       string
	SESRegion          string
	SESAccessKeyID     string
	SESSecretAccessKey string
}

// Load loads configuration from environment variables.
// It attempts to load from a .env file if not in production.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the .env file may not exist; system environment wins.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:        env,
		Port:               getEnv("PORT", "8080"),
		BackendBaseURL:     strings.TrimSuffix(os.Getenv("COURSE_API_URL"), "/"),
		BackendUsername:    os.Getenv("COURSE_API_USERNAME"),
		BackendPassword:    os.Getenv("COURSE_API_PASSWORD"),
		BackendTimeout:     getDuration("COURSE_API_TIMEOUT_SECONDS", 30*time.Second),
		OAuthClientID:      os.Getenv("OAUTH_CLIENT_ID"),
		OAuthClientSecret:  os.Getenv("OAUTH_CLIENT_SECRET"),
		OAuthRedirectURL:   getEnv("OAUTH_REDIRECT_URL", "http://localhost:8080/auth/callback"),
		SessionSecret:      os.Getenv("SESSION_SECRET"),
		SessionTTL:         getDuration("SESSION_TTL_SECONDS", 12*time.Hour),
		StaffDomain:        getEnv("STAFF_EMAIL_DOMAIN", "grastontechnique.com"),
		AllowedOrigins:     splitList(os.Getenv("ALLOWED_ORIGINS")),
		MailProvider:       getEnv("MAIL_PROVIDER", "noop"),
		MailFromAddress:    os.Getenv("MAIL_FROM_ADDRESS"),
		MailFromName:       os.Getenv("MAIL_FROM_NAME"),
		SESRegion:          getEnv("SES_REGION", "us-east-1"),
		SESAccessKeyID:     os.Getenv("SES_ACCESS_KEY_ID"),
		SESSecretAccessKey: os.Getenv("SES_SECRET_ACCESS_KEY"),
	}

	if cfg.BackendBaseURL == "" {
		return nil, fmt.Errorf("COURSE_API_URL is required")
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			return time.Duration(v) * time.Second
		}
	}
	return fallback
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
