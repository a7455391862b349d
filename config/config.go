package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// AppConfig holds the application configuration
type AppConfig struct {
	DBURL        string
	RedisAddress string
	BearerToken  string

	// HTTP hardening knobs, overridable per environment.
	AllowedOrigins    []string
	RequestsPerSecond float64
	RequestBurst      int

	// Optional SMTP settings for the batch reconciliation report.
	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	ReportEmail string
}

// GetBearerToken returns the BearerToken from the config
func (c *AppConfig) GetBearerToken() string {
	return c.BearerToken
}

// MailConfigured reports whether the optional report mail settings are set.
func (c *AppConfig) MailConfigured() bool {
	return c.SMTPHost != "" && c.ReportEmail != ""
}

// LoadFromEnv builds the configuration from environment variables. The
// SMTP settings are optional; everything else is required.
func LoadFromEnv() (*AppConfig, error) {
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		return nil, errors.New("missing DB_URL environment variable")
	}

	redisAddress := os.Getenv("REDIS_URL")
	if redisAddress == "" {
		return nil, errors.New("missing REDIS_URL environment variable")
	}

	bearerToken := os.Getenv("BEARER_TOKEN")
	if bearerToken == "" {
		return nil, errors.New("missing BEARER_TOKEN environment variable")
	}

	smtpPort := 587
	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("SMTP_PORT must be a number")
		}
		smtpPort = parsed
	}

	origins := []string{"http://localhost:3000"}
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		origins = splitAndTrim(raw)
	}

	requestsPerSecond := 15.0
	if raw := os.Getenv("RATE_LIMIT_RPS"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			return nil, errors.New("RATE_LIMIT_RPS must be a positive number")
		}
		requestsPerSecond = parsed
	}

	requestBurst := 30
	if raw := os.Getenv("RATE_LIMIT_BURST"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, errors.New("RATE_LIMIT_BURST must be a positive number")
		}
		requestBurst = parsed
	}

	return &AppConfig{
		DBURL:             dbURL,
		RedisAddress:      redisAddress,
		BearerToken:       bearerToken,
		AllowedOrigins:    origins,
		RequestsPerSecond: requestsPerSecond,
		RequestBurst:      requestBurst,
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPort:          smtpPort,
		SMTPUser:          os.Getenv("SMTP_USER"),
		SMTPPass:          os.Getenv("SMTP_PASS"),
		ReportEmail:       os.Getenv("REPORT_EMAIL"),
	}, nil
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
