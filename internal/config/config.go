package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	UpstreamBaseURL     string
	UpstreamTimeout     time.Duration
	SessionSecret       string
	SessionName         string
	StatusSampleSeconds int
	StatusDiskPath      string
	CorsOrigins         []string
}

func Load() Config {
	return Config{
		UpstreamBaseURL:     strings.TrimRight(mustEnv("UPSTREAM_BASE_URL"), "/"),
		UpstreamTimeout:     time.Duration(envOrInt("UPSTREAM_TIMEOUT_SECONDS", 15)) * time.Second,
		SessionSecret:       mustEnv("SESSION_SECRET"),
		SessionName:         envOr("SESSION_NAME", "studybuddy-session"),
		StatusSampleSeconds: envOrInt("STATUS_SAMPLE_INTERVAL", 30),
		StatusDiskPath:      envOr("STATUS_DISK_PATH", "/"),
		CorsOrigins:         parseCSV(envOr("CORS_ORIGINS", "")),
	}
}

func mustEnv(key string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		panic("missing env var: " + key)
	}
	return value
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}
