package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "http://assistant.local/")
	t.Setenv("SESSION_SECRET", "test-secret")

	cfg := Load()
	assert.Equal(t, "http://assistant.local", cfg.UpstreamBaseURL)
	assert.Equal(t, 15*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, "studybuddy-session", cfg.SessionName)
	assert.Equal(t, 30, cfg.StatusSampleSeconds)
	assert.Nil(t, cfg.CorsOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "http://assistant.local")
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "5")
	t.Setenv("SESSION_NAME", "custom-session")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")

	cfg := Load()
	assert.Equal(t, 5*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, "custom-session", cfg.SessionName)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CorsOrigins)
}

func TestLoadPanicsWithoutUpstream(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "")
	t.Setenv("SESSION_SECRET", "test-secret")

	assert.Panics(t, func() { Load() })
}

func TestEnvOrIntIgnoresGarbage(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "http://assistant.local")
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "soon")

	cfg := Load()
	assert.Equal(t, 15*time.Second, cfg.UpstreamTimeout)
}
