package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Make sure ambient environment does not leak into the assertions.
	for _, key := range []string{"PORT", "LOG_LEVEL", "SESSION_TTL", "TRACING_ENABLED", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8000", cfg.Service.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 3*time.Hour, cfg.Session.TTL)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, 10*time.Second, cfg.GetShutdownTimeoutDuration())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("TRACING_SAMPLE_RATE", "0.25")
	t.Setenv("READINESS_DRAIN_DELAY", "5s")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Service.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, 0.25, cfg.Tracing.SampleRate)
	assert.Equal(t, 5*time.Second, cfg.GetReadinessDrainDelayDuration())
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("SESSION_TTL", "not-a-duration")
	t.Setenv("TRACING_ENABLED", "not-a-bool")
	t.Setenv("TRACING_SAMPLE_RATE", "not-a-float")

	cfg := Load()

	assert.Equal(t, 3*time.Hour, cfg.Session.TTL)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRate)
}

func TestValidate(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/battlegear")
	t.Setenv("REDIS_URL", "redis://localhost:6379")

	cfg := Load()
	require.NoError(t, cfg.Validate())

	cfg.Database.URL = ""
	assert.EqualError(t, cfg.Validate(), "DATABASE_URL is required")

	cfg = Load()
	cfg.Cache.URL = ""
	assert.EqualError(t, cfg.Validate(), "REDIS_URL is required")

	cfg = Load()
	cfg.Session.TTL = 0
	assert.EqualError(t, cfg.Validate(), "SESSION_TTL must be positive")
}
