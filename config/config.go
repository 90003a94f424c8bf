// Package config loads service configuration from environment variables.
// A local .env file is honored when present so the service can run outside
// of docker-compose without exporting everything by hand.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultPort                = "8000"
	DefaultLogLevel            = "info"
	DefaultEnv                 = "development"
	DefaultSessionTTL          = 3 * time.Hour
	DefaultShutdownTimeout     = 10 * time.Second
	DefaultReadinessDrainDelay = 0 * time.Second
	DefaultTracingSampleRate   = 1.0
)

// Config holds all runtime configuration for the API server and CLI.
type Config struct {
	Service   ServiceConfig
	Database  DatabaseConfig
	Cache     CacheConfig
	Session   SessionConfig
	Logging   LoggingConfig
	Tracing   TracingConfig
	Profiling ProfilingConfig

	ShutdownTimeout     time.Duration
	ReadinessDrainDelay time.Duration
}

type ServiceConfig struct {
	Name    string
	Version string
	Env     string
	Port    string
}

type DatabaseConfig struct {
	URL string
}

type CacheConfig struct {
	URL string
}

type SessionConfig struct {
	TTL time.Duration
}

type LoggingConfig struct {
	Level string
}

type TracingConfig struct {
	Enabled    bool
	Endpoint   string
	SampleRate float64
}

type ProfilingConfig struct {
	Enabled  bool
	Endpoint string
}

// Load reads configuration from the environment. Missing values fall back
// to defaults; Validate reports the ones that have no sensible default.
func Load() *Config {
	// Best-effort: absence of a .env file is not an error.
	_ = godotenv.Load()

	return &Config{
		Service: ServiceConfig{
			Name:    getEnv("SERVICE_NAME", "battlegear-api"),
			Version: getEnv("SERVICE_VERSION", "dev"),
			Env:     getEnv("ENV", DefaultEnv),
			Port:    getEnv("PORT", DefaultPort),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Cache: CacheConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Session: SessionConfig{
			TTL: getDuration("SESSION_TTL", DefaultSessionTTL),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", DefaultLogLevel),
		},
		Tracing: TracingConfig{
			Enabled:    getBool("TRACING_ENABLED", false),
			Endpoint:   getEnv("TRACING_ENDPOINT", "localhost:4318"),
			SampleRate: getFloat("TRACING_SAMPLE_RATE", DefaultTracingSampleRate),
		},
		Profiling: ProfilingConfig{
			Enabled:  getBool("PROFILING_ENABLED", false),
			Endpoint: getEnv("PROFILING_ENDPOINT", "http://localhost:4040"),
		},
		ShutdownTimeout:     getDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
		ReadinessDrainDelay: getDuration("READINESS_DRAIN_DELAY", DefaultReadinessDrainDelay),
	}
}

// Validate checks that configuration without defaults is present.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.Cache.URL == "" {
		return errors.New("REDIS_URL is required")
	}
	if c.Session.TTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	return nil
}

// GetShutdownTimeoutDuration returns how long graceful shutdown may take.
func (c *Config) GetShutdownTimeoutDuration() time.Duration {
	return c.ShutdownTimeout
}

// GetReadinessDrainDelayDuration returns how long to fail readiness before
// shutting down the HTTP server.
func (c *Config) GetReadinessDrainDelayDuration() time.Duration {
	return c.ReadinessDrainDelay
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
