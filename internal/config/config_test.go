package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/goal-tracker/internal/config"
)

// clearEnv blanks every optional variable so the host environment cannot leak
// into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "LOG_LEVEL", "CORS_ORIGINS", "STORE_RETRY_INTERVAL",
		"STORE_RETRY_MAX_ATTEMPTS", "STORE_CONNECT_TIMEOUT", "MAX_BODY_BYTES",
	} {
		t.Setenv(k, "") // restored on cleanup
		os.Unsetenv(k)
	}
}

// TestLoad_defaults verifies that optional env vars fall back to their defaults
// when only the required MONGODB_URI is provided.
func TestLoad_defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017/goals")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "mongodb://localhost:27017/goals", cfg.StoreURI)
	require.Equal(t, "80", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"*"}, cfg.CORSOrigins)
	require.Equal(t, 5*time.Second, cfg.RetryInterval)
	require.Zero(t, cfg.RetryMaxAttempts)
	require.Equal(t, 10*time.Second, cfg.ConnectTimeout)
	require.EqualValues(t, 1<<20, cfg.MaxBodyBytes)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	t.Setenv("MONGODB_URI", "postgres://user:pass@db:5432/goals")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("STORE_RETRY_INTERVAL", "250ms")
	t.Setenv("STORE_RETRY_MAX_ATTEMPTS", "3")
	t.Setenv("STORE_CONNECT_TIMEOUT", "2s")
	t.Setenv("MAX_BODY_BYTES", "4096")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "postgres://user:pass@db:5432/goals", cfg.StoreURI)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, 250*time.Millisecond, cfg.RetryInterval)
	require.EqualValues(t, 3, cfg.RetryMaxAttempts)
	require.Equal(t, 2*time.Second, cfg.ConnectTimeout)
	require.EqualValues(t, 4096, cfg.MaxBodyBytes)
}

// TestLoad_missingRequired verifies that an error is returned when MONGODB_URI
// is not set, and that the error message names the missing variable.
func TestLoad_missingRequired(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGODB_URI", "")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "MONGODB_URI")
}

func TestLoad_invalidDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGODB_URI", "mongodb://localhost")
	t.Setenv("STORE_RETRY_INTERVAL", "soon")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "RetryInterval")
}

func TestLoad_nonPositiveInterval(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGODB_URI", "mongodb://localhost")
	t.Setenv("STORE_RETRY_INTERVAL", "0s")

	_, err := config.Load()

	require.ErrorContains(t, err, "STORE_RETRY_INTERVAL")
}
