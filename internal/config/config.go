// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// StoreURI is the goal store connection string. Required.
	// The scheme selects the backend: mongodb:// or postgres://.
	StoreURI string `env:"MONGODB_URI,required,notEmpty"`

	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"80"`

	// LogLevel controls the minimum log level.
	// Valid values: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// "*" allows any origin and emits the CORS headers on every response.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`

	// RetryInterval is the fixed delay between store connection attempts.
	RetryInterval time.Duration `env:"STORE_RETRY_INTERVAL" envDefault:"5s"`

	// RetryMaxAttempts caps connection attempts. 0 retries forever.
	RetryMaxAttempts uint64 `env:"STORE_RETRY_MAX_ATTEMPTS" envDefault:"0"`

	// ConnectTimeout bounds a single connection attempt.
	ConnectTimeout time.Duration `env:"STORE_CONNECT_TIMEOUT" envDefault:"10s"`

	// MaxBodyBytes limits request body size. 0 disables the limit.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error naming any required variables that are not set, or any
// value that fails to parse.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	cfg.CORSOrigins = trimEmpty(cfg.CORSOrigins)
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}
	if cfg.RetryInterval <= 0 {
		return Config{}, fmt.Errorf("config: STORE_RETRY_INTERVAL must be positive, got %s", cfg.RetryInterval)
	}

	return cfg, nil
}

// trimEmpty trims each entry and drops the empty ones.
func trimEmpty(in []string) []string {
	var out []string
	for _, part := range in {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
