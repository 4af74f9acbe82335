// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all server configuration.
type Config struct {
	// AppEnv selects development/production behavior (log format, gin mode)
	AppEnv string `env:"APP_ENV" envDefault:"development"`

	// HTTPAddr is the listen address of the API server
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// DatabaseURL is the shared database connection string
	DatabaseURL string `env:"DATABASE_URL,required"`

	// LogLevel: debug, info, warn, error
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// DBMaxConns caps the connection pool size
	DBMaxConns int32 `env:"DB_MAX_CONNS" envDefault:"25"`

	// DBMinConns keeps warm connections around
	DBMinConns int32 `env:"DB_MIN_CONNS" envDefault:"5"`

	// TenantCacheTTL bounds staleness of cached tenant lookups
	TenantCacheTTL time.Duration `env:"TENANT_CACHE_TTL" envDefault:"1m"`

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}
