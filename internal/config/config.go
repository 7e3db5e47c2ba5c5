// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	applog "github.com/logcraft/logcraft-api/internal/platform/logging"
)

// Config holds all runtime settings for the API server.
type Config struct {
	// Port is kept as a string because Cloud Run and similar platforms inject PORT verbatim.
	Port     string `env:"PORT"      envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DocsEnabled        bool     `env:"DOCS_ENABLED"         envDefault:"true"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"    envSeparator:","`

	// MetricsAddr is the listen address of the Prometheus admin server; empty disables it.
	MetricsAddr string `env:"METRICS_ADDR"`

	Server ServerConfig
}

// ServerConfig holds http.Server limits and timeouts.
type ServerConfig struct {
	MaxRequestBytes   int64         `env:"MAX_REQUEST_BYTES"   envDefault:"1048576"`
	ReadTimeout       time.Duration `env:"READ_TIMEOUT"        envDefault:"5s"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"2s"`
	WriteTimeout      time.Duration `env:"WRITE_TIMEOUT"       envDefault:"10s"`
	IdleTimeout       time.Duration `env:"IDLE_TIMEOUT"        envDefault:"60s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT"    envDefault:"10s"`
}

// Load reads optional .env files, parses environment variables and validates the result.
func Load() (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Addr returns the public listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var errs []error

	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid PORT %q", c.Port))
	}
	if _, err := applog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if len(c.CORSAllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must not be empty"))
	}
	if c.Server.MaxRequestBytes <= 0 {
		errs = append(errs, fmt.Errorf("MAX_REQUEST_BYTES must be positive, got %d", c.Server.MaxRequestBytes))
	}

	timeouts := []struct {
		name  string
		value time.Duration
	}{
		{"READ_TIMEOUT", c.Server.ReadTimeout},
		{"READ_HEADER_TIMEOUT", c.Server.ReadHeaderTimeout},
		{"WRITE_TIMEOUT", c.Server.WriteTimeout},
		{"IDLE_TIMEOUT", c.Server.IdleTimeout},
		{"SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout},
	}
	for _, t := range timeouts {
		if t.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", t.name, t.value))
		}
	}

	return errors.Join(errs...)
}

// loadEnvFiles loads .env files without overriding variables already set:
// ENV_FILE alone when set, otherwise .env.local followed by .env.
// Missing files are ignored.
func loadEnvFiles() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	for _, name := range []string{".env.local", ".env"} {
		if err := godotenv.Load(name); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}
