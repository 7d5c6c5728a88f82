// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. A local '.env' file is
loaded first when present, without overriding variables already set.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// # Configuration Schema

// Config holds all runtime configuration for the Backlist API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// AdminPassword is the single shared secret of the back-office. It is
	// hashed with bcrypt at startup, so it may be at most 72 bytes long.
	AdminPassword string `env:"ADMIN_PASSWORD,required"`

	// SessionSecret signs the admin session cookie.
	SessionSecret string `env:"SESSION_SECRET,required"`

	// AllowedOrigins lists origins allowed by CORS outside development.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// CatalogCacheTTL bounds how long public catalog responses stay cached.
	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"5m"`
}

// maxAdminPasswordBytes is the longest input bcrypt accepts.
const maxAdminPasswordBytes = 72

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load(envFiles ...string) (*Config, error) {

	// Pick up a local .env file when one exists; real env vars win.
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read env file: %w", err)
	}

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if len(cfg.AdminPassword) > maxAdminPasswordBytes {
		return nil, fmt.Errorf("config: ADMIN_PASSWORD must be at most %d bytes, got %d", maxAdminPasswordBytes, len(cfg.AdminPassword))
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
