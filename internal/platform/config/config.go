// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Postgres and Redis are optional for the front end: when DATABASE_URL is empty,
analytics events go to the structured log; when REDIS_URL is empty, the
provider list is fetched from the upstream API on every discovery request.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the preprints web server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// PublicURL is the externally visible origin, used to build og:url.
	PublicURL string `env:"PUBLIC_URL" envDefault:"http://localhost:8080"`

	// Upstream JSON:API data store
	OSFAPIURL     string        `env:"OSF_API_URL"     envDefault:"https://api.osf.io/v2/"`
	OSFAPITimeout time.Duration `env:"OSF_API_TIMEOUT" envDefault:"10s"`

	// Social sharing
	FacebookAppID string `env:"FB_APP_ID"`

	// Theming: default theme id and host → theme id overrides (e.g. "engrxiv.org:engrxiv").
	ThemeDefault string            `env:"THEME_DEFAULT" envDefault:"osf"`
	ThemeDomains map[string]string `env:"THEME_DOMAINS"`

	// Internationalisation
	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en"`

	// Relational Database (PostgreSQL), analytics only
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL         string        `env:"REDIS_URL"`
	ProviderCacheTTL time.Duration `env:"PROVIDER_CACHE_TTL" envDefault:"10m"`

	// SessionSecret verifies viewer session tokens. Empty means every viewer is anonymous.
	SessionSecret string `env:"SESSION_SECRET"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	cfg.PublicURL = strings.TrimRight(cfg.PublicURL, "/")
	if !strings.HasSuffix(cfg.OSFAPIURL, "/") {
		cfg.OSFAPIURL += "/"
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

// AllowedOrigins returns the comma-separated EXTRA_ORIGINS as a trimmed slice.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
