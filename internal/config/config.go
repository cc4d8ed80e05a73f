package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"storefront-offers/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server (HTTP_*).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_*).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection (PSQL_*).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Catalog selects the catalog source and refresh policy (CATALOG_*).
	Catalog configs.Catalog `envPrefix:"CATALOG_"`

	// Metrics configures the Prometheus endpoint (METRICS_*).
	Metrics configs.Metrics `envPrefix:"METRICS_"`
}

// Load reads configuration from environment variables into a Config and
// validates it. Fields without a variable take their defaults.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err = cfg.Catalog.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
