package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig  `envPrefix:"SERVER_"`
	Catalog CatalogConfig `envPrefix:"CATALOG_"`
	Stripe  StripeConfig  `envPrefix:"STRIPE_"`
}

type ServerConfig struct {
	Addr string `env:"ADDR" envDefault:":8080"`
	// CORSOrigin is matched as a regexp against the Origin header.
	// The default mirrors the permissive setup of the payment frontend.
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:".*"`
}

type CatalogConfig struct {
	// Backend selects the catalog adapter: "supabase" or "postgres".
	Backend string `env:"BACKEND" envDefault:"supabase"`

	SupabaseURL string `env:"SUPABASE_URL"`
	SupabaseKey string `env:"SUPABASE_KEY"`

	// PostgresDSN enables the SQL adapter when set.
	PostgresDSN string `env:"POSTGRES_DSN"`
}

type StripeConfig struct {
	SecretKey string `env:"SECRET_KEY,required"`
}

func Load() (*Config, error) {
	// Missing .env is fine; real deployments use the process environment.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("load config: %v", err))
	}
	return cfg
}

// validate enforces startup-time requirements that depend on the selected
// catalog backend, so a misconfigured service fails before taking traffic.
func (c *Config) validate() error {
	switch c.Catalog.Backend {
	case "supabase":
		if c.Catalog.SupabaseURL == "" || c.Catalog.SupabaseKey == "" {
			return fmt.Errorf("CATALOG_SUPABASE_URL and CATALOG_SUPABASE_KEY must be set")
		}
	case "postgres":
		if c.Catalog.PostgresDSN == "" {
			return fmt.Errorf("CATALOG_POSTGRES_DSN must be set")
		}
	default:
		return fmt.Errorf("unknown catalog backend: %q", c.Catalog.Backend)
	}
	return nil
}
