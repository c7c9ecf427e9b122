package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultPort = 8080

// Load reads the configuration file, applies environment overrides, fills
// defaults and validates the result. A missing file is not an error; the
// defaults plus environment are enough to run against a local catalog.
func Load(path string) (*AppConfig, error) {
	// Best effort; a missing .env file is the normal case.
	_ = godotenv.Load()

	var cfg AppConfig
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// run on defaults
	default:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// applyEnv lets deployment environments override the file without editing
// it. Only secrets and endpoints are overridable; tuning stays in the file.
func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Catalog.DatabaseURL = v
		cfg.Catalog.Source = "postgres"
	}
	if v := os.Getenv("ADVISORY_URL"); v != "" {
		cfg.Advisory.URL = v
	}
	if v := os.Getenv("ADVISORY_API_KEY"); v != "" {
		cfg.Advisory.APIKey = v
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Catalog.Source == "" {
		if cfg.Catalog.DatabaseURL != "" {
			cfg.Catalog.Source = "postgres"
		} else {
			cfg.Catalog.Source = "file"
		}
	}
	if cfg.Advisory.TimeoutMS == 0 {
		cfg.Advisory.TimeoutMS = 2500
	}
}
