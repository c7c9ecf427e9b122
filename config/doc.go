// Package config handles application configuration loading and validation.
//
// Configuration is loaded from a YAML file and validated using struct
// tags. Endpoints and secrets can be overridden through the environment,
// including a local .env file.
package config
