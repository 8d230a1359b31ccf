package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is the namespace shared by every Seafort environment variable.
const EnvPrefix = "SEAFORT_"

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseEnvPrefixed loads configuration using the shared SEAFORT_ prefix so
// struct tags stay short (`env:"HTTP_ADDR"` resolves SEAFORT_HTTP_ADDR).
func ParseEnvPrefixed(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
