package config

import "github.com/kelseyhightower/envconfig"

// parseEnv overlays Config with values from the environment. Variables that
// are not set leave the corresponding field untouched.
func parseEnv(cfg *Config) {
	if err := envconfig.Process("", cfg); err != nil {
		panic(err)
	}
}
