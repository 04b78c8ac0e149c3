// Package config assembles runtime settings for userdesk from defaults,
// environment variables, an optional JSON file, and command-line flags.
// Later sources take precedence over earlier ones.
package config

import "time"

// Config holds runtime settings for the application.
//
// Fields:
//   - DatabasePath: path of the sqlite database file.
//   - LogLevel: one of debug, info, warn, error.
//   - BusyTimeout: how long a statement waits on a locked database file.
type Config struct {
	DatabasePath string        `envconfig:"USERDESK_DB"`
	LogLevel     string        `envconfig:"USERDESK_LOG_LEVEL"`
	BusyTimeout  time.Duration `envconfig:"USERDESK_BUSY_TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "userdesk.db"
	c.LogLevel = "info"
	c.BusyTimeout = 5 * time.Second
}

// LoadConfig constructs a Config: defaults, then environment, then JSON file
// (if one was named with -c/-config), then flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
