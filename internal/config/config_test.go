package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "userdesk.db", c.DatabasePath)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 5*time.Second, c.BusyTimeout)
}

func TestLoadConfig_UsesDefaults(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "userdesk.db", cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.BusyTimeout)
}

func TestParseEnv_Overlays(t *testing.T) {
	t.Setenv("USERDESK_DB", "/tmp/other.db")
	t.Setenv("USERDESK_LOG_LEVEL", "debug")
	t.Setenv("USERDESK_BUSY_TIMEOUT", "2s")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "/tmp/other.db", c.DatabasePath)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 2*time.Second, c.BusyTimeout)
}

func TestParseEnv_KeepsDefaultsWhenUnset(t *testing.T) {
	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "userdesk.db", c.DatabasePath)
}
