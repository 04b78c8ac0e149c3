package config

import (
	"encoding/json"
	"os"

	"github.com/userdesk/userdesk/internal/flagx"
	"github.com/userdesk/userdesk/internal/timex"
)

// JsonConfig is a DTO used only for JSON unmarshalling. timex.Duration lets
// the file write intervals as "5s" or as integer nanoseconds.
type JsonConfig struct {
	DatabasePath string         `json:"database_path"`
	LogLevel     string         `json:"log_level"`
	BusyTimeout  timex.Duration `json:"busy_timeout"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flag. Without the flag nothing is loaded. Fields absent from
// the file keep their current values. Read and parse errors panic; there is
// no sane way to continue with a half-read config the user asked for.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.BusyTimeout.Duration != 0 {
		cfg.BusyTimeout = jc.BusyTimeout.Duration
	}
}
