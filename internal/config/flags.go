package config

import (
	"flag"
	"os"
	"time"

	"github.com/userdesk/userdesk/internal/flagx"
)

// parseFlags overlays Config with command-line flags:
//
//	-d string   path of the sqlite database file
//	-l string   log level (debug, info, warn, error)
//	-t int      busy timeout in seconds
//
// os.Args is filtered down to these flags first, so flags owned by other
// packages do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the sqlite database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	busyTimeout := fs.Int("t", int(cfg.BusyTimeout.Seconds()), "busy timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.BusyTimeout = time.Duration(*busyTimeout) * time.Second
}
