package main

import (
	"context"
	"log"

	"github.com/userdesk/userdesk/internal/cli"
	"github.com/userdesk/userdesk/internal/config"
	"github.com/userdesk/userdesk/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewDefault(logging.ParseLevel(cfg.LogLevel))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
