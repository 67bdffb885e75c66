// Package main implements the entry point for the contacts API server,
// a JSON service exposing an in-memory contact collection and tag registry.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/jalvarado/contacts-api/internal/config"
	"github.com/jalvarado/contacts-api/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"seed_contacts", cfg.Seed.Contacts,
		"keepalive_enabled", cfg.KeepAlive.Enabled)

	app := newApplication(cfg, appLogger)

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
