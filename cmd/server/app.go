package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jalvarado/contacts-api/internal/config"
	"github.com/jalvarado/contacts-api/internal/keepalive"
	"github.com/jalvarado/contacts-api/internal/platform/memory"
	"github.com/jalvarado/contacts-api/internal/seed"
	"github.com/jalvarado/contacts-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Stores (using interfaces for proper abstraction)
	contactStore store.ContactStore
	tagRegistry  store.TagRegistry

	// Background keep-alive pinger, nil unless enabled
	pinger *keepalive.Pinger
}

// newApplication creates a new application instance with all dependencies
// initialized: freshly seeded in-memory stores and, when configured, the
// keep-alive pinger.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	app := &application{
		config: cfg,
		logger: logger,
	}

	rng := seed.NewRNG(0)
	contacts := seed.Contacts(rng, cfg.Seed.Contacts)
	tags := seed.Tags()

	app.contactStore = memory.NewMemoryContactStore(contacts, logger)
	app.tagRegistry = memory.NewMemoryTagRegistry(tags, logger)
	logger.Info("stores seeded",
		"contacts", len(contacts),
		"tags", len(tags))

	if cfg.KeepAlive.Enabled {
		interval := time.Duration(cfg.KeepAlive.IntervalMinutes) * time.Minute
		app.pinger = keepalive.NewPinger(cfg.KeepAlive.URL, interval, logger)
		app.pinger.Start()
		logger.Info("keep-alive pinger started",
			"url", cfg.KeepAlive.URL,
			"interval", interval.String())
	}

	logger.Info("Application initialized successfully")
	return app
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.pinger != nil {
		app.pinger.Stop()
	}

	app.logger.Info("Application shutdown completed")
}
