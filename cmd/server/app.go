package main

import (
	"fmt"
	"log/slog"

	"github.com/jmallory/roster-api/internal/config"
	"github.com/jmallory/roster-api/internal/platform/logger"
	"github.com/jmallory/roster-api/internal/platform/memory"
	"github.com/jmallory/roster-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Store behind its interface so handlers and tests never depend on
	// the concrete implementation.
	recordStore store.RecordStore
}

// newApplication loads configuration and wires up all application
// components: logger, record store, and their dependencies.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"default_page_limit", cfg.Store.DefaultPageLimit,
		"max_page_limit", cfg.Store.MaxPageLimit)

	return &application{
		config:      cfg,
		logger:      appLogger,
		recordStore: memory.NewRecordStore(appLogger),
	}, nil
}

// cleanup releases application resources on shutdown. The record store
// is memory-resident and needs no teardown; its contents are discarded
// with the process.
func (app *application) cleanup() {
	app.logger.Info("Application cleanup completed")
}
