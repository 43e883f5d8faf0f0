// Package main implements the entry point for the Arcana API server
// which performs three-card tarot readings over a shuffled Major Arcana
// deck and serves them over HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/arcana-api/internal/config"
	"github.com/phrazzld/arcana-api/internal/platform/logger"
)

// main is the entry point for the arcana-api server.
// It initializes configuration, sets up logging, wires the reading
// session service, and starts the HTTP server.
func main() {
	fmt.Println("Arcana API Server Starting...")

	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
// Returns the initialized application and any initialization error.
func initializeApp() (*application, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Set up structured logging using the configured log level
	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	// Log configuration details using structured logging
	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	// Log additional configuration details at debug level if available
	if cfg.Catalog.Path != "" {
		slog.Debug("Catalog configuration", "path", cfg.Catalog.Path)
	}
	if cfg.Reading.Seed != 0 {
		slog.Debug("Reading configuration", "fixed_seed", true)
	}

	return newApplication(cfg, appLogger)
}
