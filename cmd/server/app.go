package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/arcana-api/internal/catalog"
	"github.com/phrazzld/arcana-api/internal/config"
	"github.com/phrazzld/arcana-api/internal/generation"
	"github.com/phrazzld/arcana-api/internal/service/session"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Domain services
	catalog        *catalog.Catalog
	generator      generation.Generator
	sessionService session.Service
}

// newApplication creates a new application instance with all dependencies initialized.
// It accepts the configuration and logger that must be established before
// application initialization.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	// Load the card meaning catalog, from the configured file or the
	// embedded defaults when no path is set
	var err error
	if cfg.Catalog.Path != "" {
		app.catalog, err = catalog.LoadFile(cfg.Catalog.Path)
	} else {
		app.catalog, err = catalog.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load card meaning catalog: %w", err)
	}
	logger.Info("Card meaning catalog loaded",
		"cards", app.catalog.Size(),
		"source", app.catalog.Source())

	// Initialize the interpretation generator
	app.generator = generation.NewTemplateGenerator(app.catalog)

	// Initialize the reading session service
	app.sessionService, err = session.NewService(
		app.catalog,
		app.generator,
		session.Config{
			ReversalProbability: cfg.Reading.ReversalProbability,
			Seed:                cfg.Reading.Seed,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	// Set up router using the application dependencies
	router := app.setupRouter()

	// Start the HTTP server
	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup(ctx context.Context) {
	// Shut down the reading session
	if app.sessionService != nil {
		app.sessionService.Shutdown(ctx)
	}

	app.logger.Info("Application shutdown completed")
}
