package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/arcana-api/internal/api"
	apiMiddleware "github.com/phrazzld/arcana-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
// It accepts the application dependencies to create handlers and register routes.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	// Create a router
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	// Create API handlers using the application's services
	sessionHandler := api.NewSessionHandler(app.sessionService, app.logger)
	deckHandler := api.NewDeckHandler(app.sessionService, app.logger)
	readingHandler := api.NewReadingHandler(app.sessionService, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Session endpoints
		r.Get("/session", sessionHandler.GetSession)
		r.Get("/session/status", sessionHandler.GetStatusReport)
		r.Post("/session/recover", sessionHandler.Recover)

		// Deck endpoints
		r.Get("/deck", deckHandler.GetDeck)
		r.Post("/deck/reset", deckHandler.ResetDeck)
		r.Post("/deck/new", deckHandler.NewDeck)

		// Reading endpoints
		r.Post("/readings", readingHandler.PerformReading)
		r.Get("/readings", readingHandler.ListReadings)
		r.Get("/readings/{index}", readingHandler.GetReading)
		r.Delete("/readings", readingHandler.ClearReadings)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if !app.sessionService.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			if _, err := w.Write([]byte("NOT READY")); err != nil {
				app.logger.Error("Failed to write health check response", "error", err)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
