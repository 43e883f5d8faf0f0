package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/arcana-api/internal/api/shared"
	"github.com/phrazzld/arcana-api/internal/platform/logger"
	"github.com/phrazzld/arcana-api/internal/service/session"
)

// DeckHandler handles deck-related HTTP requests
type DeckHandler struct {
	sessionService session.Service
	logger         *slog.Logger
}

// NewDeckHandler creates a new DeckHandler
func NewDeckHandler(
	sessionService session.Service,
	logger *slog.Logger,
) *DeckHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for DeckHandler")
	}

	return &DeckHandler{
		sessionService: sessionService,
		logger:         logger.With(slog.String("component", "deck_handler")),
	}
}

// GetDeck handles GET /deck requests
// It returns the deck's current counts and availability.
func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	info := h.sessionService.DeckInfo()

	log.Debug("retrieved deck info",
		slog.Int("available", info.Available),
		slog.Int("drawn", info.Drawn))
	shared.RespondWithJSON(w, r, http.StatusOK, deckInfoToResponse(info))
}

// ResetDeck handles POST /deck/reset requests
// It returns all drawn cards to the deck and shuffles.
func (h *DeckHandler) ResetDeck(w http.ResponseWriter, r *http.Request) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	log.Debug("resetting deck")

	result, err := h.sessionService.ResetDeck(r.Context())
	if err != nil {
		// Map to appropriate status code and get sanitized message
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)

		// For generic server errors in ResetDeck, use a specific message
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to reset deck"
		}

		// Log the full error but only send sanitized message to client
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("deck reset completed")
	shared.RespondWithJSON(w, r, http.StatusOK, resultToResponse(result))
}

// NewDeck handles POST /deck/new requests
// It discards the current deck and replaces it with a fresh shuffled one.
func (h *DeckHandler) NewDeck(w http.ResponseWriter, r *http.Request) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	log.Debug("creating new deck")

	result, err := h.sessionService.CreateNewDeck(r.Context())
	if err != nil {
		// Map to appropriate status code and get sanitized message
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)

		// For generic server errors in NewDeck, use a specific message
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to create new deck"
		}

		// Log the full error but only send sanitized message to client
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("new deck created")
	shared.RespondWithJSON(w, r, http.StatusOK, resultToResponse(result))
}
