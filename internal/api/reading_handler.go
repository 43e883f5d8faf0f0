package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/arcana-api/internal/api/shared"
	"github.com/phrazzld/arcana-api/internal/platform/logger"
	"github.com/phrazzld/arcana-api/internal/service/session"
)

// ReadingHandler handles reading-related HTTP requests
type ReadingHandler struct {
	sessionService session.Service
	logger         *slog.Logger
}

// NewReadingHandler creates a new ReadingHandler
func NewReadingHandler(
	sessionService session.Service,
	logger *slog.Logger,
) *ReadingHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ReadingHandler")
	}

	return &ReadingHandler{
		sessionService: sessionService,
		logger:         logger.With(slog.String("component", "reading_handler")),
	}
}

// PerformReading handles POST /readings requests
// It performs one reading, or several when the optional body carries a count.
func (h *ReadingHandler) PerformReading(w http.ResponseWriter, r *http.Request) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	// Parse the optional request body. No body means a single reading.
	var req PerformReadingRequest
	if r.ContentLength != 0 {
		if err := shared.DecodeJSON(r, &req); err != nil {
			log.Warn("invalid request format", slog.String("error", err.Error()))
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
			return
		}

		// Validate request
		if err := shared.Validate.Struct(req); err != nil {
			log.Warn("validation error", slog.String("error", err.Error()))

			// Use our sanitized validation error format
			sanitizedError := SanitizeValidationError(err)
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, sanitizedError, err)
			return
		}
	}

	// An explicit count performs a batch of readings
	if req.Count > 0 {
		h.performMultipleReadings(w, r, req.Count)
		return
	}

	log.Debug("performing reading")

	result, err := h.sessionService.PerformReading(r.Context())
	if err != nil {
		// Map to appropriate status code and get sanitized message
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)

		// Log the full error but only send sanitized message to client
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	// Transform service result to response
	response := resultToResponse(result)

	log.Debug("successfully performed reading",
		slog.String("reading_id", result.Reading.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, response)
}

// performMultipleReadings runs a batch of readings and responds with the
// per-reading results.
func (h *ReadingHandler) performMultipleReadings(w http.ResponseWriter, r *http.Request, count int) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	log.Debug("performing multiple readings", slog.Int("count", count))

	results, err := h.sessionService.PerformMultipleReadings(r.Context(), count)
	if err != nil {
		// Map to appropriate status code and get sanitized message
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)

		// Log the full error but only send sanitized message to client
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	// Transform service results to responses
	response := BatchResultResponse{
		Results: make([]ResultResponse, 0, len(results)),
	}
	for _, result := range results {
		response.Results = append(response.Results, resultToResponse(result))
	}

	log.Debug("successfully performed multiple readings",
		slog.Int("count", len(results)))
	shared.RespondWithJSON(w, r, http.StatusCreated, response)
}

// ListReadings handles GET /readings requests
// It returns every reading in the session history, oldest first.
func (h *ReadingHandler) ListReadings(w http.ResponseWriter, r *http.Request) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	readings := h.sessionService.SessionReadings()

	// Transform domain objects to responses
	response := ReadingListResponse{
		Readings: make([]ReadingResponse, 0, len(readings)),
		Count:    len(readings),
	}
	for _, reading := range readings {
		response.Readings = append(response.Readings, readingToResponse(reading))
	}

	log.Debug("listed session readings", slog.Int("count", len(readings)))
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetReading handles GET /readings/{index} requests
// It returns a single reading from the session history by zero-based index.
func (h *ReadingHandler) GetReading(w http.ResponseWriter, r *http.Request) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	// Extract history index from URL path using chi router
	pathIndex := chi.URLParam(r, "index")

	// Parse index as an integer
	index, err := strconv.Atoi(pathIndex)
	if err != nil {
		log.Warn("invalid reading index format", slog.String("index", pathIndex))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid reading index format")
		return
	}

	reading, err := h.sessionService.Reading(index)
	if err != nil {
		// Map to appropriate status code and get sanitized message
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)

		// Log the full error but only send sanitized message to client
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("retrieved reading",
		slog.Int("index", index),
		slog.String("reading_id", reading.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, readingToResponse(reading))
}

// ClearReadings handles DELETE /readings requests
// It clears the session history while keeping lifetime statistics.
func (h *ReadingHandler) ClearReadings(w http.ResponseWriter, r *http.Request) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	log.Debug("clearing reading history")

	result, err := h.sessionService.ClearHistory(r.Context())
	if err != nil {
		// Map to appropriate status code and get sanitized message
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)

		// For generic server errors in ClearReadings, use a specific message
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to clear readings"
		}

		// Log the full error but only send sanitized message to client
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("reading history cleared")
	shared.RespondWithJSON(w, r, http.StatusOK, resultToResponse(result))
}
