package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/arcana-api/internal/api/shared"
	"github.com/phrazzld/arcana-api/internal/platform/logger"
	"github.com/phrazzld/arcana-api/internal/service/session"
)

// SessionHandler handles session-related HTTP requests
type SessionHandler struct {
	sessionService session.Service
	logger         *slog.Logger
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(
	sessionService session.Service,
	logger *slog.Logger,
) *SessionHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SessionHandler")
	}

	return &SessionHandler{
		sessionService: sessionService,
		logger:         logger.With(slog.String("component", "session_handler")),
	}
}

// GetSession handles GET /session requests
// It returns the session's identity, state, statistics, and last error.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	state := h.sessionService.State()
	response := SessionResponse{
		SessionID:        h.sessionService.SessionID(),
		State:            string(state),
		StateDescription: state.Description(),
		Ready:            h.sessionService.Ready(),
		HasError:         h.sessionService.HasError(),
		LastError:        h.sessionService.LastError(),
		QuickStatus:      h.sessionService.QuickStatus(),
		Stats:            statsToResponse(h.sessionService.Stats()),
	}

	log.Debug("retrieved session state", slog.String("state", string(state)))
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetStatusReport handles GET /session/status requests
// It returns the full multi-section status report as plain text.
func (h *SessionHandler) GetStatusReport(w http.ResponseWriter, r *http.Request) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	report := h.sessionService.StatusReport()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(report)); err != nil {
		log.Error("failed to write status report", slog.String("error", err.Error()))
	}
}

// Recover handles POST /session/recover requests
// It attempts to bring the session back to the ready state after a failure.
func (h *SessionHandler) Recover(w http.ResponseWriter, r *http.Request) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	log.Debug("recovering session from error state")

	result, err := h.sessionService.RecoverFromError(r.Context())
	if err != nil {
		// Map to appropriate status code and get sanitized message
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)

		// For generic server errors in Recover, use a specific message
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to recover session"
		}

		// Log the full error but only send sanitized message to client
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("session recovery completed", slog.Bool("success", result.Success))
	shared.RespondWithJSON(w, r, http.StatusOK, resultToResponse(result))
}
