package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/arcana-api/internal/api/shared"
	"github.com/phrazzld/arcana-api/internal/service/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSession(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("ready session", func(t *testing.T) {
		mockService := &mockSessionService{
			sessionID: "3f0c2a9e-8a27-4a1c-9d2b-1df1b4a1a111",
			state:     session.StateReady,
			stats: session.Stats{
				TotalReadings:     3,
				ReadingsInHistory: 3,
				SessionStart:      start,
				Uptime:            "12 minutes",
			},
			quickStatus: "Session: READY | 13/22 cards available (9 drawn) | Readings: 3",
		}
		handler := NewSessionHandler(mockService, newTestLogger())

		req := httptest.NewRequest(http.MethodGet, "/session", nil)
		rr := httptest.NewRecorder()

		handler.GetSession(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response SessionResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))
		assert.Equal(t, "3f0c2a9e-8a27-4a1c-9d2b-1df1b4a1a111", response.SessionID)
		assert.Equal(t, "ready", response.State)
		assert.Equal(t, "Ready for readings", response.StateDescription)
		assert.True(t, response.Ready)
		assert.False(t, response.HasError)
		assert.Empty(t, response.LastError)
		assert.Equal(t, 3, response.Stats.TotalReadings)
		assert.Equal(t, "12 minutes", response.Stats.Uptime)
		assert.Contains(t, response.QuickStatus, "READY")
	})

	t.Run("session in error state", func(t *testing.T) {
		mockService := &mockSessionService{
			sessionID: "3f0c2a9e-8a27-4a1c-9d2b-1df1b4a1a111",
			state:     session.StateError,
			lastError: "Reading failed: interpretation exploded",
		}
		handler := NewSessionHandler(mockService, newTestLogger())

		req := httptest.NewRequest(http.MethodGet, "/session", nil)
		rr := httptest.NewRecorder()

		handler.GetSession(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response SessionResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))
		assert.Equal(t, "error", response.State)
		assert.Equal(t, "Error occurred", response.StateDescription)
		assert.False(t, response.Ready)
		assert.True(t, response.HasError)
		assert.Equal(t, "Reading failed: interpretation exploded", response.LastError)
	})
}

func TestGetStatusReport(t *testing.T) {
	report := "═══ TAROT SESSION STATUS ═══\nState: READY - Ready for readings\n"
	mockService := &mockSessionService{
		state:        session.StateReady,
		statusReport: report,
	}
	handler := NewSessionHandler(mockService, newTestLogger())

	req := httptest.NewRequest(http.MethodGet, "/session/status", nil)
	rr := httptest.NewRecorder()

	handler.GetStatusReport(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, report, rr.Body.String())
}

func TestRecover(t *testing.T) {
	tests := []struct {
		name                string
		recoverFn           func(ctx context.Context) (session.Result, error)
		expectedStatus      int
		expectedMessage     string
		expectedErrContains string
	}{
		{
			name: "successful recovery",
			recoverFn: func(ctx context.Context) (session.Result, error) {
				return session.Result{
					Success: true,
					Message: "Successfully recovered from error state.",
				}, nil
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Successfully recovered from error state.",
		},
		{
			name: "no recovery needed",
			recoverFn: func(ctx context.Context) (session.Result, error) {
				return session.Result{
					Success: true,
					Message: "Session is not in error state. No recovery needed.",
				}, nil
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Session is not in error state. No recovery needed.",
		},
		{
			name: "session shut down",
			recoverFn: func(ctx context.Context) (session.Result, error) {
				return session.Result{}, session.ErrShutdown
			},
			expectedStatus:      http.StatusConflict,
			expectedErrContains: "Session has been shut down",
		},
		{
			name: "unexpected failure",
			recoverFn: func(ctx context.Context) (session.Result, error) {
				return session.Result{}, errors.New("catalog reload blew up")
			},
			expectedStatus:      http.StatusInternalServerError,
			expectedErrContains: "Failed to recover session",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mockSessionService{recoverFromErrorFn: tt.recoverFn}
			handler := NewSessionHandler(mockService, newTestLogger())

			req := httptest.NewRequest(http.MethodPost, "/session/recover", nil)
			rr := httptest.NewRecorder()

			handler.Recover(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				var response ResultResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))
				assert.True(t, response.Success)
				assert.Equal(t, tt.expectedMessage, response.Message)
				return
			}

			var errResp shared.ErrorResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
			assert.Contains(t, errResp.Error, tt.expectedErrContains)
			assert.NotContains(t, errResp.Error, "blew up")
		})
	}
}

func TestNewSessionHandlerNilLoggerPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewSessionHandler(&mockSessionService{}, nil)
	})
}
