package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/arcana-api/internal/api/shared"
	"github.com/phrazzld/arcana-api/internal/service/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDeck(t *testing.T) {
	mockService := &mockSessionService{
		deckInfo: session.DeckInfo{
			Available:           19,
			Capacity:            22,
			Drawn:               3,
			HasEnoughForReading: true,
			Status:              "Deck Status: 19/22 cards available (3 drawn)",
		},
	}
	handler := NewDeckHandler(mockService, newTestLogger())

	req := httptest.NewRequest(http.MethodGet, "/deck", nil)
	rr := httptest.NewRecorder()

	handler.GetDeck(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response DeckResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))
	assert.Equal(t, 19, response.Available)
	assert.Equal(t, 22, response.Capacity)
	assert.Equal(t, 3, response.Drawn)
	assert.True(t, response.HasEnoughForReading)
	assert.Equal(t, "Deck Status: 19/22 cards available (3 drawn)", response.Status)
}

func TestResetDeck(t *testing.T) {
	t.Run("successful reset", func(t *testing.T) {
		mockService := &mockSessionService{
			resetDeckFn: func(ctx context.Context) (session.Result, error) {
				return session.Result{
					Success: true,
					Message: "Deck reset successfully. All 22 cards are now available.",
				}, nil
			},
		}
		handler := NewDeckHandler(mockService, newTestLogger())

		req := httptest.NewRequest(http.MethodPost, "/deck/reset", nil)
		rr := httptest.NewRecorder()

		handler.ResetDeck(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response ResultResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))
		assert.True(t, response.Success)
		assert.Equal(t, "Deck reset successfully. All 22 cards are now available.", response.Message)
		assert.Nil(t, response.Reading)
	})

	t.Run("session shut down", func(t *testing.T) {
		mockService := &mockSessionService{
			resetDeckFn: func(ctx context.Context) (session.Result, error) {
				return session.Result{}, session.ErrShutdown
			},
		}
		handler := NewDeckHandler(mockService, newTestLogger())

		req := httptest.NewRequest(http.MethodPost, "/deck/reset", nil)
		rr := httptest.NewRecorder()

		handler.ResetDeck(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)

		var errResp shared.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&errResp))
		assert.Equal(t, "Session has been shut down", errResp.Error)
	})
}

func TestNewDeck(t *testing.T) {
	mockService := &mockSessionService{
		createNewDeckFn: func(ctx context.Context) (session.Result, error) {
			return session.Result{
				Success: true,
				Message: "New deck created successfully.",
			}, nil
		},
	}
	handler := NewDeckHandler(mockService, newTestLogger())

	req := httptest.NewRequest(http.MethodPost, "/deck/new", nil)
	rr := httptest.NewRecorder()

	handler.NewDeck(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response ResultResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))
	assert.True(t, response.Success)
	assert.Equal(t, "New deck created successfully.", response.Message)
}
