package api

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/phrazzld/arcana-api/internal/domain"
	"github.com/phrazzld/arcana-api/internal/service/session"
	"github.com/stretchr/testify/require"
)

// mockSessionService is a mock implementation of the session.Service
// interface. Operations delegate to function fields when set; accessors
// return the configured values.
type mockSessionService struct {
	performReadingFn          func(ctx context.Context) (session.Result, error)
	performMultipleReadingsFn func(ctx context.Context, count int) ([]session.Result, error)
	resetDeckFn               func(ctx context.Context) (session.Result, error)
	createNewDeckFn           func(ctx context.Context) (session.Result, error)
	clearHistoryFn            func(ctx context.Context) (session.Result, error)
	recoverFromErrorFn        func(ctx context.Context) (session.Result, error)
	readingFn                 func(index int) (domain.Reading, error)

	sessionID    string
	readings     []domain.Reading
	stats        session.Stats
	state        session.State
	lastError    string
	deckStatus   string
	deckInfo     session.DeckInfo
	quickStatus  string
	statusReport string
	shutdowns    int
}

func (m *mockSessionService) PerformReading(ctx context.Context) (session.Result, error) {
	return m.performReadingFn(ctx)
}

func (m *mockSessionService) PerformMultipleReadings(
	ctx context.Context,
	count int,
) ([]session.Result, error) {
	return m.performMultipleReadingsFn(ctx, count)
}

func (m *mockSessionService) ResetDeck(ctx context.Context) (session.Result, error) {
	return m.resetDeckFn(ctx)
}

func (m *mockSessionService) CreateNewDeck(ctx context.Context) (session.Result, error) {
	return m.createNewDeckFn(ctx)
}

func (m *mockSessionService) ClearHistory(ctx context.Context) (session.Result, error) {
	return m.clearHistoryFn(ctx)
}

func (m *mockSessionService) RecoverFromError(ctx context.Context) (session.Result, error) {
	return m.recoverFromErrorFn(ctx)
}

func (m *mockSessionService) Shutdown(ctx context.Context) {
	m.shutdowns++
}

func (m *mockSessionService) SessionID() string {
	return m.sessionID
}

func (m *mockSessionService) SessionReadings() []domain.Reading {
	return m.readings
}

func (m *mockSessionService) Reading(index int) (domain.Reading, error) {
	return m.readingFn(index)
}

func (m *mockSessionService) LastReading() (domain.Reading, error) {
	if len(m.readings) == 0 {
		return domain.Reading{}, session.ErrReadingNotFound
	}
	return m.readings[len(m.readings)-1], nil
}

func (m *mockSessionService) Stats() session.Stats {
	return m.stats
}

func (m *mockSessionService) State() session.State {
	return m.state
}

func (m *mockSessionService) Ready() bool {
	return m.state == session.StateReady
}

func (m *mockSessionService) HasError() bool {
	return m.state == session.StateError
}

func (m *mockSessionService) LastError() string {
	return m.lastError
}

func (m *mockSessionService) DeckStatus() string {
	return m.deckStatus
}

func (m *mockSessionService) DeckInfo() session.DeckInfo {
	return m.deckInfo
}

func (m *mockSessionService) QuickStatus() string {
	return m.quickStatus
}

func (m *mockSessionService) StatusReport() string {
	return m.statusReport
}

// newTestLogger returns a logger that discards all output.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// sampleReading builds a valid three-card reading for handler tests. The
// present card is reversed so orientation handling is visible in responses.
func sampleReading(t *testing.T) domain.Reading {
	t.Helper()

	fool, err := domain.NewCard(0, "The Fool", "New beginnings and innocence.", "Recklessness and naivety.")
	require.NoError(t, err)

	magician, err := domain.NewCard(1, "The Magician", "Manifestation and willpower.", "Manipulation and illusions.")
	require.NoError(t, err)
	magician.SetReversed(true)

	sun, err := domain.NewCard(19, "The Sun", "Joy and vitality.", "Clouded optimism.")
	require.NoError(t, err)

	interpretation := domain.Interpretation{
		CardNames: [domain.SpreadSize]string{
			fool.DisplayName(),
			magician.DisplayName(),
			sun.DisplayName(),
		},
		Meanings: [domain.SpreadSize]string{
			"In the past position, The Fool speaks of new beginnings.",
			"In the present position, The Magician reversed warns of illusions.",
			"In the future position, The Sun promises joy.",
		},
		Overall: "A journey from innocence through illusion into the light.",
	}

	reading, err := domain.NewReading(
		"R20250601-120000-001",
		time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		[domain.SpreadSize]domain.Card{fool, magician, sun},
		interpretation,
	)
	require.NoError(t, err)

	return reading
}
