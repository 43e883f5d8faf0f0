package session

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/arcana-api/internal/catalog"
	"github.com/phrazzld/arcana-api/internal/deck"
	"github.com/phrazzld/arcana-api/internal/domain"
	"github.com/phrazzld/arcana-api/internal/generation"
	"github.com/phrazzld/arcana-api/internal/platform/logger"
)

// Verify interface compliance at compile time
var _ Service = (*sessionService)(nil)

// Config carries the tunable settings for a session service.
type Config struct {
	// ReversalProbability is the chance that each drawn card lands
	// reversed. Must be between 0 and 1 inclusive.
	ReversalProbability float64

	// Seed seeds the shared random source used for both deck shuffling and
	// reversal sampling. Zero selects a time-based seed.
	Seed int64

	// Clock supplies timestamps for reading IDs and session statistics.
	// Nil selects time.Now.
	Clock func() time.Time
}

// DefaultConfig returns the standard session settings: the documented
// reversal probability, time-based seeding, and the wall clock.
func DefaultConfig() Config {
	return Config{ReversalProbability: domain.DefaultReversalProbability}
}

// sessionService implements the Service interface.
type sessionService struct {
	mu sync.Mutex

	id        uuid.UUID
	catalog   *catalog.Catalog
	generator generation.Generator
	deck      *deck.Deck
	rng       *rand.Rand
	clock     func() time.Time
	logger    *slog.Logger

	reversalProbability float64
	idGen               readingIDGenerator

	state        State
	lastError    string
	readings     []domain.Reading
	sessionStart time.Time

	totalReadings int
	deckResets    int
}

// NewService creates a session service wired to the given catalog and
// generator. The catalog must be ready and the configured reversal
// probability must lie in [0, 1], otherwise an error is returned and the
// session is never constructed.
func NewService(
	cat *catalog.Catalog,
	generator generation.Generator,
	cfg Config,
	logger *slog.Logger,
) (Service, error) {
	// Validate inputs
	if cat == nil {
		panic("catalog cannot be nil")
	}
	if generator == nil {
		panic("generator cannot be nil")
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With(slog.String("component", "session_service"))

	if cfg.ReversalProbability < 0 || cfg.ReversalProbability > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidProbability, cfg.ReversalProbability)
	}
	if !cat.Ready() {
		return nil, fmt.Errorf("%w: %s", ErrCatalogNotReady, cat.Status())
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = clock().UnixNano()
	}
	// One shared source drives shuffles and reversals, so a fixed seed
	// reproduces an entire session
	rng := rand.New(rand.NewSource(seed))

	s := &sessionService{
		id:                  uuid.New(),
		catalog:             cat,
		generator:           generator,
		deck:                deck.NewWithRand(rng),
		rng:                 rng,
		clock:               clock,
		logger:              log,
		reversalProbability: cfg.ReversalProbability,
		idGen:               readingIDGenerator{clock: clock},
		state:               StateInitializing,
		sessionStart:        clock(),
	}
	s.state = StateReady

	log.Info("session initialized",
		slog.String("session_id", s.id.String()),
		slog.Float64("reversal_probability", cfg.ReversalProbability),
		slog.Int64("seed", seed))

	return s, nil
}

// SessionID implements Service.SessionID. The ID never changes after
// construction.
func (s *sessionService) SessionID() string {
	return s.id.String()
}

// PerformReading implements Service.PerformReading.
func (s *sessionService) PerformReading(ctx context.Context) (Result, error) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.performReadingLocked(log)
}

// PerformMultipleReadings implements Service.PerformMultipleReadings.
// It stops at the first failed reading.
func (s *sessionService) PerformMultipleReadings(ctx context.Context, count int) ([]Result, error) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidReadingCount, count)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]Result, 0, count)
	for i := 0; i < count; i++ {
		result, err := s.performReadingLocked(log)
		results = append(results, result)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// performReadingLocked runs one complete reading. Callers must hold s.mu.
func (s *sessionService) performReadingLocked(log *slog.Logger) (Result, error) {
	if s.state != StateReady {
		msg := fmt.Sprintf("Session is not ready for reading. Current state: %s", s.state.Display())
		if s.state == StateShutdown {
			return failureResult(msg), ErrShutdown
		}
		return failureResult(msg), fmt.Errorf("%w: current state %s", ErrNotReady, s.state)
	}

	s.state = StatePerformingReading

	reading, err := s.composeReading()
	if err != nil {
		s.state = StateError
		s.lastError = fmt.Sprintf("Reading failed: %v", err)
		log.Error("reading failed", slog.String("error", err.Error()))
		return failureResult(fmt.Sprintf("Failed to perform reading: %v", err)),
			fmt.Errorf("failed to perform reading: %w", err)
	}

	s.readings = append(s.readings, reading)
	s.totalReadings++
	s.state = StateReady
	s.lastError = ""

	log.Debug("reading completed",
		slog.String("reading_id", reading.ID),
		slog.Int("total_readings", s.totalReadings))

	return readingResult("Reading completed successfully", &reading), nil
}

// composeReading draws a spread, applies reversals, and assembles the
// interpreted reading. Callers must hold s.mu.
func (s *sessionService) composeReading() (domain.Reading, error) {
	cards, err := s.deck.DrawMany(domain.SpreadSize)
	if err != nil {
		return domain.Reading{}, fmt.Errorf("failed to draw spread: %w", err)
	}

	// Each card is reversed independently with the configured probability
	for i := range cards {
		if s.rng.Float64() < s.reversalProbability {
			cards[i].SetReversed(true)
		}
	}

	interpretation, err := s.generator.Generate(cards)
	if err != nil {
		return domain.Reading{}, fmt.Errorf("failed to generate interpretation: %w", err)
	}

	var spread [domain.SpreadSize]domain.Card
	copy(spread[:], cards)

	reading, err := domain.NewReading(s.idGen.next(), s.clock(), spread, interpretation)
	if err != nil {
		return domain.Reading{}, fmt.Errorf("failed to assemble reading: %w", err)
	}
	return reading, nil
}

// ResetDeck implements Service.ResetDeck.
func (s *sessionService) ResetDeck(ctx context.Context) (Result, error) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateShutdown {
		return shutdownResult()
	}

	s.deck.Reset()
	s.deckResets++
	s.clearErrorLocked()

	log.Debug("deck reset", slog.Int("deck_resets", s.deckResets))

	return successResult("Deck reset successfully. All 22 cards are now available."), nil
}

// CreateNewDeck implements Service.CreateNewDeck.
func (s *sessionService) CreateNewDeck(ctx context.Context) (Result, error) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateShutdown {
		return shutdownResult()
	}

	s.deck = deck.NewWithRand(s.rng)
	s.deckResets++ // counted as a reset for statistics
	s.clearErrorLocked()

	log.Debug("new deck created", slog.Int("deck_resets", s.deckResets))

	return successResult("New deck created successfully."), nil
}

// ClearHistory implements Service.ClearHistory.
func (s *sessionService) ClearHistory(ctx context.Context) (Result, error) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateShutdown {
		return shutdownResult()
	}

	cleared := len(s.readings)
	s.readings = nil

	log.Debug("history cleared", slog.Int("cleared", cleared))

	return successResult(fmt.Sprintf("Cleared %d readings from session history.", cleared)), nil
}

// RecoverFromError implements Service.RecoverFromError.
func (s *sessionService) RecoverFromError(ctx context.Context) (Result, error) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateShutdown {
		return shutdownResult()
	}

	if s.state != StateError {
		return successResult("Session is not in error state. No recovery needed."), nil
	}

	// A fresh deck re-establishes a usable draw source
	s.deck = deck.NewWithRand(s.rng)

	if !s.catalog.Ready() {
		err := fmt.Errorf("%w: %s", ErrCatalogNotReady, s.catalog.Status())
		log.Error("recovery failed", slog.String("error", err.Error()))
		return failureResult(fmt.Sprintf("Recovery failed: %v", err)), err
	}

	s.state = StateReady
	s.lastError = ""

	log.Info("recovered from error state")

	return successResult("Successfully recovered from error state."), nil
}

// Shutdown implements Service.Shutdown. The transition is terminal.
func (s *sessionService) Shutdown(ctx context.Context) {
	// Get logger from context or use default
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateShutdown

	log.Info("session shut down",
		slog.Int("total_readings", s.totalReadings),
		slog.String("uptime", formatUptime(s.sessionStart, s.clock())))
}

// SessionReadings implements Service.SessionReadings.
func (s *sessionService) SessionReadings() []domain.Reading {
	s.mu.Lock()
	defer s.mu.Unlock()

	readings := make([]domain.Reading, len(s.readings))
	copy(readings, s.readings)
	return readings
}

// Reading implements Service.Reading.
func (s *sessionService) Reading(index int) (domain.Reading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.readings) {
		return domain.Reading{}, fmt.Errorf("%w: index %d with history size %d",
			ErrReadingNotFound, index, len(s.readings))
	}
	return s.readings[index], nil
}

// LastReading implements Service.LastReading.
func (s *sessionService) LastReading() (domain.Reading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.readings) == 0 {
		return domain.Reading{}, fmt.Errorf("%w: session history is empty", ErrReadingNotFound)
	}
	return s.readings[len(s.readings)-1], nil
}

// Stats implements Service.Stats.
func (s *sessionService) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		TotalReadings:     s.totalReadings,
		ReadingsInHistory: len(s.readings),
		DeckResets:        s.deckResets,
		SessionStart:      s.sessionStart,
		Uptime:            formatUptime(s.sessionStart, s.clock()),
	}
}

// State implements Service.State.
func (s *sessionService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Ready implements Service.Ready.
func (s *sessionService) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateReady
}

// HasError implements Service.HasError.
func (s *sessionService) HasError() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateError
}

// LastError implements Service.LastError.
func (s *sessionService) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// DeckStatus implements Service.DeckStatus.
func (s *sessionService) DeckStatus() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.Status()
}

// DeckInfo implements Service.DeckInfo.
func (s *sessionService) DeckInfo() DeckInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	return DeckInfo{
		Available:           s.deck.Size(),
		Capacity:            s.deck.Capacity(),
		Drawn:               s.deck.DrawnCount(),
		HasEnoughForReading: s.deck.HasEnoughForReading(),
		Status:              s.deck.Status(),
	}
}

// QuickStatus implements Service.QuickStatus.
func (s *sessionService) QuickStatus() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fmt.Sprintf("Session: %s | %s | Readings: %d",
		s.state.Display(),
		strings.TrimPrefix(s.deck.Status(), "Deck Status: "),
		s.totalReadings)
}

// StatusReport implements Service.StatusReport.
func (s *sessionService) StatusReport() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var report strings.Builder

	report.WriteString("═══ TAROT SESSION STATUS ═══\n")
	fmt.Fprintf(&report, "State: %s - %s\n", s.state.Display(), s.state.Description())
	fmt.Fprintf(&report, "Session Start: %s\n", s.sessionStart.Format("Jan 2, 2006 at 3:04 PM"))
	fmt.Fprintf(&report, "Uptime: %s\n\n", formatUptime(s.sessionStart, s.clock()))

	report.WriteString("═══ SESSION STATISTICS ═══\n")
	fmt.Fprintf(&report, "Total Readings: %d\n", s.totalReadings)
	fmt.Fprintf(&report, "Readings in History: %d\n", len(s.readings))
	fmt.Fprintf(&report, "Deck Resets: %d\n\n", s.deckResets)

	report.WriteString("═══ CURRENT DECK STATUS ═══\n")
	report.WriteString(s.deck.Status())
	report.WriteString("\n\n")

	report.WriteString("═══ SERVICE STATUS ═══\n")
	report.WriteString(s.catalog.Status())
	report.WriteString("\n")

	if s.lastError != "" {
		report.WriteString("\n═══ LAST ERROR ═══\n")
		report.WriteString(s.lastError)
		report.WriteString("\n")
	}

	return report.String()
}

// clearErrorLocked returns an errored session to Ready. Callers must hold s.mu.
func (s *sessionService) clearErrorLocked() {
	if s.state == StateError {
		s.state = StateReady
		s.lastError = ""
	}
}

func shutdownResult() (Result, error) {
	return failureResult("Session has been shut down. No further operations are accepted."), ErrShutdown
}
