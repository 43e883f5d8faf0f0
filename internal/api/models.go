package api

import (
	"time"

	"github.com/phrazzld/arcana-api/internal/domain"
	"github.com/phrazzld/arcana-api/internal/service/session"
)

// Common request/response structures

// PerformReadingRequest defines the optional payload for the perform-reading
// endpoint. An absent body or a zero count performs a single reading.
type PerformReadingRequest struct {
	Count int `json:"count" validate:"omitempty,gte=1,lte=100"`
}

// CardResponse represents one drawn card within a reading.
type CardResponse struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Orientation string `json:"orientation"`
	Meaning     string `json:"meaning"`
}

// InterpretationResponse carries the generated text for each spread position
// plus the overall narrative.
type InterpretationResponse struct {
	Past    string `json:"past"`
	Present string `json:"present"`
	Future  string `json:"future"`
	Overall string `json:"overall"`
}

// ReadingResponse represents a completed three-card reading.
type ReadingResponse struct {
	ID             string                 `json:"id"`
	Timestamp      time.Time              `json:"timestamp"`
	FormattedTime  string                 `json:"formatted_time"`
	Cards          []CardResponse         `json:"cards"`
	Interpretation InterpretationResponse `json:"interpretation"`
	Summary        string                 `json:"summary"`
	Formatted      string                 `json:"formatted"`
}

// ResultResponse reports the outcome of a session operation. Reading is only
// present when the operation produced one.
type ResultResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Reading *ReadingResponse `json:"reading,omitempty"`
}

// BatchResultResponse wraps the per-reading results of a multi-reading
// request.
type BatchResultResponse struct {
	Results []ResultResponse `json:"results"`
}

// ReadingListResponse wraps the session's reading history.
type ReadingListResponse struct {
	Readings []ReadingResponse `json:"readings"`
	Count    int               `json:"count"`
}

// StatsResponse represents session statistics.
type StatsResponse struct {
	TotalReadings     int       `json:"total_readings"`
	ReadingsInHistory int       `json:"readings_in_history"`
	DeckResets        int       `json:"deck_resets"`
	SessionStart      time.Time `json:"session_start"`
	Uptime            string    `json:"uptime"`
}

// SessionResponse represents the current state of the reading session.
type SessionResponse struct {
	// SessionID is the unique identifier for this session
	SessionID string `json:"session_id"`

	// State is the session's lifecycle state (e.g. "ready", "error")
	State string `json:"state"`

	// StateDescription is a human-readable description of the state
	StateDescription string `json:"state_description"`

	Ready       bool          `json:"ready"`
	HasError    bool          `json:"has_error"`
	LastError   string        `json:"last_error,omitempty"`
	QuickStatus string        `json:"quick_status"`
	Stats       StatsResponse `json:"stats"`
}

// DeckResponse represents the deck's current counts and availability.
type DeckResponse struct {
	Available           int    `json:"available"`
	Capacity            int    `json:"capacity"`
	Drawn               int    `json:"drawn"`
	HasEnoughForReading bool   `json:"has_enough_for_reading"`
	Status              string `json:"status"`
}

// cardToResponse converts a domain.Card to a CardResponse
func cardToResponse(card domain.Card) CardResponse {
	orientation := "upright"
	if card.Reversed {
		orientation = "reversed"
	}

	return CardResponse{
		Number:      card.Number,
		Name:        card.Name,
		DisplayName: card.DisplayName(),
		Orientation: orientation,
		Meaning:     card.CurrentMeaning(),
	}
}

// readingToResponse converts a domain.Reading to a ReadingResponse
func readingToResponse(reading domain.Reading) ReadingResponse {
	cards := make([]CardResponse, 0, len(reading.Cards))
	for _, card := range reading.Cards {
		cards = append(cards, cardToResponse(card))
	}

	return ReadingResponse{
		ID:            reading.ID,
		Timestamp:     reading.Timestamp,
		FormattedTime: reading.FormattedTimestamp(),
		Cards:         cards,
		Interpretation: InterpretationResponse{
			Past:    reading.Interpretation.Meanings[0],
			Present: reading.Interpretation.Meanings[1],
			Future:  reading.Interpretation.Meanings[2],
			Overall: reading.Interpretation.Overall,
		},
		Summary:   reading.Summary(),
		Formatted: reading.Formatted(),
	}
}

// resultToResponse converts a session.Result to a ResultResponse
func resultToResponse(result session.Result) ResultResponse {
	response := ResultResponse{
		Success: result.Success,
		Message: result.Message,
	}

	if result.HasReading() {
		reading := readingToResponse(*result.Reading)
		response.Reading = &reading
	}

	return response
}

// statsToResponse converts session.Stats to a StatsResponse
func statsToResponse(stats session.Stats) StatsResponse {
	return StatsResponse{
		TotalReadings:     stats.TotalReadings,
		ReadingsInHistory: stats.ReadingsInHistory,
		DeckResets:        stats.DeckResets,
		SessionStart:      stats.SessionStart,
		Uptime:            stats.Uptime,
	}
}

// deckInfoToResponse converts session.DeckInfo to a DeckResponse
func deckInfoToResponse(info session.DeckInfo) DeckResponse {
	return DeckResponse{
		Available:           info.Available,
		Capacity:            info.Capacity,
		Drawn:               info.Drawn,
		HasEnoughForReading: info.HasEnoughForReading,
		Status:              info.Status,
	}
}
