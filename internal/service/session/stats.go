package session

import (
	"fmt"
	"time"
)

// Stats is a point-in-time snapshot of session statistics.
type Stats struct {
	TotalReadings     int       `json:"total_readings"`
	ReadingsInHistory int       `json:"readings_in_history"`
	DeckResets        int       `json:"deck_resets"`
	SessionStart      time.Time `json:"session_start"`
	Uptime            string    `json:"uptime"`
}

// String returns a compact single-line rendering of the snapshot.
func (s Stats) String() string {
	return fmt.Sprintf("SessionStats[readings=%d, history=%d, resets=%d, uptime=%s]",
		s.TotalReadings, s.ReadingsInHistory, s.DeckResets, s.Uptime)
}

// DeckInfo is a point-in-time snapshot of the session deck.
type DeckInfo struct {
	Available           int    `json:"available"`
	Capacity            int    `json:"capacity"`
	Drawn               int    `json:"drawn"`
	HasEnoughForReading bool   `json:"has_enough_for_reading"`
	Status              string `json:"status"`
}

// formatUptime renders the elapsed session time as "N minutes" under an
// hour and "Xh Ym" from one hour on.
func formatUptime(start, now time.Time) string {
	minutes := int(now.Sub(start).Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%d minutes", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
