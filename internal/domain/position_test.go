package domain

import (
	"testing"
)

func TestSpreadPositions(t *testing.T) {
	t.Parallel() // Enable parallel execution
	positions := SpreadPositions()

	expected := [SpreadSize]Position{PositionPast, PositionPresent, PositionFuture}
	if positions != expected {
		t.Errorf("Expected spread order %v, got %v", expected, positions)
	}
}

func TestPositionIsValid(t *testing.T) {
	t.Parallel() // Enable parallel execution
	valid := []Position{PositionGeneral, PositionPast, PositionPresent, PositionFuture}
	for _, p := range valid {
		if !p.IsValid() {
			t.Errorf("Expected position %q to be valid", p)
		}
	}

	invalid := []Position{"", "sideways", "PAST"}
	for _, p := range invalid {
		if p.IsValid() {
			t.Errorf("Expected position %q to be invalid", p)
		}
	}
}

func TestPositionLabel(t *testing.T) {
	t.Parallel() // Enable parallel execution
	tests := []struct {
		position Position
		label    string
	}{
		{PositionGeneral, "General"},
		{PositionPast, "Past"},
		{PositionPresent, "Present"},
		{PositionFuture, "Future"},
		{Position("sideways"), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.position.Label(); got != tc.label {
			t.Errorf("Expected label %q for %q, got %q", tc.label, tc.position, got)
		}
	}
}

func TestPositionSpreadIndex(t *testing.T) {
	t.Parallel() // Enable parallel execution
	tests := []struct {
		position Position
		index    int
	}{
		{PositionPast, 0},
		{PositionPresent, 1},
		{PositionFuture, 2},
	}

	for _, tc := range tests {
		idx, err := tc.position.SpreadIndex()
		if err != nil {
			t.Errorf("Expected no error for %q, got %v", tc.position, err)
		}
		if idx != tc.index {
			t.Errorf("Expected index %d for %q, got %d", tc.index, tc.position, idx)
		}
	}

	// General has no slot in a spread
	if _, err := PositionGeneral.SpreadIndex(); err != ErrInvalidPosition {
		t.Errorf("Expected error %v, got %v", ErrInvalidPosition, err)
	}

	if _, err := Position("sideways").SpreadIndex(); err != ErrInvalidPosition {
		t.Errorf("Expected error %v, got %v", ErrInvalidPosition, err)
	}
}
