package mcp

import (
	"context"
	"testing"

	"github.com/F3lipe9/campuslog/internal/models"
)

// TestUserIDFromContextDefault verifies the default user ID (1) when no value
// is set in the context.
func TestUserIDFromContextDefault(t *testing.T) {
	ctx := context.Background()
	if id := UserIDFromContext(ctx); id != 1 {
		t.Errorf("UserIDFromContext(empty) = %d, want 1", id)
	}
}

// TestUserIDFromContextSet verifies the user ID is extracted from context
// after being set by WithUserID.
func TestUserIDFromContextSet(t *testing.T) {
	ctx := WithUserID(context.Background(), 42)
	if id := UserIDFromContext(ctx); id != 42 {
		t.Errorf("UserIDFromContext = %d, want 42", id)
	}
}

// TestDefaultTimeRange verifies time range defaults (last 7 days) and parsing.
func TestDefaultTimeRange(t *testing.T) {
	// Both empty → defaults to last 7 days
	start, end, err := defaultTimeRange("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	diff := end.Sub(start)
	if diff.Hours() < 167 || diff.Hours() > 169 { // ~168 hours = 7 days
		t.Errorf("default range = %.0f hours, want ~168", diff.Hours())
	}

	// Explicit dates
	start, end, err = defaultTimeRange("2026-01-01", "2026-01-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Year() != 2026 || start.Month() != 1 || start.Day() != 1 {
		t.Errorf("start = %v, want 2026-01-01", start)
	}
	if end.Day() != 31 {
		t.Errorf("end = %v, want 2026-01-31", end)
	}

	// RFC3339
	start, _, err = defaultTimeRange("2026-06-15T10:30:00Z", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Hour() != 10 || start.Minute() != 30 {
		t.Errorf("start = %v, want 10:30", start)
	}

	// Invalid
	if _, _, err = defaultTimeRange("not-a-date", ""); err == nil {
		t.Error("expected error for malformed start")
	}
}

// TestFindExercise verifies the case-insensitive name lookup used by
// the history and suggestion tools.
func TestFindExercise(t *testing.T) {
	exercises := []models.Exercise{
		{Name: "Bench Press"},
		{Name: "Pull-Up"},
	}

	if _, ok := findExercise(exercises, "bench press"); !ok {
		t.Error("expected case-insensitive match for 'bench press'")
	}
	if ex, ok := findExercise(exercises, "PULL-UP"); !ok || ex.Name != "Pull-Up" {
		t.Errorf("findExercise(PULL-UP) = %+v, %v; want Pull-Up, true", ex, ok)
	}
	if _, ok := findExercise(exercises, "Squat"); ok {
		t.Error("did not expect a match for 'Squat'")
	}
}
