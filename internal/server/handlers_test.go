package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/F3lipe9/campuslog/internal/storage"
)

// TestParseTimeRangeDefaults verifies that an absent start parameter
// defaults to the last 7 days.
func TestParseTimeRangeDefaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/water", nil)
	start, end, err := parseTimeRange(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	diff := end.Sub(start)
	if diff.Hours() < 167 || diff.Hours() > 169 {
		t.Errorf("default range = %.0f hours, want ~168", diff.Hours())
	}
}

// TestParseTimeRangeDateOnly verifies that date-only values parse and
// that a date-only end is extended to the end of that day.
func TestParseTimeRangeDateOnly(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/water?start=2025-09-01&end=2025-09-07", nil)
	start, end, err := parseTimeRange(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Day() != 1 || start.Month() != time.September {
		t.Errorf("start = %v, want 2025-09-01", start)
	}
	// End of day: Sept 7 + 24h = Sept 8 00:00
	if end.Day() != 8 {
		t.Errorf("end = %v, want start of 2025-09-08", end)
	}
}

// TestParseTimeRangeRFC3339 verifies full timestamps are accepted.
func TestParseTimeRangeRFC3339(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/water?start=2025-09-01T08:30:00Z", nil)
	start, _, err := parseTimeRange(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Hour() != 8 || start.Minute() != 30 {
		t.Errorf("start = %v, want 08:30", start)
	}
}

// TestParseTimeRangeEndOnly verifies that a lone end parameter anchors
// the default 7-day window instead of being ignored.
func TestParseTimeRangeEndOnly(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/water?end=2025-09-07", nil)
	start, end, err := parseTimeRange(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Date-only end extends to the start of Sept 8.
	if end.Year() != 2025 || end.Month() != time.September || end.Day() != 8 {
		t.Errorf("end = %v, want start of 2025-09-08", end)
	}
	if want := end.AddDate(0, 0, -7); !start.Equal(want) {
		t.Errorf("start = %v, want %v (7 days before end)", start, want)
	}
}

// TestParseTimeRangeInvalid verifies malformed values produce an error.
func TestParseTimeRangeInvalid(t *testing.T) {
	tests := []struct{ name, query string }{
		{"bad start", "start=yesterday"},
		{"bad end", "end=tomorrow"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/water?"+tt.query, nil)
			if _, _, err := parseTimeRange(req); err == nil {
				t.Fatal("expected error for malformed parameter")
			}
		})
	}
}

// TestWriteStorageError verifies the storage error to status mapping.
func TestWriteStorageError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", storage.ErrNotFound, http.StatusNotFound},
		{"duplicate", storage.ErrDuplicate, http.StatusConflict},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeStorageError(rec, tt.err)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode error: %v", err)
			}
			if body["error"] == "" {
				t.Error("expected an error message in the body")
			}
		})
	}
}

// TestHealthz verifies the liveness endpoint responds without touching
// the database.
func TestHealthz(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	s.handleHealthz(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want %q", body["status"], "ok")
	}
}
