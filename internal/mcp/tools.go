package mcp

import (
	"context"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/F3lipe9/campuslog/internal/models"
	"github.com/F3lipe9/campuslog/internal/suggest"
)

// defaultTimeRange returns start/end defaulting to the last 7 days.
func defaultTimeRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if endStr != "" {
		end, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		end = time.Now()
	}

	if startStr != "" {
		start, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		start = end.AddDate(0, 0, -7)
	}

	return start, end, nil
}

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}

// findExercise resolves an exercise by case-insensitive name match.
func findExercise(exercises []models.Exercise, name string) (models.Exercise, bool) {
	for _, ex := range exercises {
		if strings.EqualFold(ex.Name, name) {
			return ex, true
		}
	}
	return models.Exercise{}, false
}

// --- Tool definitions ---

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List the user's exercise library with muscle group, equipment, and category tags."),
)

var toolGetExerciseHistory = mcp.NewTool("get_exercise_history",
	mcp.WithDescription("Get every logged set for an exercise across all sessions, oldest to newest. Strength sets have weight and reps; cardio sets have duration, distance, calories, and effort."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name (case-insensitive, e.g. 'Bench Press')")),
)

var toolGetSuggestion = mcp.NewTool("get_progression_suggestion",
	mcp.WithDescription("Get a progressive-overload recommendation for the next session of an exercise, based on the most recent working set."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name (case-insensitive)")),
)

var toolGetWaterSummary = mcp.NewTool("get_water_summary",
	mcp.WithDescription("Get daily water intake totals (ounces) over a time range."),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to 7 days ago.")),
	mcp.WithString("end", mcp.Description("End date (ISO 8601 or YYYY-MM-DD). Defaults to now.")),
)

var toolGetUpcomingDeadlines = mcp.NewTool("get_upcoming_deadlines",
	mcp.WithDescription("Get open assignments due within the next N days (overdue ones included until completed) and exams starting in that window, soonest first."),
	mcp.WithNumber("days", mcp.Description("Horizon in days. Defaults to 14.")),
)

// --- Tool handlers ---

func (h *handlers) listExercises(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)
	exercises, err := h.ds.ListExercises(ctx, uid)
	if err != nil {
		h.log.Error("mcp list_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(exercises)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getExerciseHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	uid := UserIDFromContext(ctx)

	exercises, err := h.ds.ListExercises(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_exercise_history", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	ex, ok := findExercise(exercises, name)
	if !ok {
		return mcp.NewToolResultError("unknown exercise: " + name), nil
	}

	history, err := h.ds.ExerciseHistory(ctx, ex.ID, uid)
	if err != nil {
		h.log.Error("mcp get_exercise_history", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(history)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSuggestion(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	uid := UserIDFromContext(ctx)

	exercises, err := h.ds.ListExercises(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_progression_suggestion", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	ex, ok := findExercise(exercises, name)
	if !ok {
		return mcp.NewToolResultError("unknown exercise: " + name), nil
	}

	history, err := h.ds.ExerciseHistory(ctx, ex.ID, uid)
	if err != nil {
		h.log.Error("mcp get_progression_suggestion", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]string{
		"exercise":   ex.Name,
		"suggestion": suggest.Suggest(ex, history),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWaterSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}
	uid := UserIDFromContext(ctx)

	totals, err := h.ds.DailyWaterTotals(ctx, uid, start, end)
	if err != nil {
		h.log.Error("mcp get_water_summary", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(totals)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getUpcomingDeadlines(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days := req.GetInt("days", 14)
	if days <= 0 {
		days = 14
	}
	uid := UserIDFromContext(ctx)

	deadlines, err := h.ds.UpcomingDeadlines(ctx, uid, time.Duration(days)*24*time.Hour)
	if err != nil {
		h.log.Error("mcp get_upcoming_deadlines", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(deadlines)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
