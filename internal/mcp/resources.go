package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// --- Resource definitions ---

var resToday = mcp.NewResource(
	"campuslog://today",
	"Today",
	mcp.WithResourceDescription("Today's water intake total and deadlines due in the next 7 days"),
	mcp.WithMIMEType("application/json"),
)

var resExerciseCatalog = mcp.NewResource(
	"campuslog://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("The user's exercise library with muscle, equipment, and category tags"),
	mcp.WithMIMEType("application/json"),
)

func (h *handlers) today(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uid := UserIDFromContext(ctx)

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	totals, err := h.ds.DailyWaterTotals(ctx, uid, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		h.log.Warn("today: water totals failed", "error", err)
	}

	deadlines, err := h.ds.UpcomingDeadlines(ctx, uid, 7*24*time.Hour)
	if err != nil {
		h.log.Warn("today: deadlines failed", "error", err)
	}

	var waterOz float64
	if len(totals) > 0 {
		waterOz = totals[0].TotalOz
	}

	summary := map[string]any{
		"date":      dayStart.Format("2006-01-02"),
		"water_oz":  waterOz,
		"deadlines": deadlines,
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) exerciseCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	exercises, err := h.ds.ListExercises(ctx, UserIDFromContext(ctx))
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(exercises)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
