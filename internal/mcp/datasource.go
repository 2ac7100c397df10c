package mcp

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/F3lipe9/campuslog/internal/models"
	"github.com/F3lipe9/campuslog/internal/storage"
)

// DataSource abstracts the data layer for MCP tools. Both *storage.DB
// (local) and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	ListExercises(ctx context.Context, userID int) ([]models.Exercise, error)
	ExerciseHistory(ctx context.Context, exerciseID uuid.UUID, userID int) ([]models.WorkoutSet, error)
	DailyWaterTotals(ctx context.Context, userID int, start, end time.Time) ([]models.DailyWaterTotal, error)
	UpcomingDeadlines(ctx context.Context, userID int, horizon time.Duration) ([]models.Deadline, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
