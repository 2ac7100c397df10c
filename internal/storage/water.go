package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/F3lipe9/campuslog/internal/models"
)

// InsertWaterEntry logs one drink.
func (db *DB) InsertWaterEntry(ctx context.Context, e models.WaterEntry) (*models.WaterEntry, error) {
	e.ID = uuid.New()
	if e.LoggedAt.IsZero() {
		e.LoggedAt = time.Now()
	}
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO water_entries (id, user_id, amount_oz, logged_at)
		 VALUES ($1, $2, $3, $4)`,
		e.ID, e.UserID, e.AmountOz, e.LoggedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting water entry: %w", err)
	}
	return &e, nil
}

// ListWaterEntries returns entries in a time range, newest first.
func (db *DB) ListWaterEntries(ctx context.Context, userID int, start, end time.Time) ([]models.WaterEntry, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, amount_oz, logged_at
		 FROM water_entries
		 WHERE user_id = $1 AND logged_at >= $2 AND logged_at < $3
		 ORDER BY logged_at DESC`,
		userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying water entries: %w", err)
	}
	defer rows.Close()

	var result []models.WaterEntry
	for rows.Next() {
		var e models.WaterEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.AmountOz, &e.LoggedAt); err != nil {
			return nil, fmt.Errorf("scanning water entry: %w", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// DailyWaterTotals aggregates intake per day over a time range.
func (db *DB) DailyWaterTotals(ctx context.Context, userID int, start, end time.Time) ([]models.DailyWaterTotal, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT date_trunc('day', logged_at) AS day, SUM(amount_oz), COUNT(*)
		 FROM water_entries
		 WHERE user_id = $1 AND logged_at >= $2 AND logged_at < $3
		 GROUP BY day ORDER BY day`,
		userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying water totals: %w", err)
	}
	defer rows.Close()

	var result []models.DailyWaterTotal
	for rows.Next() {
		var t models.DailyWaterTotal
		if err := rows.Scan(&t.Date, &t.TotalOz, &t.Entries); err != nil {
			return nil, fmt.Errorf("scanning water total: %w", err)
		}
		result = append(result, t)
	}
	return result, rows.Err()
}
