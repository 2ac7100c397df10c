package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/F3lipe9/campuslog/internal/models"
)

// CreateHabit inserts a habit.
func (db *DB) CreateHabit(ctx context.Context, h models.Habit) (*models.Habit, error) {
	h.ID = uuid.New()
	h.CreatedAt = time.Now()
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO habits (id, user_id, title, description, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		h.ID, h.UserID, h.Title, h.Description, h.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting habit: %w", err)
	}
	return &h, nil
}

// ListHabits returns the user's habits oldest first.
func (db *DB) ListHabits(ctx context.Context, userID int) ([]models.Habit, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, title, COALESCE(description, ''), created_at
		 FROM habits WHERE user_id = $1 ORDER BY created_at`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying habits: %w", err)
	}
	defer rows.Close()

	var result []models.Habit
	for rows.Next() {
		var h models.Habit
		if err := rows.Scan(&h.ID, &h.UserID, &h.Title, &h.Description, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning habit: %w", err)
		}
		result = append(result, h)
	}
	return result, rows.Err()
}

// DeleteHabit removes a habit owned by the user.
func (db *DB) DeleteHabit(ctx context.Context, id uuid.UUID, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM habits WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting habit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
