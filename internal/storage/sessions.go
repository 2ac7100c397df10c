package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/F3lipe9/campuslog/internal/models"
)

// CreateSession starts a new workout session.
func (db *DB) CreateSession(ctx context.Context, s models.WorkoutSession) (*models.WorkoutSession, error) {
	s.ID = uuid.New()
	if s.StartedAt.IsZero() {
		s.StartedAt = time.Now()
	}
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO workout_sessions (id, user_id, name, started_at, notes)
		 VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.UserID, s.Name, s.StartedAt, s.Notes)
	if err != nil {
		return nil, fmt.Errorf("inserting session: %w", err)
	}
	return &s, nil
}

// EndSession stamps the session's end time.
func (db *DB) EndSession(ctx context.Context, id uuid.UUID, userID int, endedAt time.Time) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE workout_sessions SET ended_at = $3 WHERE id = $1 AND user_id = $2`,
		id, userID, endedAt)
	if err != nil {
		return fmt.Errorf("ending session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListSessions returns the user's sessions newest first.
func (db *DB) ListSessions(ctx context.Context, userID int, limit int) ([]models.WorkoutSession, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, name, started_at, ended_at, COALESCE(notes, '')
		 FROM workout_sessions WHERE user_id = $1
		 ORDER BY started_at DESC LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutSession
	for rows.Next() {
		var s models.WorkoutSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.StartedAt, &s.EndedAt, &s.Notes); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// SessionDetail is a session with its logged sets.
type SessionDetail struct {
	models.WorkoutSession
	Sets []models.WorkoutSet `json:"sets"`
}

// GetSession fetches one session and all its sets in logged order.
func (db *DB) GetSession(ctx context.Context, id uuid.UUID, userID int) (*SessionDetail, error) {
	d := &SessionDetail{}
	err := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, name, started_at, ended_at, COALESCE(notes, '')
		 FROM workout_sessions WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&d.ID, &d.UserID, &d.Name, &d.StartedAt, &d.EndedAt, &d.Notes)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying session: %w", err)
	}

	rows, err := db.Pool.Query(ctx,
		`SELECT id, session_id, exercise_id, set_number, is_warmup,
		 weight, reps, duration_min, distance_mi, calories, effort, created_at
		 FROM workout_sets WHERE session_id = $1
		 ORDER BY created_at, set_number`,
		id)
	if err != nil {
		return nil, fmt.Errorf("querying session sets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s models.WorkoutSet
		if err := rows.Scan(&s.ID, &s.SessionID, &s.ExerciseID, &s.SetNumber, &s.IsWarmup,
			&s.Weight, &s.Reps, &s.DurationMin, &s.DistanceMi, &s.Calories, &s.Effort, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning set: %w", err)
		}
		d.Sets = append(d.Sets, s)
	}
	return d, rows.Err()
}

// InsertSet logs one set into a session. The session must belong to
// the user.
func (db *DB) InsertSet(ctx context.Context, userID int, s models.WorkoutSet) (*models.WorkoutSet, error) {
	var owner int
	err := db.Pool.QueryRow(ctx,
		`SELECT user_id FROM workout_sessions WHERE id = $1`, s.SessionID).Scan(&owner)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("checking session owner: %w", err)
	}
	if owner != userID {
		return nil, ErrNotFound
	}

	s.ID = uuid.New()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	_, err = db.Pool.Exec(ctx,
		`INSERT INTO workout_sets (id, session_id, exercise_id, set_number, is_warmup,
		 weight, reps, duration_min, distance_mi, calories, effort, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		s.ID, s.SessionID, s.ExerciseID, s.SetNumber, s.IsWarmup,
		s.Weight, s.Reps, s.DurationMin, s.DistanceMi, s.Calories, s.Effort, s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting set: %w", err)
	}
	return &s, nil
}

// DeleteSet removes one set from a session owned by the user.
func (db *DB) DeleteSet(ctx context.Context, userID int, sessionID, setID uuid.UUID) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM workout_sets
		 WHERE id = $1 AND session_id = $2
		 AND session_id IN (SELECT id FROM workout_sessions WHERE user_id = $3)`,
		setID, sessionID, userID)
	if err != nil {
		return fmt.Errorf("deleting set: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ExerciseHistory returns every set logged against an exercise across
// all sessions, oldest to newest. This ordering is what the suggestion
// engine expects.
func (db *DB) ExerciseHistory(ctx context.Context, exerciseID uuid.UUID, userID int) ([]models.WorkoutSet, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT ws.id, ws.session_id, ws.exercise_id, ws.set_number, ws.is_warmup,
		 ws.weight, ws.reps, ws.duration_min, ws.distance_mi, ws.calories, ws.effort, ws.created_at
		 FROM workout_sets ws
		 JOIN workout_sessions s ON s.id = ws.session_id
		 WHERE ws.exercise_id = $1 AND s.user_id = $2
		 ORDER BY ws.created_at, ws.set_number`,
		exerciseID, userID)
	if err != nil {
		return nil, fmt.Errorf("querying exercise history: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutSet
	for rows.Next() {
		var s models.WorkoutSet
		if err := rows.Scan(&s.ID, &s.SessionID, &s.ExerciseID, &s.SetNumber, &s.IsWarmup,
			&s.Weight, &s.Reps, &s.DurationMin, &s.DistanceMi, &s.Calories, &s.Effort, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning history set: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}
