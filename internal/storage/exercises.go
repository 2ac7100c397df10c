package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/F3lipe9/campuslog/internal/models"
)

// CreateExercise inserts a library entry and returns it with its
// generated ID.
func (db *DB) CreateExercise(ctx context.Context, ex models.Exercise) (*models.Exercise, error) {
	ex.ID = uuid.New()
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO exercises (id, user_id, name, muscle, equipment, category, is_compound)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		ex.ID, ex.UserID, ex.Name, ex.Muscle, ex.Equipment, ex.Category, ex.IsCompound,
	).Scan(&ex.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting exercise: %w", err)
	}
	return &ex, nil
}

// GetExercise fetches one exercise scoped to the user.
func (db *DB) GetExercise(ctx context.Context, id uuid.UUID, userID int) (*models.Exercise, error) {
	ex := &models.Exercise{}
	err := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, name, muscle, equipment, category, is_compound, created_at
		 FROM exercises WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&ex.ID, &ex.UserID, &ex.Name, &ex.Muscle, &ex.Equipment, &ex.Category, &ex.IsCompound, &ex.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying exercise: %w", err)
	}
	return ex, nil
}

// ListExercises returns the user's exercise library ordered by name.
func (db *DB) ListExercises(ctx context.Context, userID int) ([]models.Exercise, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, name, muscle, equipment, category, is_compound, created_at
		 FROM exercises WHERE user_id = $1 ORDER BY name`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	var result []models.Exercise
	for rows.Next() {
		var ex models.Exercise
		if err := rows.Scan(&ex.ID, &ex.UserID, &ex.Name, &ex.Muscle, &ex.Equipment,
			&ex.Category, &ex.IsCompound, &ex.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		result = append(result, ex)
	}
	return result, rows.Err()
}

// UpdateExercise changes the descriptive fields. Identity (ID, user,
// category) stays fixed so historical sets keep their interpretation.
func (db *DB) UpdateExercise(ctx context.Context, ex models.Exercise) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE exercises SET name = $3, muscle = $4, equipment = $5, is_compound = $6
		 WHERE id = $1 AND user_id = $2`,
		ex.ID, ex.UserID, ex.Name, ex.Muscle, ex.Equipment, ex.IsCompound)
	if err != nil {
		return fmt.Errorf("updating exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteExercise removes an exercise and, via cascade, its sets.
func (db *DB) DeleteExercise(ctx context.Context, id uuid.UUID, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM exercises WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetOrCreateExerciseByName resolves an exercise by name for imports,
// creating it with the supplied descriptors if missing. Returns the
// exercise and whether it was created.
func (db *DB) GetOrCreateExerciseByName(ctx context.Context, userID int, name, muscle, equipment, category string) (*models.Exercise, bool, error) {
	ex := &models.Exercise{}
	err := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, name, muscle, equipment, category, is_compound, created_at
		 FROM exercises WHERE user_id = $1 AND name = $2`,
		userID, name,
	).Scan(&ex.ID, &ex.UserID, &ex.Name, &ex.Muscle, &ex.Equipment, &ex.Category, &ex.IsCompound, &ex.CreatedAt)
	if err == nil {
		return ex, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("querying exercise by name: %w", err)
	}

	if category == "" {
		category = models.CategoryStrength
	}
	created, err := db.CreateExercise(ctx, models.Exercise{
		UserID:    userID,
		Name:      name,
		Muscle:    muscle,
		Equipment: equipment,
		Category:  category,
	})
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}
