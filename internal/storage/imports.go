package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/F3lipe9/campuslog/internal/models"
)

// ImportBatch inserts an offline-sync payload: water entries,
// assignments, and sets. Sets reference exercises by name; unknown
// names create library entries, and sets are grouped into one imported
// session per distinct session name.
func (db *DB) ImportBatch(ctx context.Context, userID int, p *models.ImportPayload) (*models.ImportResult, error) {
	result := &models.ImportResult{}

	for _, w := range p.Water {
		loggedAt := w.LoggedAt
		if loggedAt.IsZero() {
			loggedAt = time.Now()
		}
		if _, err := db.InsertWaterEntry(ctx, models.WaterEntry{
			UserID: userID, AmountOz: w.AmountOz, LoggedAt: loggedAt,
		}); err != nil {
			return result, fmt.Errorf("importing water entry: %w", err)
		}
		result.WaterInserted++
	}

	for _, a := range p.Assignments {
		if _, err := db.CreateAssignment(ctx, models.Assignment{
			UserID: userID, Title: a.Title, Course: a.Course, DueDate: a.DueDate,
		}); err != nil {
			return result, fmt.Errorf("importing assignment: %w", err)
		}
		result.AssignmentsInserted++
	}

	sessions := map[string]uuid.UUID{}
	setNumbers := map[string]int{}

	for _, s := range p.Sets {
		ex, created, err := db.GetOrCreateExerciseByName(ctx, userID, s.Exercise, s.Muscle, s.Equipment, s.Category)
		if err != nil {
			return result, fmt.Errorf("importing set for %q: %w", s.Exercise, err)
		}
		if created {
			result.ExercisesCreated++
		}

		name := s.SessionName
		if name == "" {
			name = "Imported workout"
		}
		sessionID, ok := sessions[name]
		if !ok {
			startedAt := s.LoggedAt
			if startedAt.IsZero() {
				startedAt = time.Now()
			}
			sess, err := db.CreateSession(ctx, models.WorkoutSession{
				UserID: userID, Name: name, StartedAt: startedAt,
			})
			if err != nil {
				return result, fmt.Errorf("creating imported session %q: %w", name, err)
			}
			sessions[name] = sess.ID
			sessionID = sess.ID
			result.SessionsCreated++
		}

		setNumbers[name]++
		if _, err := db.InsertSet(ctx, userID, models.WorkoutSet{
			SessionID:   sessionID,
			ExerciseID:  ex.ID,
			SetNumber:   setNumbers[name],
			IsWarmup:    s.IsWarmup,
			Weight:      s.Weight,
			Reps:        s.Reps,
			DurationMin: s.DurationMin,
			DistanceMi:  s.DistanceMi,
			Calories:    s.Calories,
			Effort:      s.Effort,
			CreatedAt:   s.LoggedAt,
		}); err != nil {
			return result, fmt.Errorf("importing set: %w", err)
		}
		result.SetsInserted++
	}

	return result, nil
}
