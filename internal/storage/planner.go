package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/F3lipe9/campuslog/internal/models"
)

// CreateAssignment inserts a tracked assignment.
func (db *DB) CreateAssignment(ctx context.Context, a models.Assignment) (*models.Assignment, error) {
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO assignments (id, user_id, title, course, due_date, completed, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.UserID, a.Title, a.Course, a.DueDate, a.Completed, a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting assignment: %w", err)
	}
	return &a, nil
}

// ListAssignments returns the user's assignments ordered by due date.
// When includeCompleted is false, finished work is filtered out.
func (db *DB) ListAssignments(ctx context.Context, userID int, includeCompleted bool) ([]models.Assignment, error) {
	query := `SELECT id, user_id, title, course, due_date, completed, created_at
		 FROM assignments WHERE user_id = $1`
	if !includeCompleted {
		query += ` AND NOT completed`
	}
	query += ` ORDER BY due_date`

	rows, err := db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying assignments: %w", err)
	}
	defer rows.Close()

	var result []models.Assignment
	for rows.Next() {
		var a models.Assignment
		if err := rows.Scan(&a.ID, &a.UserID, &a.Title, &a.Course, &a.DueDate, &a.Completed, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning assignment: %w", err)
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

// UpdateAssignment rewrites title, course, due date and completion.
func (db *DB) UpdateAssignment(ctx context.Context, a models.Assignment) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE assignments SET title = $3, course = $4, due_date = $5, completed = $6
		 WHERE id = $1 AND user_id = $2`,
		a.ID, a.UserID, a.Title, a.Course, a.DueDate, a.Completed)
	if err != nil {
		return fmt.Errorf("updating assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAssignment removes an assignment owned by the user.
func (db *DB) DeleteAssignment(ctx context.Context, id uuid.UUID, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM assignments WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateExam inserts a scheduled exam.
func (db *DB) CreateExam(ctx context.Context, e models.Exam) (*models.Exam, error) {
	e.ID = uuid.New()
	e.CreatedAt = time.Now()
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO exams (id, user_id, title, course, starts_at, location, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.UserID, e.Title, e.Course, e.StartsAt, e.Location, e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting exam: %w", err)
	}
	return &e, nil
}

// ListExams returns the user's exams ordered by start time.
func (db *DB) ListExams(ctx context.Context, userID int) ([]models.Exam, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, title, course, starts_at, COALESCE(location, ''), created_at
		 FROM exams WHERE user_id = $1 ORDER BY starts_at`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying exams: %w", err)
	}
	defer rows.Close()

	var result []models.Exam
	for rows.Next() {
		var e models.Exam
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Course, &e.StartsAt, &e.Location, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning exam: %w", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// DeleteExam removes an exam owned by the user.
func (db *DB) DeleteExam(ctx context.Context, id uuid.UUID, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM exams WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting exam: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpcomingDeadlines merges open assignments due before the horizon and
// exams starting within it, soonest first. Overdue assignments stay
// listed until completed; past exams drop out.
func (db *DB) UpcomingDeadlines(ctx context.Context, userID int, horizon time.Duration) ([]models.Deadline, error) {
	now := time.Now()
	until := now.Add(horizon)

	rows, err := db.Pool.Query(ctx,
		`SELECT id, 'assignment', title, course, due_date AS due
		 FROM assignments
		 WHERE user_id = $1 AND NOT completed AND due_date < $2
		 UNION ALL
		 SELECT id, 'exam', title, course, starts_at AS due
		 FROM exams
		 WHERE user_id = $1 AND starts_at >= $3 AND starts_at < $2
		 ORDER BY due`,
		userID, until, now)
	if err != nil {
		return nil, fmt.Errorf("querying deadlines: %w", err)
	}
	defer rows.Close()

	var result []models.Deadline
	for rows.Next() {
		var d models.Deadline
		if err := rows.Scan(&d.ID, &d.Kind, &d.Title, &d.Course, &d.Due); err != nil {
			return nil, fmt.Errorf("scanning deadline: %w", err)
		}
		result = append(result, d)
	}
	return result, rows.Err()
}
