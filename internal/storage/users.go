package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/F3lipe9/campuslog/internal/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert violates a uniqueness constraint.
var ErrDuplicate = errors.New("already exists")

// CreateUser inserts a new account. The caller supplies the bcrypt hash.
// Returns ErrDuplicate if the username is taken, or the email when one
// was supplied.
func (db *DB) CreateUser(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	query, args := duplicateUserQuery(username, email)
	var exists bool
	if err := db.Pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return nil, fmt.Errorf("checking existing user: %w", err)
	}
	if exists {
		return nil, ErrDuplicate
	}

	u := &models.User{Username: username, Email: email, PasswordHash: passwordHash}
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		username, email, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting user: %w", err)
	}
	return u, nil
}

// duplicateUserQuery builds the pre-insert existence check for
// registration. Identity-created rows store an empty email, so the
// email clause only applies when an email was actually supplied;
// otherwise every email-less registration would collide with them.
func duplicateUserQuery(username, email string) (string, []any) {
	if email == "" {
		return `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, []any{username}
	}
	return `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)`, []any{username, email}
}

// GetUserByUsername looks up an account for login.
func (db *DB) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	u := &models.User{}
	err := db.Pool.QueryRow(ctx,
		`SELECT id, username, email, password_hash, created_at
		 FROM users WHERE username = $1`,
		username).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying user: %w", err)
	}
	return u, nil
}

// GetOrCreateUser finds or creates a user by login name. Used by the
// identity middleware for requests that arrive with an X-User header
// only. Password-less rows get an empty hash and can't log in via
// /auth/login until they register.
func (db *DB) GetOrCreateUser(ctx context.Context, login string) (int, error) {
	var id int
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, '', '')
		ON CONFLICT (username) DO UPDATE SET username = EXCLUDED.username
		RETURNING id
	`, login).Scan(&id)
	return id, err
}
