package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"subquest/internal/domain"

	_ "modernc.org/sqlite"
)

// Open opens (creating if needed) the sqlite database at path
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create database dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// sqlite serializes writers anyway
	db.SetMaxOpenConns(1)
	return db, nil
}

// AllowListRepo implements repository.AllowListRepository on sqlite
type AllowListRepo struct {
	db *sql.DB
}

// NewAllowListRepo creates a new allow-list repository
func NewAllowListRepo(db *sql.DB) *AllowListRepo {
	return &AllowListRepo{db: db}
}

// InitSchema creates the allow-list table
func (r *AllowListRepo) InitSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS allowed_users (
		user_id INTEGER PRIMARY KEY,
		added_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return fmt.Errorf("create table allowed_users: %w", err)
	}
	return nil
}

// IsAllowed checks if user is on the allow-list
func (r *AllowListRepo) IsAllowed(ctx context.Context, userID int64) (bool, error) {
	var allowed bool
	query := `SELECT EXISTS (SELECT 1 FROM allowed_users WHERE user_id = ?)`
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&allowed); err != nil {
		return false, fmt.Errorf("%w: check user %d: %v", domain.ErrStorageUnavailable, userID, err)
	}
	return allowed, nil
}

// Add puts user on the allow-list
func (r *AllowListRepo) Add(ctx context.Context, userID int64) error {
	query := `INSERT OR IGNORE INTO allowed_users (user_id) VALUES (?)`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("%w: add user %d: %v", domain.ErrStorageUnavailable, userID, err)
	}
	return nil
}

// Remove takes user off the allow-list
func (r *AllowListRepo) Remove(ctx context.Context, userID int64) error {
	query := `DELETE FROM allowed_users WHERE user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("%w: remove user %d: %v", domain.ErrStorageUnavailable, userID, err)
	}
	return nil
}
