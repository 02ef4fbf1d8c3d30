package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"subquest/internal/domain"
)

// AllowListRepo implements repository.AllowListRepository
type AllowListRepo struct {
	db *sql.DB
}

// NewAllowListRepo creates a new allow-list repository
func NewAllowListRepo(db *sql.DB) *AllowListRepo {
	return &AllowListRepo{db: db}
}

// IsAllowed checks if user is on the allow-list
func (r *AllowListRepo) IsAllowed(ctx context.Context, userID int64) (bool, error) {
	var allowed bool
	query := `SELECT EXISTS (SELECT 1 FROM allowed_users WHERE user_id = $1)`
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&allowed); err != nil {
		return false, fmt.Errorf("%w: check user %d: %v", domain.ErrStorageUnavailable, userID, err)
	}
	return allowed, nil
}

// Add puts user on the allow-list
func (r *AllowListRepo) Add(ctx context.Context, userID int64) error {
	query := `
		INSERT INTO allowed_users (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("%w: add user %d: %v", domain.ErrStorageUnavailable, userID, err)
	}
	return nil
}

// Remove takes user off the allow-list
func (r *AllowListRepo) Remove(ctx context.Context, userID int64) error {
	query := `DELETE FROM allowed_users WHERE user_id = $1`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("%w: remove user %d: %v", domain.ErrStorageUnavailable, userID, err)
	}
	return nil
}
