package repository

import (
	"context"

	"subquest/internal/domain"
)

// AllowListRepository is the durable set of users permitted to play.
// Add and Remove are idempotent.
type AllowListRepository interface {
	IsAllowed(ctx context.Context, userID int64) (bool, error)
	Add(ctx context.Context, userID int64) error
	Remove(ctx context.Context, userID int64) error
}

// Reloader is implemented by stores that cache their contents and can
// re-read them from the backing medium
type Reloader interface {
	Reload(ctx context.Context) error
}

// SessionRepository keeps per-user quest sessions.
//
// Update runs fn with exclusive access to the user's session. Changes are
// kept only when fn returns nil; a session left cleared is deleted.
type SessionRepository interface {
	Update(ctx context.Context, userID int64, fn func(s *domain.Session) error) error
	Delete(ctx context.Context, userID int64) error
}
