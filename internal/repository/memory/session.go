package memory

import (
	"context"
	"sync"

	"subquest/internal/domain"
)

type sessionEntry struct {
	mu      sync.Mutex
	session domain.Session
	removed bool
}

// SessionRepo implements repository.SessionRepository in process memory.
// Each user has its own lock, so updates for one user are serialized while
// different users proceed in parallel.
type SessionRepo struct {
	mu      sync.Mutex
	entries map[int64]*sessionEntry
}

// NewSessionRepo creates an empty session store
func NewSessionRepo() *SessionRepo {
	return &SessionRepo{entries: make(map[int64]*sessionEntry)}
}

func (r *SessionRepo) entry(userID int64) *sessionEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[userID]
	if !ok {
		e = &sessionEntry{session: domain.Session{UserID: userID}}
		r.entries[userID] = e
	}
	return e
}

// Get returns a copy of the user's session
func (r *SessionRepo) Get(ctx context.Context, userID int64) (domain.Session, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, false, err
	}

	r.mu.Lock()
	e, ok := r.entries[userID]
	r.mu.Unlock()
	if !ok {
		return domain.Session{}, false, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.removed || e.session.Cleared() {
		return domain.Session{}, false, nil
	}
	return e.session, true, nil
}

// Update runs fn under the user's lock
func (r *SessionRepo) Update(ctx context.Context, userID int64, fn func(s *domain.Session) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		e := r.entry(userID)
		e.mu.Lock()
		if e.removed {
			// deleted while we waited, pick up the fresh entry
			e.mu.Unlock()
			continue
		}

		session := e.session
		if err := fn(&session); err != nil {
			if e.session.Cleared() {
				r.drop(userID, e)
			}
			e.mu.Unlock()
			return err
		}

		if session.Cleared() {
			r.drop(userID, e)
		} else {
			e.session = session
		}
		e.mu.Unlock()
		return nil
	}
}

// Delete removes the user's session
func (r *SessionRepo) Delete(ctx context.Context, userID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	e, ok := r.entries[userID]
	r.mu.Unlock()
	if !ok {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.removed {
		r.drop(userID, e)
	}
	return nil
}

// Len returns the number of live sessions
func (r *SessionRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// drop must be called with e.mu held
func (r *SessionRepo) drop(userID int64, e *sessionEntry) {
	e.removed = true
	r.mu.Lock()
	if r.entries[userID] == e {
		delete(r.entries, userID)
	}
	r.mu.Unlock()
}
