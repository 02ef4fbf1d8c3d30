package domain

import "fmt"

// User is the sender of an inbound update
type User struct {
	ID       int64
	Username string
}

// Handle returns @username, or the numeric id when the user has none
func (u User) Handle() string {
	if u.Username != "" {
		return "@" + u.Username
	}
	return fmt.Sprintf("id%d", u.ID)
}

// Language is a supported locale tag
type Language string

const (
	LangRU Language = "ru"
	LangEN Language = "en"
)

// Session holds a user's progress through the quest.
// Sessions live in memory only and are dropped on completion.
type Session struct {
	UserID   int64
	Stage    Stage
	Language Language
	Attempts int // wrong answers in the current text task
	Photos   int // accepted photos in the current photo task
}

// Enter moves the session to stage and resets the per-stage counters
func (s *Session) Enter(stage Stage) {
	s.Stage = stage
	s.Attempts = 0
	s.Photos = 0
}

// Clear drops all progress; a cleared session is removed from its store
func (s *Session) Clear() {
	*s = Session{UserID: s.UserID}
}

// Cleared reports whether the session carries no state worth keeping
func (s *Session) Cleared() bool {
	return s.Stage == StageNone && s.Language == ""
}

// MessageRef points at a message already delivered to the bot
type MessageRef struct {
	ChatID    int64
	MessageID int
}
