package testutil

import (
	"subquest/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64) domain.User {
	return domain.User{
		ID:       userID,
		Username: "player",
	}
}

// NewTestPhoto creates a reference to a photo message sent by the user
func NewTestPhoto(userID int64, messageID int) domain.MessageRef {
	return domain.MessageRef{
		ChatID:    userID,
		MessageID: messageID,
	}
}
