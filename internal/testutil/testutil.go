package testutil

import (
	"time"

	"cncbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user record
func NewTestUser(userID int64, displayName string) domain.UserRecord {
	return domain.UserRecord{
		ID:          userID,
		DisplayName: displayName,
		AddedAt:     time.Now(),
	}
}

// UserTurn creates a user-side dialogue turn
func UserTurn(text string) domain.Turn {
	return domain.Turn{Speaker: domain.SpeakerUser, Text: text}
}

// AssistantTurn creates an assistant-side dialogue turn
func AssistantTurn(text string) domain.Turn {
	return domain.Turn{Speaker: domain.SpeakerAssistant, Text: text}
}
