package service

import (
	"fmt"

	"cncbot/internal/domain"
	"cncbot/internal/repository"

	"go.uber.org/zap"
)

// BroadcastPrefix precedes every broadcast message
const BroadcastPrefix = "📢 Сообщение от администрации:\n\n"

// Sender delivers one message to one recipient
type Sender interface {
	Send(userID int64, text string) error
}

// BroadcastService fans a message out to every registered user
type BroadcastService struct {
	userRepo repository.UserRepository
	sender   Sender
	logger   *zap.Logger
}

// NewBroadcastService creates a new broadcast service
func NewBroadcastService(userRepo repository.UserRepository, sender Sender, logger *zap.Logger) *BroadcastService {
	return &BroadcastService{
		userRepo: userRepo,
		sender:   sender,
		logger:   logger,
	}
}

// Send delivers the text to a snapshot of the user directory. Each
// recipient gets exactly one attempt; per-recipient failures are counted
// and never abort the loop. Registrations that land mid-loop are not
// included.
func (s *BroadcastService) Send(text string) (domain.BroadcastResult, error) {
	ids, err := s.userRepo.All()
	if err != nil {
		return domain.BroadcastResult{}, fmt.Errorf("failed to read user directory: %w", err)
	}

	result := domain.BroadcastResult{Attempted: len(ids)}
	for _, id := range ids {
		if err := s.sender.Send(id, BroadcastPrefix+text); err != nil {
			s.logger.Error("Failed to deliver broadcast message",
				zap.Int64("user_id", id),
				zap.Error(err),
			)
			result.Failed++
			continue
		}
		result.Succeeded++
	}

	s.logger.Info("Broadcast completed",
		zap.Int("attempted", result.Attempted),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}
