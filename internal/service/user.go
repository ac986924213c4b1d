package service

import (
	"fmt"

	"cncbot/internal/domain"
	"cncbot/internal/repository"
)

// UserService handles user registration
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register adds the user to the directory; repeated calls are no-ops
func (s *UserService) Register(userID int64, displayName string) error {
	rec := domain.UserRecord{ID: userID, DisplayName: displayName}
	if err := s.userRepo.Add(rec); err != nil {
		return fmt.Errorf("failed to register user %d: %w", userID, err)
	}
	return nil
}
