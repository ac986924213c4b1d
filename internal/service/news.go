package service

import (
	"fmt"
	"strings"

	"cncbot/internal/repository"
)

// NoNewsText is shown when no bulletin was ever published
const NoNewsText = "Новости отсутствуют."

// NewsService handles the single current news bulletin
type NewsService struct {
	newsRepo repository.NewsRepository
}

// NewNewsService creates a new news service
func NewNewsService(newsRepo repository.NewsRepository) *NewsService {
	return &NewsService{newsRepo: newsRepo}
}

// Current returns the bulletin text, or the placeholder when empty
func (s *NewsService) Current() (string, error) {
	text, err := s.newsRepo.Current()
	if err != nil {
		return "", fmt.Errorf("failed to read news: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return NoNewsText, nil
	}
	return text, nil
}

// Update overwrites the bulletin wholesale
func (s *NewsService) Update(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("news text cannot be empty")
	}
	if err := s.newsRepo.Update(text); err != nil {
		return fmt.Errorf("failed to update news: %w", err)
	}
	return nil
}
