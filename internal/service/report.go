package service

import (
	"fmt"

	"cncbot/internal/repository"

	"go.uber.org/zap"
)

// ReportService handles anonymous report intake
type ReportService struct {
	reportRepo repository.ReportRepository
	logger     *zap.Logger
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepository, logger *zap.Logger) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// Submit persists one anonymous report
func (s *ReportService) Submit(userID int64, message string) error {
	if message == "" {
		return fmt.Errorf("report message cannot be empty")
	}

	if err := s.reportRepo.Save(userID, message); err != nil {
		s.logger.Error("Failed to save report",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return fmt.Errorf("failed to save report: %w", err)
	}

	s.logger.Info("Report saved", zap.Int64("user_id", userID))
	return nil
}
