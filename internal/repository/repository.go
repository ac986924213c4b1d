package repository

import (
	"cncbot/internal/domain"
)

// UserRepository is the durable user directory
type UserRepository interface {
	// Add registers a user; it is a no-op when the id is already present
	Add(rec domain.UserRecord) error
	// All returns a snapshot of every registered user id
	All() ([]int64, error)
	// Get returns the record for an id, or nil when absent
	Get(userID int64) (*domain.UserRecord, error)
}

// ReportRepository is the append-only anonymous report sink
type ReportRepository interface {
	Save(userID int64, message string) error
}

// NewsRepository holds the single current news bulletin
type NewsRepository interface {
	// Current returns the bulletin text, or empty string when none was
	// ever published
	Current() (string, error)
	// Update overwrites the bulletin wholesale
	Update(text string) error
}
