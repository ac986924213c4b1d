package domain

import "time"

// UserRecord is one registered bot user
type UserRecord struct {
	ID          int64
	DisplayName string
	AddedAt     time.Time
}

// Report is one anonymous report entry
type Report struct {
	ID        int
	UserID    int64
	Message   string
	CreatedAt time.Time
}
