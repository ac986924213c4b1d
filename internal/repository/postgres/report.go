package postgres

import (
	"database/sql"
)

// ReportRepo implements repository.ReportRepository
type ReportRepo struct {
	db *sql.DB
}

// NewReportRepo creates a new report repository
func NewReportRepo(db *sql.DB) *ReportRepo {
	return &ReportRepo{db: db}
}

// Save appends one anonymous report
func (r *ReportRepo) Save(userID int64, message string) error {
	query := `
		INSERT INTO reports (user_id, message, created_at)
		VALUES ($1, $2, NOW())
	`
	_, err := r.db.Exec(query, userID, message)
	return err
}
