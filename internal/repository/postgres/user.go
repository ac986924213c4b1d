package postgres

import (
	"database/sql"

	"cncbot/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Add registers a user if not already present
func (r *UserRepo) Add(rec domain.UserRecord) error {
	query := `
		INSERT INTO users (user_id, display_name, added_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, rec.ID, rec.DisplayName)
	return err
}

// All returns every registered user id
func (r *UserRepo) All() ([]int64, error) {
	query := `SELECT user_id FROM users ORDER BY added_at`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Get returns the record for a user id, nil when absent
func (r *UserRepo) Get(userID int64) (*domain.UserRecord, error) {
	var rec domain.UserRecord
	query := `SELECT user_id, display_name, added_at FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&rec.ID, &rec.DisplayName, &rec.AddedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
