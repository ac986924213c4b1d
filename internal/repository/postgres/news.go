package postgres

import (
	"database/sql"
)

// NewsRepo implements repository.NewsRepository. The bulletin is a
// single row; updates overwrite it wholesale.
type NewsRepo struct {
	db *sql.DB
}

// NewNewsRepo creates a new news repository
func NewNewsRepo(db *sql.DB) *NewsRepo {
	return &NewsRepo{db: db}
}

// Current returns the bulletin text, empty when never published
func (r *NewsRepo) Current() (string, error) {
	var body string
	query := `SELECT body FROM news WHERE id = 1`
	err := r.db.QueryRow(query).Scan(&body)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return body, nil
}

// Update replaces the bulletin
func (r *NewsRepo) Update(text string) error {
	query := `
		INSERT INTO news (id, body, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id)
		DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()
	`
	_, err := r.db.Exec(query, text)
	return err
}
