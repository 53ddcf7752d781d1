package storage

import (
	"database/sql"
)

// PostgresStore keeps each record as a row in the `records` table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the records table if it does not exist yet.
func (s *PostgresStore) EnsureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS records (
        record_key TEXT PRIMARY KEY,
        record_value TEXT NOT NULL
    )`)
	return err
}

func (s *PostgresStore) Load(key string) ([]byte, error) {
	var value string
	err := s.db.QueryRow(`SELECT record_value FROM records WHERE record_key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (s *PostgresStore) Save(key string, data []byte) error {
	_, err := s.db.Exec(`INSERT INTO records (record_key, record_value) VALUES ($1, $2)
        ON CONFLICT (record_key) DO UPDATE SET record_value = EXCLUDED.record_value`,
		key, string(data))
	return err
}
