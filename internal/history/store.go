package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"perfcmp/internal/compare"
)

// Entry is one recorded comparison run.
type Entry struct {
	ID        int64              `json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	Results   compare.Comparison `json:"results"`
}

// Store records completed comparison runs.
type Store interface {
	Close() error
	Append(c compare.Comparison) error
	Recent(limit int) ([]Entry, error)
}

// SQLiteStore implements Store on a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path and
// applies migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		results TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(query)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Append records one comparison run.
func (s *SQLiteStore) Append(c compare.Comparison) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	_, err = s.db.Exec(`INSERT INTO runs (created_at, results) VALUES (?, ?)`, time.Now(), string(data))
	return err
}

// Recent returns the most recent runs, newest first.
func (s *SQLiteStore) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`SELECT id, created_at, results FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var raw string
		if err := rows.Scan(&e.ID, &e.CreatedAt, &raw); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(raw), &e.Results); err != nil {
			return nil, fmt.Errorf("failed to unmarshal run %d: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
