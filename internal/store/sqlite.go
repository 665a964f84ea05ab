package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	apperrors "confluence-journal/internal/errors"
)

// SQLiteDocumentStore implements DocumentStore on a sqlite key/value table,
// the same shape browsers use to back localStorage. One row per key holding
// the whole serialized document.
type SQLiteDocumentStore struct {
	db *sql.DB
}

// NewSQLiteDocumentStore opens (or creates) the database at dbPath.
func NewSQLiteDocumentStore(dbPath string) (*SQLiteDocumentStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, apperrors.NewStorageError("open", "", err)
	}

	// Single local user; one writer is plenty.
	db.SetMaxOpenConns(2)
	db.SetConnMaxLifetime(time.Hour)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, apperrors.NewStorageError("open", "", fmt.Errorf("initializing schema: %w", err))
	}

	return &SQLiteDocumentStore{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := db.Exec(schema)
	return err
}

// Load returns the document stored under key, or (nil, nil) when absent.
func (s *SQLiteDocumentStore) Load(key string) ([]byte, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM documents WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewStorageError("load", key, err)
	}
	return []byte(value), nil
}

// Save overwrites the document stored under key.
func (s *SQLiteDocumentStore) Save(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO documents (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(value))
	if err != nil {
		return apperrors.NewStorageError("save", key, err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteDocumentStore) Close() error {
	return s.db.Close()
}
