package cache

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db  *sql.DB
	ttl time.Duration
}

// NewSQLiteStore opens or creates a SQLite database at dbPath and initializes
// the schema. Parent directories are created if they do not exist. ttl is the
// lifetime applied to entries stored without an explicit expiry.
func NewSQLiteStore(dbPath string, ttl time.Duration) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db, ttl: ttl}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS answers (
		cache_key TEXT PRIMARY KEY,
		fingerprint TEXT NOT NULL,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		model TEXT,
		created_at TIMESTAMP NOT NULL,
		expires_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_answers_fingerprint ON answers(fingerprint);
	CREATE INDEX IF NOT EXISTS idx_answers_expires_at ON answers(expires_at);
	`
	_, err := db.Exec(schema)
	return err
}

// Get returns the unexpired entry for key, or (nil, nil) on a miss.
func (s *SQLiteStore) Get(ctx context.Context, key string) (*Entry, error) {
	return s.getWhere(ctx, "cache_key = ?", key)
}

// GetByFingerprint returns the newest unexpired entry with the given content
// fingerprint, or (nil, nil) on a miss.
func (s *SQLiteStore) GetByFingerprint(ctx context.Context, fingerprint string) (*Entry, error) {
	return s.getWhere(ctx, "fingerprint = ?", fingerprint)
}

func (s *SQLiteStore) getWhere(ctx context.Context, where string, arg string) (*Entry, error) {
	var entry Entry
	err := s.db.QueryRowContext(ctx,
		`SELECT cache_key, fingerprint, question, answer, model, created_at, expires_at
		 FROM answers WHERE `+where+` AND expires_at > ?
		 ORDER BY created_at DESC LIMIT 1`,
		arg, time.Now(),
	).Scan(&entry.Key, &entry.Fingerprint, &entry.Question, &entry.Answer,
		&entry.Model, &entry.CreatedAt, &entry.ExpiresAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Put stores an entry, replacing any existing entry with the same key.
// A zero ExpiresAt gets the store's default TTL.
func (s *SQLiteStore) Put(ctx context.Context, entry *Entry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if entry.ExpiresAt.IsZero() {
		entry.ExpiresAt = entry.CreatedAt.Add(s.ttl)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO answers
		 (cache_key, fingerprint, question, answer, model, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.Key, entry.Fingerprint, entry.Question, entry.Answer,
		entry.Model, entry.CreatedAt, entry.ExpiresAt,
	)
	return err
}

// Purge deletes expired entries and returns how many were removed.
func (s *SQLiteStore) Purge(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM answers WHERE expires_at <= ?`, time.Now())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Count returns the number of stored entries, expired included.
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM answers`).Scan(&count)
	return count, err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
