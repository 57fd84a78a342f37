// ABOUTME: SQLite-backed Backend storing values in a single kv table.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLite wraps the SQLite database connection.
type SQLite struct {
	db     *sql.DB
	dbPath string
}

var _ Backend = (*SQLite)(nil)

// OpenSQLite opens or creates a SQLite database at the given path.
func OpenSQLite(dbPath string) (*SQLite, error) {
	// Ensure parent directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &SQLite{db: db, dbPath: dbPath}

	if err := s.configurePragmas(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure pragmas: %w", err)
	}

	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	// The file exists only once the schema has been written.
	if err := os.Chmod(dbPath, 0600); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set database permissions: %w", err)
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLite) Path() string {
	return s.dbPath
}

// Get reads a value by key.
func (s *SQLite) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// Set inserts or replaces a value.
func (s *SQLite) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, key, value, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// configurePragmas sets up SQLite for a single-writer local database.
func (s *SQLite) configurePragmas() error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := s.db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}

// initSchema creates the kv table if needed.
func (s *SQLite) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := s.db.Exec(schema)
	return err
}
