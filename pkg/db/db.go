// Package db owns the SQLite connection and schema.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register driver
)

// DB wraps the sql.DB connection.
type DB struct {
	*sql.DB
}

// Init opens (or creates) the database at path and runs migrations.
func Init(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db dir: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	// WAL plus a generous busy timeout; writes come from both the frame
	// loop and HTTP handlers.
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=30000;",
	} {
		if _, err := conn.Exec(pragma); err != nil {
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	// A single connection sidesteps SQLITE_BUSY on concurrent writers.
	conn.SetMaxOpenConns(1)

	d := &DB{conn}
	if err := d.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return d, nil
}

// PruneShotHistory deletes shot log rows older than the given retention.
func (d *DB) PruneShotHistory(olderThan time.Duration) error {
	// Matches SQLite's CURRENT_TIMESTAMP format (YYYY-MM-DD HH:MM:SS, UTC).
	deadline := time.Now().Add(-olderThan).UTC().Format("2006-01-02 15:04:05")
	_, err := d.Exec("DELETE FROM shot_history WHERE started_at < ?", deadline)
	return err
}

func (d *DB) migrate() error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS persistent_state (
			key TEXT PRIMARY KEY,
			value TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS camera_paths (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			loop BOOLEAN DEFAULT 0,
			keyframes TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS shot_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			shot_name TEXT NOT NULL,
			category TEXT NOT NULL,
			duration_s REAL,
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
	}

	for _, q := range schema {
		if _, err := d.Exec(q); err != nil {
			return fmt.Errorf("exec error: %w query: %s", err, q)
		}
	}
	return nil
}
