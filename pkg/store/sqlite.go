package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cinecam/pkg/camera"
	"cinecam/pkg/db"
)

// Store composes all sub-interfaces for full store access.
// Consumers should depend on specific sub-interfaces when possible.
type Store interface {
	StateStore
	PathStore
	ShotLogStore

	// Close closes the store connection.
	Close() error
}

// SQLiteStore implements Store.
type SQLiteStore struct {
	db *db.DB
}

// NewSQLiteStore creates a new store.
func NewSQLiteStore(db *db.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// --- State ---

func (s *SQLiteStore) GetState(ctx context.Context, key string) (string, bool) {
	var val string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM persistent_state WHERE key = ?", key).Scan(&val)
	if err != nil {
		return "", false
	}
	return val, true
}

func (s *SQLiteStore) SetState(ctx context.Context, key, val string) error {
	query := `INSERT OR REPLACE INTO persistent_state (key, value, created_at) VALUES (?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query, key, val, time.Now())
	return err
}

func (s *SQLiteStore) DeleteState(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM persistent_state WHERE key = ?", key)
	return err
}

// --- Paths ---

func (s *SQLiteStore) ListPaths(ctx context.Context) ([]*camera.Path, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, loop, keyframes FROM camera_paths ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []*camera.Path
	for rows.Next() {
		p, err := scanPath(rows)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

func (s *SQLiteStore) GetPath(ctx context.Context, id string) (*camera.Path, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, name, loop, keyframes FROM camera_paths WHERE id = ?", id)
	p, err := scanPath(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // Not found
	}
	return p, err
}

// SavePath inserts or updates a path. An empty ID gets a fresh UUID
// assigned, which the caller can read back from p.
func (s *SQLiteStore) SavePath(ctx context.Context, p *camera.Path) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Normalize()

	kf, err := json.Marshal(p.Keyframes)
	if err != nil {
		return fmt.Errorf("failed to marshal keyframes: %w", err)
	}

	query := `INSERT INTO camera_paths (id, name, loop, keyframes, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?)
			  ON CONFLICT(id) DO UPDATE SET
			  name=excluded.name,
			  loop=excluded.loop,
			  keyframes=excluded.keyframes,
			  updated_at=excluded.updated_at`

	now := time.Now()
	_, err = s.db.ExecContext(ctx, query, p.ID, p.Name, p.Loop, string(kf), now, now)
	return err
}

func (s *SQLiteStore) DeletePath(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM camera_paths WHERE id = ?", id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPath(row rowScanner) (*camera.Path, error) {
	var p camera.Path
	var kfJSON string
	if err := row.Scan(&p.ID, &p.Name, &p.Loop, &kfJSON); err != nil {
		return nil, err
	}
	if kfJSON != "" {
		if err := json.Unmarshal([]byte(kfJSON), &p.Keyframes); err != nil {
			return nil, fmt.Errorf("corrupt keyframes for path %s: %w", p.ID, err)
		}
	}
	return &p, nil
}

// --- Shot log ---

func (s *SQLiteStore) LogShot(ctx context.Context, rec ShotRecord) error {
	startedAt := rec.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now()
	}
	query := `INSERT INTO shot_history (shot_name, category, duration_s, started_at) VALUES (?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query, rec.ShotName, rec.Category, rec.Duration, startedAt)
	return err
}

func (s *SQLiteStore) RecentShots(ctx context.Context, limit int) ([]ShotRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT shot_name, category, duration_s, started_at FROM shot_history ORDER BY started_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ShotRecord
	for rows.Next() {
		var r ShotRecord
		if err := rows.Scan(&r.ShotName, &r.Category, &r.Duration, &r.StartedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
