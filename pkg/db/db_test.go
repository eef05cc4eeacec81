package db

import (
	"path/filepath"
	"testing"
	"time"
)

func TestInitAndMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	d, err := Init(path)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer d.Close()

	// All tables must exist after migration.
	for _, table := range []string{"persistent_state", "camera_paths", "shot_history"} {
		var name string
		err := d.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}

	// Init is idempotent.
	d2, err := Init(path)
	if err != nil {
		t.Fatalf("second Init: %v", err)
	}
	d2.Close()
}

func TestPruneShotHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	d, err := Init(path)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer d.Close()

	old := time.Now().Add(-48 * time.Hour).UTC().Format("2006-01-02 15:04:05")
	if _, err := d.Exec(
		"INSERT INTO shot_history (shot_name, category, duration_s, started_at) VALUES (?, ?, ?, ?)",
		"Wing Left", "external", 8.5, old); err != nil {
		t.Fatalf("insert old: %v", err)
	}
	if _, err := d.Exec(
		"INSERT INTO shot_history (shot_name, category, duration_s) VALUES (?, ?, ?)",
		"Pilot View", "cockpit", 6.0); err != nil {
		t.Fatalf("insert fresh: %v", err)
	}

	if err := d.PruneShotHistory(24 * time.Hour); err != nil {
		t.Fatalf("PruneShotHistory: %v", err)
	}

	var count int
	if err := d.QueryRow("SELECT count(*) FROM shot_history").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("after prune count = %d, want 1", count)
	}
}
