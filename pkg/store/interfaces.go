package store

import (
	"context"
	"time"

	"cinecam/pkg/camera"
)

// StateStore handles persistent application state.
type StateStore interface {
	GetState(ctx context.Context, key string) (string, bool)
	SetState(ctx context.Context, key, val string) error
	DeleteState(ctx context.Context, key string) error
}

// PathStore handles user-authored camera path persistence.
type PathStore interface {
	ListPaths(ctx context.Context) ([]*camera.Path, error)
	GetPath(ctx context.Context, id string) (*camera.Path, error)
	SavePath(ctx context.Context, p *camera.Path) error
	DeletePath(ctx context.Context, id string) error
}

// ShotRecord is one entry in the played-shot log.
type ShotRecord struct {
	ShotName  string    `json:"shot_name"`
	Category  string    `json:"category"`
	Duration  float64   `json:"duration_s"`
	StartedAt time.Time `json:"started_at"`
}

// ShotLogStore records which shots the director played.
type ShotLogStore interface {
	LogShot(ctx context.Context, rec ShotRecord) error
	RecentShots(ctx context.Context, limit int) ([]ShotRecord, error)
}
