package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"cinecam/pkg/camera"
	"cinecam/pkg/config"
	"cinecam/pkg/store"
)

// CameraHandler exposes director control and inspection endpoints.
type CameraHandler struct {
	director *camera.Director
	shotLog  store.ShotLogStore
	state    store.StateStore
}

// NewCameraHandler creates a new CameraHandler. shotLog and state may be nil.
func NewCameraHandler(d *camera.Director, shotLog store.ShotLogStore, state store.StateStore) *CameraHandler {
	return &CameraHandler{director: d, shotLog: shotLog, state: state}
}

// persistMode remembers the director mode across restarts.
func (h *CameraHandler) persistMode(ctx context.Context) {
	if h.state == nil {
		return
	}
	if err := h.state.SetState(ctx, config.KeyCameraMode, string(h.director.Snapshot().Mode)); err != nil {
		slog.Warn("Failed to persist camera mode", "error", err)
	}
}

// HandleStatus returns the director's current status snapshot.
func (h *CameraHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.director.Snapshot())
}

// ShotListResponse describes the generated catalog.
type ShotListResponse struct {
	Cockpit            []camera.Shot `json:"cockpit"`
	External           []camera.Shot `json:"external"`
	MinVisibleDistance float64       `json:"min_visible_distance"`
}

// HandleShots returns the generated shot catalog for the current aircraft.
func (h *CameraHandler) HandleShots(w http.ResponseWriter, r *http.Request) {
	cat := h.director.Catalog()
	writeJSON(w, ShotListResponse{
		Cockpit:            cat.Cockpit,
		External:           cat.External,
		MinVisibleDistance: cat.MinVisibleDistance,
	})
}

// HandleHistory returns recently played shots from the shot log.
func (h *CameraHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	if h.shotLog == nil {
		writeJSON(w, []store.ShotRecord{})
		return
	}

	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}

	records, err := h.shotLog.RecentShots(r.Context(), limit)
	if err != nil {
		slog.Error("Failed to read shot history", "error", err)
		http.Error(w, "failed to read shot history", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []store.ShotRecord{}
	}
	writeJSON(w, records)
}

// HandleStart switches the director to manual mode.
func (h *CameraHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	h.director.Start()
	h.persistMode(r.Context())
	slog.Info("Camera started via API")
	writeJSON(w, h.director.Snapshot())
}

// HandleStop turns the director off.
func (h *CameraHandler) HandleStop(w http.ResponseWriter, r *http.Request) {
	h.director.Stop()
	h.persistMode(r.Context())
	slog.Info("Camera stopped via API")
	writeJSON(w, h.director.Snapshot())
}

// AutoRequest toggles auto mode.
type AutoRequest struct {
	Enabled bool `json:"enabled"`
}

// HandleAuto enables or disables auto mode.
func (h *CameraHandler) HandleAuto(w http.ResponseWriter, r *http.Request) {
	var req AutoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.director.SetAuto(req.Enabled)
	h.persistMode(r.Context())
	slog.Info("Camera auto mode changed via API", "enabled", req.Enabled)
	writeJSON(w, h.director.Snapshot())
}

// SelectShotRequest forces a specific shot from the catalog.
type SelectShotRequest struct {
	Category string `json:"category"`
	Index    int    `json:"index"`
}

// HandleSelectShot forces the director onto a named catalog entry.
func (h *CameraHandler) HandleSelectShot(w http.ResponseWriter, r *http.Request) {
	var req SelectShotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	cat := camera.Category(req.Category)
	if cat != camera.CategoryCockpit && cat != camera.CategoryExternal {
		http.Error(w, "unknown category", http.StatusBadRequest)
		return
	}

	if !h.director.SelectShot(cat, req.Index) {
		http.Error(w, "shot index out of range", http.StatusBadRequest)
		return
	}
	writeJSON(w, h.director.Snapshot())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
