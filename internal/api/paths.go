package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"cinecam/pkg/camera"
	"cinecam/pkg/store"
)

// PathsHandler manages stored camera paths and their playback.
type PathsHandler struct {
	store    store.PathStore
	director *camera.Director
}

// NewPathsHandler creates a new PathsHandler.
func NewPathsHandler(st store.PathStore, d *camera.Director) *PathsHandler {
	return &PathsHandler{store: st, director: d}
}

// HandleList returns all stored paths.
func (h *PathsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	paths, err := h.store.ListPaths(r.Context())
	if err != nil {
		slog.Error("Failed to list paths", "error", err)
		http.Error(w, "failed to list paths", http.StatusInternalServerError)
		return
	}
	if paths == nil {
		paths = []*camera.Path{}
	}
	writeJSON(w, paths)
}

// HandleGet returns a single path by ID.
func (h *PathsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.GetPath(r.Context(), r.PathValue("id"))
	if err != nil {
		slog.Error("Failed to load path", "error", err)
		http.Error(w, "failed to load path", http.StatusInternalServerError)
		return
	}
	if p == nil {
		http.Error(w, "path not found", http.StatusNotFound)
		return
	}
	writeJSON(w, p)
}

// HandleSave creates or updates a path. New paths get a server-assigned ID.
func (h *PathsHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	var p camera.Path
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if p.Name == "" {
		http.Error(w, "path name is required", http.StatusBadRequest)
		return
	}
	if len(p.Keyframes) == 0 {
		http.Error(w, "path needs at least one keyframe", http.StatusBadRequest)
		return
	}

	if err := h.store.SavePath(r.Context(), &p); err != nil {
		slog.Error("Failed to save path", "error", err)
		http.Error(w, "failed to save path", http.StatusInternalServerError)
		return
	}
	slog.Info("Camera path saved", "id", p.ID, "name", p.Name, "keyframes", len(p.Keyframes))
	writeJSON(w, &p)
}

// HandleDelete removes a path. Deleting the path currently playing
// stops its playback.
func (h *PathsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if h.director.Snapshot().PathID == id {
		h.director.SelectPath(nil)
	}

	if err := h.store.DeletePath(r.Context(), id); err != nil {
		slog.Error("Failed to delete path", "error", err)
		http.Error(w, "failed to delete path", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandlePlay starts playback of a stored path.
func (h *PathsHandler) HandlePlay(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.GetPath(r.Context(), r.PathValue("id"))
	if err != nil {
		slog.Error("Failed to load path", "error", err)
		http.Error(w, "failed to load path", http.StatusInternalServerError)
		return
	}
	if p == nil {
		http.Error(w, "path not found", http.StatusNotFound)
		return
	}

	h.director.Start()
	h.director.SelectPath(p)
	slog.Info("Camera path playback started", "id", p.ID, "name", p.Name)
	writeJSON(w, h.director.Snapshot())
}

// HandleStopPlayback clears the active path and returns the director to
// its shot catalog.
func (h *PathsHandler) HandleStopPlayback(w http.ResponseWriter, r *http.Request) {
	h.director.SelectPath(nil)
	writeJSON(w, h.director.Snapshot())
}
