package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"cinecam/pkg/logging"
	"cinecam/pkg/version"
)

// NewServer creates and configures the HTTP server.
// It accepts handlers for all API endpoints and a shutdownFunc for graceful shutdown.
func NewServer(addr string, tel *TelemetryHandler, cam *CameraHandler, cfg *ConfigHandler, paths *PathsHandler, stream *StreamHandler, shutdown func()) *http.Server {
	mux := http.NewServeMux()

	// Liveness
	mux.HandleFunc("GET /health", handleHealth)

	// Read-only state
	mux.HandleFunc("GET /api/telemetry", tel.handleTelemetry)
	mux.HandleFunc("GET /api/version", handleVersion)
	mux.HandleFunc("GET /api/log/latest", handleLatestLog)

	// Config (handles its own method dispatch for CORS preflight)
	mux.HandleFunc("/api/config", cfg.HandleConfig)

	// Director control
	mux.HandleFunc("GET /api/camera/status", cam.HandleStatus)
	mux.HandleFunc("GET /api/camera/shots", cam.HandleShots)
	mux.HandleFunc("GET /api/camera/history", cam.HandleHistory)
	mux.HandleFunc("POST /api/camera/start", cam.HandleStart)
	mux.HandleFunc("POST /api/camera/stop", cam.HandleStop)
	mux.HandleFunc("POST /api/camera/auto", cam.HandleAuto)
	mux.HandleFunc("POST /api/camera/select-shot", cam.HandleSelectShot)

	// Stored camera paths
	mux.HandleFunc("GET /api/paths", paths.HandleList)
	mux.HandleFunc("POST /api/paths", paths.HandleSave)
	mux.HandleFunc("GET /api/paths/{id}", paths.HandleGet)
	mux.HandleFunc("DELETE /api/paths/{id}", paths.HandleDelete)
	mux.HandleFunc("POST /api/paths/{id}/play", paths.HandlePlay)
	mux.HandleFunc("POST /api/paths/stop", paths.HandleStopPlayback)

	// Live pose stream
	if stream != nil {
		mux.HandleFunc("GET /api/camera/stream", stream.HandleStream)
	}

	mux.HandleFunc("POST /api/shutdown", func(w http.ResponseWriter, r *http.Request) {
		slog.Info("Graceful shutdown initiated via API")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("Shutting down...")); err != nil {
			slog.Error("Failed to write shutdown response", "error", err)
		}
		// Call shutdown in a goroutine to allow response to flush
		go func() {
			time.Sleep(100 * time.Millisecond)
			shutdown()
		}()
	})

	return &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		slog.Error("Failed to write health response", "error", err)
	}
}

func handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if _, err := fmt.Fprintf(w, `{"version": "%s"}`, version.Version); err != nil {
		slog.Error("Failed to write version response", "error", err)
	}
}

func handleLatestLog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(logging.GlobalLogCapture.GetLastLine())); err != nil {
		slog.Error("Failed to write log response", "error", err)
	}
}
