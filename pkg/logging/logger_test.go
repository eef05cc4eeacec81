package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cinecam/pkg/config"
)

func TestInit(t *testing.T) {
	tempDir := t.TempDir()
	serverLog := filepath.Join(tempDir, "server.log")
	requestLog := filepath.Join(tempDir, "requests.log")

	cfg := &config.LogConfig{
		Server: config.LogSettings{
			Path:  serverLog,
			Level: "DEBUG",
		},
		Requests: config.LogSettings{
			Path:  requestLog,
			Level: "INFO",
		},
	}

	cleanup, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer cleanup()

	if _, err := os.Stat(serverLog); os.IsNotExist(err) {
		t.Error("Server log file not created")
	}
	if _, err := os.Stat(requestLog); os.IsNotExist(err) {
		t.Error("Request log file not created")
	}

	if RequestLogger == nil {
		t.Error("RequestLogger was not initialized")
	}

	// INFO logs reach the capture writer for the status API.
	slog.Info("shot started", "shot", "Wing Left")
	if got := GlobalLogCapture.GetLastLine(); !strings.Contains(got, "shot started") {
		t.Errorf("capture writer missed log line, got %q", got)
	}
}

func TestRotateKeepsPreviousRun(t *testing.T) {
	tempDir := t.TempDir()
	p := filepath.Join(tempDir, "server.log")
	if err := os.WriteFile(p, []byte("old run\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	rotate(p)

	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Error("current log should have been rotated away")
	}
	data, err := os.ReadFile(p + ".old")
	if err != nil {
		t.Fatalf("rotated file missing: %v", err)
	}
	if string(data) != "old run\n" {
		t.Errorf("rotated content = %q", data)
	}
}
