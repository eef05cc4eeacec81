package logging

import (
	"strings"
	"sync"
)

// GlobalLogCapture holds the most recent server log line for the
// /api/log/latest endpoint.
var GlobalLogCapture = &LogCaptureWriter{}

// LogCaptureWriter is an io.Writer that remembers the last line written.
type LogCaptureWriter struct {
	mu   sync.RWMutex
	last string
}

func (w *LogCaptureWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	w.last = strings.TrimRight(string(p), "\n")
	w.mu.Unlock()
	return len(p), nil
}

// GetLastLine returns the most recently captured log line.
func (w *LogCaptureWriter) GetLastLine() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.last
}
