package logging

import "log/slog"

// EnableTrace gates per-frame trace logs. The frame loop runs at 20 Hz,
// so these stay off unless someone is debugging camera motion.
var EnableTrace = false

// Trace logs at DEBUG level when tracing is enabled.
func Trace(logger *slog.Logger, msg string, args ...any) {
	if EnableTrace {
		logger.Debug(msg, args...)
	}
}

// TraceDefault logs to the default logger when tracing is enabled.
func TraceDefault(msg string, args ...any) {
	if EnableTrace {
		slog.Debug(msg, args...)
	}
}
