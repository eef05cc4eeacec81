// Package probe runs startup checks before the server begins serving.
package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// checkTimeout bounds each individual check so a hung dependency
// cannot stall startup.
const checkTimeout = 5 * time.Second

// CheckFunc performs a single health check and returns nil on success.
type CheckFunc func(ctx context.Context) error

// Probe is one startup check.
type Probe struct {
	Name     string
	Check    CheckFunc
	Critical bool // a Critical failure prevents startup
}

// Result holds the outcome of a single probe.
type Result struct {
	Probe    Probe
	Error    error
	Duration time.Duration
}

func (r Result) ok() bool { return r.Error == nil }

// Run executes the probes in order and returns one Result per probe.
func Run(ctx context.Context, probes []Probe) []Result {
	results := make([]Result, 0, len(probes))
	for _, p := range probes {
		start := time.Now()
		checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := p.Check(checkCtx)
		cancel()
		results = append(results, Result{
			Probe:    p,
			Error:    err,
			Duration: time.Since(start),
		})
	}
	return results
}

// AnalyzeResults logs each result and returns the joined errors of all
// failed critical probes, or nil if startup can proceed.
func AnalyzeResults(results []Result) error {
	var critical []error

	slog.Info("Startup Checks Summary")
	for _, r := range results {
		line := fmt.Sprintf("[%s] %-20s (%v)", statusOf(r), r.Probe.Name, r.Duration.Round(time.Millisecond))
		if r.ok() {
			slog.Info(line)
			continue
		}
		slog.Error(line, "error", r.Error)
		if r.Probe.Critical {
			critical = append(critical, fmt.Errorf("%s: %w", r.Probe.Name, r.Error))
		}
	}

	return errors.Join(critical...)
}

func statusOf(r Result) string {
	if r.ok() {
		return "PASS"
	}
	return "FAIL"
}
