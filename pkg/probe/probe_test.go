package probe

import (
	"context"
	"errors"
	"testing"
)

func TestRun(t *testing.T) {
	probes := []Probe{
		{
			Name: "Database",
			Check: func(ctx context.Context) error {
				return nil
			},
			Critical: true,
		},
		{
			Name: "Simulator",
			Check: func(ctx context.Context) error {
				return errors.New("not connected")
			},
			Critical: false,
		},
	}

	results := Run(context.Background(), probes)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Error != nil {
		t.Errorf("expected database probe to pass, got error: %v", results[0].Error)
	}
	if results[1].Error == nil {
		t.Error("expected simulator probe to fail, got nil")
	}
}

func TestRunHonorsContext(t *testing.T) {
	probes := []Probe{
		{
			Name: "Blocked",
			Check: func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			},
			Critical: true,
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results := Run(ctx, probes)

	if results[0].Error == nil {
		t.Error("expected blocked probe to fail once its context ended")
	}
}

func TestAnalyzeResults(t *testing.T) {
	tests := []struct {
		name    string
		results []Result
		wantErr bool
	}{
		{
			name: "all pass",
			results: []Result{
				{Probe: Probe{Name: "db", Critical: true}, Error: nil},
			},
			wantErr: false,
		},
		{
			name: "critical failure",
			results: []Result{
				{Probe: Probe{Name: "db", Critical: true}, Error: errors.New("fail")},
			},
			wantErr: true,
		},
		{
			name: "non-critical failure",
			results: []Result{
				{Probe: Probe{Name: "db", Critical: false}, Error: errors.New("fail")},
			},
			wantErr: false,
		},
		{
			name: "mixed failure",
			results: []Result{
				{Probe: Probe{Name: "db", Critical: false}, Error: errors.New("fail")},
				{Probe: Probe{Name: "sim", Critical: true}, Error: errors.New("fail")},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AnalyzeResults(tt.results)
			if (err != nil) != tt.wantErr {
				t.Errorf("AnalyzeResults() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
