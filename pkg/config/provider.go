package config

import (
	"context"
	"strconv"
	"time"

	"cinecam/pkg/store"
)

// Provider is the merged view of configuration: persistent overrides
// from the state store layered over the static YAML config.
type Provider interface {
	// General
	SimProvider(ctx context.Context) string

	// Camera
	ActivationDelay(ctx context.Context) time.Duration
	AutoAltitudeFt(ctx context.Context) float64
	ShotMinDuration(ctx context.Context) time.Duration
	ShotMaxDuration(ctx context.Context) time.Duration
	DriftStyle(ctx context.Context) string
	TransitionStyle(ctx context.Context) string
	TransitionTime(ctx context.Context) time.Duration

	// Mock Sim
	MockStartLat(ctx context.Context) float64
	MockStartLon(ctx context.Context) float64
	MockStartAlt(ctx context.Context) float64
	MockStartHeading(ctx context.Context) float64
	MockDurationParked(ctx context.Context) time.Duration
	MockDurationTaxi(ctx context.Context) time.Duration

	// Raw access for components that need the full static config.
	AppConfig() *Config
}

// UnifiedProvider implements Provider over a Config and an optional
// state store. A nil store means no runtime overrides.
type UnifiedProvider struct {
	base  *Config
	store store.StateStore
}

func NewProvider(base *Config, st store.StateStore) *UnifiedProvider {
	return &UnifiedProvider{base: base, store: st}
}

func (p *UnifiedProvider) AppConfig() *Config { return p.base }

func (p *UnifiedProvider) SimProvider(ctx context.Context) string {
	fallback := p.base.Sim.Provider
	if fallback == "" {
		fallback = "mock"
	}
	return p.getString(ctx, KeySimSource, fallback)
}

func (p *UnifiedProvider) ActivationDelay(ctx context.Context) time.Duration {
	return p.getDuration(ctx, KeyActivationDelay, time.Duration(p.base.Camera.ActivationDelay))
}

func (p *UnifiedProvider) AutoAltitudeFt(ctx context.Context) float64 {
	return p.getFloat64(ctx, KeyAutoAltitudeFt, p.base.Camera.AutoAltitudeFt)
}

func (p *UnifiedProvider) ShotMinDuration(ctx context.Context) time.Duration {
	return p.getDuration(ctx, KeyShotMinDuration, time.Duration(p.base.Camera.ShotMinDuration))
}

func (p *UnifiedProvider) ShotMaxDuration(ctx context.Context) time.Duration {
	return p.getDuration(ctx, KeyShotMaxDuration, time.Duration(p.base.Camera.ShotMaxDuration))
}

func (p *UnifiedProvider) DriftStyle(ctx context.Context) string {
	return p.getString(ctx, KeyDriftStyle, p.base.Camera.DriftStyle)
}

func (p *UnifiedProvider) TransitionStyle(ctx context.Context) string {
	return p.getString(ctx, KeyTransitionStyle, p.base.Camera.TransitionStyle)
}

func (p *UnifiedProvider) TransitionTime(ctx context.Context) time.Duration {
	return p.getDuration(ctx, KeyTransitionTime, time.Duration(p.base.Camera.TransitionTime))
}

func (p *UnifiedProvider) MockStartLat(ctx context.Context) float64 {
	return p.getFloat64(ctx, KeyMockLat, p.base.Sim.Mock.StartLat)
}

func (p *UnifiedProvider) MockStartLon(ctx context.Context) float64 {
	return p.getFloat64(ctx, KeyMockLon, p.base.Sim.Mock.StartLon)
}

func (p *UnifiedProvider) MockStartAlt(ctx context.Context) float64 {
	return p.getFloat64(ctx, KeyMockAlt, p.base.Sim.Mock.StartAlt)
}

func (p *UnifiedProvider) MockStartHeading(ctx context.Context) float64 {
	return p.getFloat64(ctx, KeyMockHeading, p.base.Sim.Mock.StartHeading)
}

func (p *UnifiedProvider) MockDurationParked(ctx context.Context) time.Duration {
	return p.getDuration(ctx, KeyMockDurParked, time.Duration(p.base.Sim.Mock.DurationParked))
}

func (p *UnifiedProvider) MockDurationTaxi(ctx context.Context) time.Duration {
	return p.getDuration(ctx, KeyMockDurTaxi, time.Duration(p.base.Sim.Mock.DurationTaxi))
}

// override fetches a non-empty stored value for key, if any.
func (p *UnifiedProvider) override(ctx context.Context, key string) (string, bool) {
	if p.store == nil {
		return "", false
	}
	val, ok := p.store.GetState(ctx, key)
	return val, ok && val != ""
}

func (p *UnifiedProvider) getString(ctx context.Context, key, fallback string) string {
	if val, ok := p.override(ctx, key); ok {
		return val
	}
	return fallback
}

// Unparsable overrides fall through to the fallback rather than erroring;
// the write path validates, so a bad value here is stale or hand-edited.

func (p *UnifiedProvider) getFloat64(ctx context.Context, key string, fallback float64) float64 {
	if val, ok := p.override(ctx, key); ok {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}

func (p *UnifiedProvider) getDuration(ctx context.Context, key string, fallback time.Duration) time.Duration {
	if val, ok := p.override(ctx, key); ok {
		if dur, err := ParseDuration(val); err == nil {
			return dur
		}
	}
	return fallback
}
