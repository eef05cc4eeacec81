// Package sim provides simulator client interfaces and types.
package sim

import (
	"context"
	"errors"
)

var (
	// ErrNotConnected is returned when a client action requires a connection.
	ErrNotConnected = errors.New("simulator not connected")
)

// Client defines the interface for simulator interaction.
type Client interface {
	// GetTelemetry returns the current state of the aircraft.
	GetTelemetry(ctx context.Context) (Telemetry, error)
	// GetGeometry returns the measured aircraft geometry.
	// Fields the simulator cannot supply are zero.
	GetGeometry(ctx context.Context) (Geometry, error)
	// GetPointer returns the current pointer position in screen coordinates.
	GetPointer(ctx context.Context) (x, y int, err error)
	// GetState returns the current simulator connection/activity state.
	GetState() State
	// Close cleans up resources associated with the client.
	Close() error
}

// Telemetry represents a snapshot of aircraft state.
// Positions use the simulator's local frame: X east, Y up, Z south,
// all in meters. Angles are degrees.
type Telemetry struct {
	LocalX float64
	LocalY float64
	LocalZ float64

	Latitude  float64 // Degrees
	Longitude float64 // Degrees

	Pitch   float64 // Degrees, nose-up positive
	Roll    float64 // Degrees, right-wing-down positive
	Heading float64 // Degrees True

	GroundSpeed float64 // Meters per second
	AltitudeMSL float64 // Feet MSL
	AltitudeAGL float64 // Feet AGL, 0 when unavailable

	IsOnGround bool
	// Valid is false when the telemetry sources could not be read.
	// Consumers must treat an invalid snapshot as "do nothing safe".
	Valid bool
}

// Geometry holds raw aircraft size measurements as reported by the
// simulator. A zero field means the source is unavailable; consumers
// run each value through a fallback chain before use.
type Geometry struct {
	Wingspan float64 // Meters
	Length   float64 // Meters
	Height   float64 // Meters

	// Pilot eye point offset from the aircraft reference point, meters.
	EyeX float64
	EyeY float64
	EyeZ float64

	// Longitudinal CG limit positions, meters from the reference point.
	CGFwd float64
	CGAft float64

	// Vertical extents of the model, meters.
	MinVert float64
	MaxVert float64
}
