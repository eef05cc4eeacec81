package camera

import (
	"math"
	"testing"

	"cinecam/pkg/sim"
)

func TestHeadingToWorld(t *testing.T) {
	tests := []struct {
		name                string
		offset              Offset
		tel                 sim.Telemetry
		wantX, wantY, wantZ float64
	}{
		{
			name:   "NoRotation",
			offset: Offset{X: 1, Y: 2, Z: 3},
			tel:    sim.Telemetry{LocalX: 10, LocalY: 20, LocalZ: 30},
			wantX:  11, wantY: 22, wantZ: 33,
		},
		{
			name:   "Heading90ForwardPointsEast",
			offset: Offset{Z: -10},
			tel:    sim.Telemetry{Heading: 90},
			wantX:  10, wantY: 0, wantZ: 0,
		},
		{
			name:   "Heading180Reverses",
			offset: Offset{X: 5, Z: -10},
			tel:    sim.Telemetry{Heading: 180},
			wantX:  -5, wantY: 0, wantZ: 10,
		},
		{
			name:   "PitchAndRollIgnored",
			offset: Offset{X: 2},
			tel:    sim.Telemetry{Pitch: 45, Roll: 90},
			wantX:  2, wantY: 0, wantZ: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, z := HeadingToWorld(tt.offset, tt.tel)
			if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 || math.Abs(z-tt.wantZ) > 1e-9 {
				t.Errorf("got (%v, %v, %v), want (%v, %v, %v)", x, y, z, tt.wantX, tt.wantY, tt.wantZ)
			}
		})
	}
}

func TestAttitudeToWorld(t *testing.T) {
	tests := []struct {
		name                string
		offset              Offset
		tel                 sim.Telemetry
		wantX, wantY, wantZ float64
	}{
		{
			name:   "ZeroAttitudeIsTranslation",
			offset: Offset{X: 1, Y: 2, Z: 3},
			tel:    sim.Telemetry{LocalX: -1, LocalY: -2, LocalZ: -3},
			wantX:  0, wantY: 0, wantZ: 0,
		},
		{
			name: "PitchUpLiftsForwardPoint",
			// A point ahead of the aircraft rises with nose-up pitch.
			offset: Offset{Z: -10},
			tel:    sim.Telemetry{Pitch: 90},
			wantX:  0, wantY: 10, wantZ: 0,
		},
		{
			name: "RollRightDropsRightWing",
			// A point on the right wing drops with right roll.
			offset: Offset{X: 10},
			tel:    sim.Telemetry{Roll: 90},
			wantX:  0, wantY: -10, wantZ: 0,
		},
		{
			name:   "HeadingMatchesPlanarTransform",
			offset: Offset{Z: -10},
			tel:    sim.Telemetry{Heading: 90},
			wantX:  10, wantY: 0, wantZ: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, z := AttitudeToWorld(tt.offset, tt.tel)
			if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 || math.Abs(z-tt.wantZ) > 1e-9 {
				t.Errorf("got (%v, %v, %v), want (%v, %v, %v)", x, y, z, tt.wantX, tt.wantY, tt.wantZ)
			}
		})
	}
}

func TestAttitudeToWorldPreservesLength(t *testing.T) {
	off := Offset{X: 3, Y: 4, Z: 12}
	tel := sim.Telemetry{Heading: 37, Pitch: -12, Roll: 23}
	x, y, z := AttitudeToWorld(off, tel)
	got := math.Sqrt(x*x + y*y + z*z)
	if math.Abs(got-off.Length()) > 1e-9 {
		t.Errorf("rotation changed offset length: %v != %v", got, off.Length())
	}
}

func TestClampGround(t *testing.T) {
	tests := []struct {
		name     string
		camY     float64
		terrainY float64
		want     float64
	}{
		{"BelowFloorRaised", 100, 100, 100 + minGroundClearance},
		{"ExactlyAtFloor", 103, 100, 103},
		{"AboveFloorUnchanged", 500, 100, 500},
		{"NeverLowered", 1000, 0, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampGround(tt.camY, tt.terrainY); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ClampGround(%v, %v) = %v, want %v", tt.camY, tt.terrainY, got, tt.want)
			}
		})
	}
}

func TestClampVisibility(t *testing.T) {
	tel := sim.Telemetry{LocalX: 100, LocalY: 200, LocalZ: 300}

	// Too close: pushed out to exactly the floor, direction preserved.
	x, y, z := ClampVisibility(103, 204, 300, tel, 50)
	dx, dy, dz := x-tel.LocalX, y-tel.LocalY, z-tel.LocalZ
	dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if math.Abs(dist-50) > 1e-9 {
		t.Errorf("clamped distance = %v, want exactly 50", dist)
	}
	// Original direction was (3, 4, 0) normalized.
	if math.Abs(dx/dist-0.6) > 1e-9 || math.Abs(dy/dist-0.8) > 1e-9 || math.Abs(dz) > 1e-9 {
		t.Errorf("direction not preserved: (%v, %v, %v)", dx/dist, dy/dist, dz/dist)
	}

	// Already beyond the floor: unchanged.
	x, y, z = ClampVisibility(200, 200, 300, tel, 50)
	if x != 200 || y != 200 || z != 300 {
		t.Errorf("far position modified: (%v, %v, %v)", x, y, z)
	}

	// Degenerate zero offset: left alone rather than divided by zero.
	x, y, z = ClampVisibility(100, 200, 300, tel, 50)
	if x != 100 || y != 200 || z != 300 {
		t.Errorf("zero offset modified: (%v, %v, %v)", x, y, z)
	}
}

func TestTerrainY(t *testing.T) {
	dims := StandardDimensions()

	// With an AGL reading, terrain sits AGL meters below the aircraft.
	tel := sim.Telemetry{LocalY: 1000, AltitudeAGL: 100 / 0.3048} // exactly 100 m
	if got := TerrainY(tel, dims); math.Abs(got-900) > 1e-9 {
		t.Errorf("TerrainY with AGL = %v, want 900", got)
	}

	// Without AGL, a conservative estimate from the aircraft height.
	tel = sim.Telemetry{LocalY: 1000}
	if got := TerrainY(tel, dims); math.Abs(got-(1000-dims.Height)) > 1e-9 {
		t.Errorf("TerrainY fallback = %v, want %v", got, 1000-dims.Height)
	}
}
