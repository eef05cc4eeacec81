package camera

import (
	"log/slog"
	"math"

	"cinecam/pkg/sim"
)

// Reference values for a standard medium airliner, used as the final
// fallback when no measurement source is plausible.
const (
	refWingspan = 35.0 // Meters
	refLength   = 37.5 // Meters
	refHeight   = 11.8 // Meters
	refEyeY     = 1.2  // Meters above reference point
	refEyeZ     = -15.0
)

// Dimensions are the resolved aircraft measurements the generator
// works from. Computed once per aircraft-load event; read-only after.
type Dimensions struct {
	Wingspan float64
	Length   float64
	Height   float64
	EyeX     float64
	EyeY     float64
	EyeZ     float64
}

// StandardDimensions returns the reference medium-body dimensions.
func StandardDimensions() Dimensions {
	return Dimensions{
		Wingspan: refWingspan,
		Length:   refLength,
		Height:   refHeight,
		EyeY:     refEyeY,
		EyeZ:     refEyeZ,
	}
}

// measurement is one step in a fallback chain: read a candidate value,
// check plausibility, optionally transform it.
type measurement struct {
	name  string
	read  func(g sim.Geometry) float64
	valid func(v float64) bool
}

// resolve walks a chain in priority order and returns the first
// plausible value, or the given fallback.
func resolve(chain []measurement, g sim.Geometry, fallback float64) float64 {
	for _, m := range chain {
		v := m.read(g)
		if m.valid(v) {
			return v
		}
		slog.Debug("dimension source implausible", "source", m.name, "value", v)
	}
	return fallback
}

func spanPlausible(v float64) bool   { return v >= 3 && v <= 120 }
func heightPlausible(v float64) bool { return v >= 1.5 && v <= 35 }

// ResolveDimensions derives aircraft dimensions from redundant
// measurement sources, falling back per field to derived estimates and
// finally to standard medium-body values. Every field is clamped to
// plausible bounds, so the result is always usable.
func ResolveDimensions(g sim.Geometry) Dimensions {
	wingspan := resolve([]measurement{
		{"wingspan", func(g sim.Geometry) float64 { return g.Wingspan }, spanPlausible},
		{"wingspan-from-length", func(g sim.Geometry) float64 { return g.Length * 0.93 }, spanPlausible},
	}, g, refWingspan)

	length := resolve([]measurement{
		{"length", func(g sim.Geometry) float64 { return g.Length }, spanPlausible},
		{"length-from-cg-limits", func(g sim.Geometry) float64 { return math.Abs(g.CGAft-g.CGFwd) * 10 }, spanPlausible},
		{"length-from-wingspan", func(g sim.Geometry) float64 { return g.Wingspan * 1.07 }, spanPlausible},
	}, g, refLength)

	height := resolve([]measurement{
		{"height", func(g sim.Geometry) float64 { return g.Height }, heightPlausible},
		{"height-from-extents", func(g sim.Geometry) float64 { return g.MaxVert - g.MinVert }, heightPlausible},
		{"height-from-wingspan", func(g sim.Geometry) float64 { return g.Wingspan * 0.32 }, heightPlausible},
	}, g, refHeight)

	d := Dimensions{
		Wingspan: wingspan,
		Length:   length,
		Height:   height,
		EyeX:     g.EyeX,
		EyeY:     g.EyeY,
		EyeZ:     g.EyeZ,
	}

	// Eye point: the Y offset is the only component with a hard
	// plausibility floor; a zero eye point means the source is absent.
	if d.EyeY < 0.3 {
		scale := length / refLength
		d.EyeX = 0
		d.EyeY = refEyeY * scale
		d.EyeZ = refEyeZ * scale
	}

	slog.Info("aircraft dimensions resolved",
		"wingspan", d.Wingspan, "length", d.Length, "height", d.Height,
		"eye_y", d.EyeY, "eye_z", d.EyeZ)
	return d
}

// SizeScale is the aircraft's size ratio against the reference
// wingspan, used to scale external shot placement and drift.
func (d Dimensions) SizeScale() float64 {
	return d.Wingspan / refWingspan
}

// CockpitScale is the sub-linear scale applied to cockpit offsets so
// small cockpits are not over-scaled.
func (d Dimensions) CockpitScale() float64 {
	return math.Sqrt(d.SizeScale())
}
