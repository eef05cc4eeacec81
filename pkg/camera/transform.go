package camera

import (
	"math"

	"cinecam/pkg/sim"
)

const (
	degToRad = math.Pi / 180.0
	// minGroundClearance is the minimum camera height above terrain
	// for external shots, meters.
	minGroundClearance = 3.0
	feetToMeters       = 0.3048
)

// Offset is a body-relative position: X right, Y up, Z aft, meters.
type Offset struct {
	X, Y, Z float64
}

// Length returns the Euclidean length of the offset.
func (o Offset) Length() float64 {
	return math.Sqrt(o.X*o.X + o.Y*o.Y + o.Z*o.Z)
}

// HeadingToWorld rotates a body offset into the world frame using only
// the aircraft heading. Cockpit shots use this: they ride rigidly with
// the aircraft and must not swing independently under pitch or roll.
func HeadingToWorld(o Offset, t sim.Telemetry) (x, y, z float64) {
	rad := t.Heading * degToRad
	cosH := math.Cos(rad)
	sinH := math.Sin(rad)
	x = t.LocalX + o.X*cosH - o.Z*sinH
	y = t.LocalY + o.Y
	z = t.LocalZ + o.X*sinH + o.Z*cosH
	return x, y, z
}

// AttitudeToWorld rotates a body offset into the world frame under the
// full aircraft attitude: heading about the vertical axis, then pitch
// about the lateral axis, then roll about the longitudinal axis.
// External shots use this so they stay glued to the airframe in turns.
func AttitudeToWorld(o Offset, t sim.Telemetry) (x, y, z float64) {
	rollRad := t.Roll * degToRad
	pitchRad := t.Pitch * degToRad
	headRad := t.Heading * degToRad

	// Roll about the longitudinal (Z) axis.
	cosR, sinR := math.Cos(rollRad), math.Sin(rollRad)
	x1 := o.X*cosR + o.Y*sinR
	y1 := o.Y*cosR - o.X*sinR
	z1 := o.Z

	// Pitch about the lateral (X) axis.
	cosP, sinP := math.Cos(pitchRad), math.Sin(pitchRad)
	y2 := y1*cosP - z1*sinP
	z2 := z1*cosP + y1*sinP

	// Heading about the vertical (Y) axis.
	cosH, sinH := math.Cos(headRad), math.Sin(headRad)
	x3 := x1*cosH - z2*sinH
	z3 := x1*sinH + z2*cosH

	return t.LocalX + x3, t.LocalY + y2, t.LocalZ + z3
}

// TerrainY estimates the terrain height (local Y, meters) under the
// aircraft. Prefers the AGL reading; without one it assumes the
// aircraft sits no lower than its own height above ground, which errs
// on the safe (high) side.
func TerrainY(t sim.Telemetry, d Dimensions) float64 {
	if t.AltitudeAGL > 0 {
		return t.LocalY - t.AltitudeAGL*feetToMeters
	}
	return t.LocalY - d.Height
}

// ClampGround raises camY to the minimum clearance above terrain. A
// position already above the floor is returned unchanged.
func ClampGround(camY, terrainY float64) float64 {
	floor := terrainY + minGroundClearance
	if camY < floor {
		return floor
	}
	return camY
}

// ClampVisibility scales the camera offset outward, preserving its
// direction, until it is at least minDist from the aircraft center.
func ClampVisibility(camX, camY, camZ float64, t sim.Telemetry, minDist float64) (x, y, z float64) {
	dx := camX - t.LocalX
	dy := camY - t.LocalY
	dz := camZ - t.LocalZ
	dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if dist >= minDist || dist == 0 {
		return camX, camY, camZ
	}
	f := minDist / dist
	return t.LocalX + dx*f, t.LocalY + dy*f, t.LocalZ + dz*f
}
