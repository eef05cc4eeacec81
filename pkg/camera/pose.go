// Package camera implements the cinematic camera director: a
// size-adaptive shot catalog, a selection policy with anti-repetition
// rules, a frame-driven state machine, and the interpolation and
// coordinate math that turns body-relative shots into world poses.
package camera

// Pose is a six-degrees-of-freedom camera placement plus zoom.
// Position is in the simulator's local frame (meters), angles are
// degrees.
type Pose struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       float64 `json:"z"`
	Pitch   float64 `json:"pitch"`
	Heading float64 `json:"heading"`
	Roll    float64 `json:"roll"`
	Zoom    float64 `json:"zoom"`
}

// baseFOV is the field of view at zoom 1.0, degrees.
const baseFOV = 60.0

// FOV returns the focal-length-equivalent field of view for the pose.
func (p Pose) FOV() float64 {
	if p.Zoom <= 0 {
		return baseFOV
	}
	return baseFOV / p.Zoom
}

// BlendPose interpolates between two poses with the given eased
// progress. Heading takes the shortest arc.
func BlendPose(from, to Pose, t float64) Pose {
	return Pose{
		X:       Lerp(from.X, to.X, t),
		Y:       Lerp(from.Y, to.Y, t),
		Z:       Lerp(from.Z, to.Z, t),
		Pitch:   Lerp(from.Pitch, to.Pitch, t),
		Heading: LerpAngle(from.Heading, to.Heading, t),
		Roll:    Lerp(from.Roll, to.Roll, t),
		Zoom:    Lerp(from.Zoom, to.Zoom, t),
	}
}
