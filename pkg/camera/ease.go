package camera

import "math"

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// NormalizeAngle normalizes an angle difference to the range (-180, 180].
func NormalizeAngle(angleDeg float64) float64 {
	for angleDeg > 180 {
		angleDeg -= 360
	}
	for angleDeg <= -180 {
		angleDeg += 360
	}
	return angleDeg
}

// LerpAngle interpolates between two angles along the shortest arc,
// handling the wraparound at +/-180 degrees.
func LerpAngle(a, b, t float64) float64 {
	return a + NormalizeAngle(b-a)*t
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EaseInOutCubic is the standard cubic ease used for inter-shot transitions.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseInOutSine is a gentler ease used for keyframe path interpolation.
func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// SinusoidalDrift combines three sine waves at related frequencies to
// produce an organic oscillation in [0, 1]. All three waves are zero at
// t=0, so the value starts at the 0.5 midpoint. freq is in rad/s.
func SinusoidalDrift(t, freq float64) float64 {
	v := 0.5 + 0.5*math.Sin(t*freq) + 0.3*math.Sin(t*freq*0.7) + 0.2*math.Sin(t*freq*1.3)
	return Clamp(v, 0, 1)
}

// driftEaseFraction is the portion of a shot spent accelerating into
// motion under the ease-in-then-linear drift style.
const driftEaseFraction = 0.3

// EaseInLinearDrift maps normalized shot time u in [0,1] to drift
// progress in [0,1]. The first driftEaseFraction of the shot follows a
// cubic ease-in; from there the curve continues linearly at the ease
// curve's exit slope, so velocity is continuous at the boundary. The
// result is normalized to reach exactly 1 at u=1 and clamped so the
// full drift amplitude is never exceeded. Unlike the sinusoidal style
// the camera never slows down before the cut.
func EaseInLinearDrift(u float64) float64 {
	const r = driftEaseFraction
	u = Clamp(u, 0, 1)

	// Raw curve: r*(u/r)^3 for u<r, then slope 3 (the cubic's
	// derivative at u=r) up to 3-2r at u=1.
	var raw float64
	if u < r {
		s := u / r
		raw = r * s * s * s
	} else {
		raw = r + 3*(u-r)
	}
	return Clamp(raw/(3-2*r), 0, 1)
}
