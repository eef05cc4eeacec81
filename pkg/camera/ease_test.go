package camera

import (
	"math"
	"testing"
)

func TestLerpAngle(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"Identity", 45, 45, 0.5, 45},
		{"Simple", 0, 90, 0.5, 45},
		{"WrapShortArc", 170, -170, 0.5, 180},
		{"WrapShortArcReverse", -170, 170, 0.5, -180},
		{"NearZeroWrap", 350, 10, 0.5, 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LerpAngle(tt.a, tt.b, tt.t)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("LerpAngle(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
			}
		})
	}
}

func TestLerpAngleRoundTrip(t *testing.T) {
	pairs := [][2]float64{{0, 90}, {170, -170}, {-170, 170}, {359, 1}, {45, 225}, {10, 350}}
	for _, p := range pairs {
		a, b := p[0], p[1]
		if got := LerpAngle(a, b, 0); math.Abs(NormalizeAngle(got-a)) > 1e-9 {
			t.Errorf("LerpAngle(%v, %v, 0) = %v, want %v (mod 360)", a, b, got, a)
		}
		if got := LerpAngle(a, b, 1); math.Abs(NormalizeAngle(got-b)) > 1e-9 {
			t.Errorf("LerpAngle(%v, %v, 1) = %v, want %v (mod 360)", a, b, got, b)
		}
		// The swept arc never exceeds 180 degrees.
		arc := math.Abs(LerpAngle(a, b, 1) - LerpAngle(a, b, 0))
		if arc > 180+1e-9 {
			t.Errorf("arc from %v to %v is %v, exceeds 180", a, b, arc)
		}
	}
}

func TestEaseInOutCubic(t *testing.T) {
	if got := EaseInOutCubic(0); got != 0 {
		t.Errorf("EaseInOutCubic(0) = %v, want 0", got)
	}
	if got := EaseInOutCubic(1); math.Abs(got-1) > 1e-9 {
		t.Errorf("EaseInOutCubic(1) = %v, want 1", got)
	}
	if got := EaseInOutCubic(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("EaseInOutCubic(0.5) = %v, want 0.5", got)
	}

	// Monotonic on [0, 1].
	prev := -1.0
	for i := 0; i <= 100; i++ {
		v := EaseInOutCubic(float64(i) / 100)
		if v < prev {
			t.Fatalf("EaseInOutCubic not monotonic at t=%v", float64(i)/100)
		}
		prev = v
	}
}

func TestEaseInOutSine(t *testing.T) {
	if got := EaseInOutSine(0); math.Abs(got) > 1e-9 {
		t.Errorf("EaseInOutSine(0) = %v, want 0", got)
	}
	if got := EaseInOutSine(1); math.Abs(got-1) > 1e-9 {
		t.Errorf("EaseInOutSine(1) = %v, want 1", got)
	}
	if got := EaseInOutSine(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("EaseInOutSine(0.5) = %v, want 0.5", got)
	}
}

func TestSinusoidalDrift(t *testing.T) {
	// Starts at the midpoint: all component waves are zero at t=0.
	if got := SinusoidalDrift(0, baseDriftFreq); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("SinusoidalDrift(0) = %v, want 0.5", got)
	}

	// Always clamped to [0, 1].
	for i := 0; i < 1000; i++ {
		v := SinusoidalDrift(float64(i)*0.1, baseDriftFreq)
		if v < 0 || v > 1 {
			t.Fatalf("SinusoidalDrift out of range at t=%v: %v", float64(i)*0.1, v)
		}
	}
}

func TestEaseInLinearDrift(t *testing.T) {
	if got := EaseInLinearDrift(0); got != 0 {
		t.Errorf("EaseInLinearDrift(0) = %v, want 0", got)
	}
	if got := EaseInLinearDrift(1); math.Abs(got-1) > 1e-9 {
		t.Errorf("EaseInLinearDrift(1) = %v, want 1", got)
	}

	// Monotonic, and never above 1.
	prev := -1.0
	for i := 0; i <= 1000; i++ {
		v := EaseInLinearDrift(float64(i) / 1000)
		if v < prev {
			t.Fatalf("EaseInLinearDrift not monotonic at u=%v", float64(i)/1000)
		}
		if v > 1 {
			t.Fatalf("EaseInLinearDrift exceeds amplitude at u=%v: %v", float64(i)/1000, v)
		}
		prev = v
	}

	// Velocity continuity at the ease/linear boundary: the numeric
	// slope just below the boundary matches the slope just above it.
	const r = driftEaseFraction
	const h = 1e-6
	left := (EaseInLinearDrift(r) - EaseInLinearDrift(r-h)) / h
	right := (EaseInLinearDrift(r+h) - EaseInLinearDrift(r)) / h
	if math.Abs(left-right) > 1e-3 {
		t.Errorf("slope discontinuity at boundary: left=%v right=%v", left, right)
	}

	// After the boundary the curve is linear: constant slope.
	s1 := (EaseInLinearDrift(0.5) - EaseInLinearDrift(0.45)) / 0.05
	s2 := (EaseInLinearDrift(0.9) - EaseInLinearDrift(0.85)) / 0.05
	if math.Abs(s1-s2) > 1e-9 {
		t.Errorf("post-boundary slope not constant: %v vs %v", s1, s2)
	}
}

func TestBlendPoseWrapAround(t *testing.T) {
	// Transition near the +/-180 boundary takes the short arc.
	from := Pose{Heading: 170, Zoom: 1}
	to := Pose{Heading: -170, Zoom: 1}
	mid := BlendPose(from, to, EaseInOutCubic(0.5))
	if math.Abs(NormalizeAngle(mid.Heading-180)) > 1e-9 {
		t.Errorf("wraparound midpoint heading = %v, want 180", mid.Heading)
	}

	// Plain quarter-turn transition: eased midpoint is 45 degrees.
	from = Pose{Zoom: 1}
	to = Pose{Heading: 90, Zoom: 1}
	mid = BlendPose(from, to, EaseInOutCubic(0.5))
	if math.Abs(mid.Heading-45) > 1e-9 {
		t.Errorf("midpoint heading = %v, want 45", mid.Heading)
	}
}
