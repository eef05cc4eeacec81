package camera

import "sort"

// Keyframe is one timestamped pose along a user-authored camera path.
// The pose fields are body-relative, like a shot definition.
type Keyframe struct {
	Time    float64 `json:"time" yaml:"time"` // Seconds from path start
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	Z       float64 `json:"z" yaml:"z"`
	Pitch   float64 `json:"pitch" yaml:"pitch"`
	Heading float64 `json:"heading" yaml:"heading"` // Delta from aircraft heading
	Roll    float64 `json:"roll" yaml:"roll"`
	Zoom    float64 `json:"zoom" yaml:"zoom"`
}

// Path is an ordered list of keyframes forming an alternate drift
// source: while a path is active the per-frame pose comes from
// interpolating its keyframes instead of a shot's drift rates.
type Path struct {
	ID        string     `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	Loop      bool       `json:"loop" yaml:"loop"`
	Keyframes []Keyframe `json:"keyframes" yaml:"keyframes"`
}

// Normalize sorts keyframes by time. Call after loading a path from
// storage or the API.
func (p *Path) Normalize() {
	sort.SliceStable(p.Keyframes, func(i, j int) bool {
		return p.Keyframes[i].Time < p.Keyframes[j].Time
	})
}

// Duration returns the time of the last keyframe.
func (p *Path) Duration() float64 {
	if len(p.Keyframes) == 0 {
		return 0
	}
	return p.Keyframes[len(p.Keyframes)-1].Time
}

// PoseAt evaluates the path at time t. The bracketing keyframe pair is
// interpolated with the ease-in-out sine curve, angularly for heading.
// A looping path wraps t modulo the total duration; a non-looping path
// holds the final keyframe rather than extrapolate past the end.
func (p *Path) PoseAt(t float64) (Pose, Offset) {
	if len(p.Keyframes) == 0 {
		return Pose{Zoom: 1}, Offset{}
	}

	total := p.Duration()
	if p.Loop && total > 0 {
		t = mod(t, total)
	}
	if t <= p.Keyframes[0].Time {
		return keyframePose(p.Keyframes[0])
	}
	if t >= total {
		return keyframePose(p.Keyframes[len(p.Keyframes)-1])
	}

	// Locate the bracketing pair.
	hi := sort.Search(len(p.Keyframes), func(i int) bool {
		return p.Keyframes[i].Time > t
	})
	a := p.Keyframes[hi-1]
	b := p.Keyframes[hi]

	span := b.Time - a.Time
	u := 0.0
	if span > 0 {
		u = (t - a.Time) / span
	}
	e := EaseInOutSine(u)

	pose := Pose{
		Pitch:   Lerp(a.Pitch, b.Pitch, e),
		Heading: LerpAngle(a.Heading, b.Heading, e),
		Roll:    Lerp(a.Roll, b.Roll, e),
		Zoom:    Lerp(a.Zoom, b.Zoom, e),
	}
	off := Offset{
		X: Lerp(a.X, b.X, e),
		Y: Lerp(a.Y, b.Y, e),
		Z: Lerp(a.Z, b.Z, e),
	}
	return pose, off
}

func keyframePose(k Keyframe) (Pose, Offset) {
	return Pose{Pitch: k.Pitch, Heading: k.Heading, Roll: k.Roll, Zoom: k.Zoom},
		Offset{X: k.X, Y: k.Y, Z: k.Z}
}

func mod(a, b float64) float64 {
	m := a - b*float64(int(a/b))
	if m < 0 {
		m += b
	}
	return m
}
