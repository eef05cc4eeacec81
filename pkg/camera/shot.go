package camera

// Category distinguishes cockpit shots, which ride rigidly with the
// aircraft, from external shots, which frame it from outside.
type Category string

const (
	CategoryCockpit  Category = "cockpit"
	CategoryExternal Category = "external"
)

// DriftRates describe how a shot evolves while active, as per-second
// rates of change for each pose axis and zoom.
type DriftRates struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       float64 `json:"z"`
	Pitch   float64 `json:"pitch"`
	Heading float64 `json:"heading"`
	Roll    float64 `json:"roll"`
	Zoom    float64 `json:"zoom"`
}

// Shot is an immutable camera placement template relative to the
// aircraft. X/Y/Z are body-frame meters (X right, Y up, Z aft).
// Heading is a delta from the aircraft heading; pitch and roll are
// absolute camera angles.
type Shot struct {
	Category Category   `json:"category"`
	Name     string     `json:"name"`
	X        float64    `json:"x"`
	Y        float64    `json:"y"`
	Z        float64    `json:"z"`
	Pitch    float64    `json:"pitch"`
	Heading  float64    `json:"heading"`
	Roll     float64    `json:"roll"`
	Zoom     float64    `json:"zoom"`
	Duration float64    `json:"duration"` // Nominal seconds, overridden at selection
	Drift    DriftRates `json:"drift"`
}

// ActiveShot is the live instance of a selected shot: a copy of the
// template with a resolved duration and an elapsed-time accumulator
// driving drift evaluation. It is owned exclusively by the Director and
// replaced wholesale at every shot change.
type ActiveShot struct {
	Shot
	// ResolvedDuration is sampled once at selection time and never
	// changes for the lifetime of the shot.
	ResolvedDuration float64
	// Elapsed is seconds since the shot's drift phase began.
	Elapsed float64
}

// Catalog holds the two ordered shot collections produced by the
// generator, plus the geometric floor external shots must respect.
type Catalog struct {
	Cockpit  []Shot
	External []Shot
	// MinVisibleDistance is the generator's floor distance (meters)
	// below which the aircraft would no longer be framed.
	MinVisibleDistance float64
}

// FallbackShot is returned when a category list is empty. A degenerate
// but safe placement: all offsets zero, short fixed duration.
func FallbackShot() Shot {
	return Shot{
		Category: CategoryCockpit,
		Name:     "Default",
		Zoom:     1.0,
		Duration: 4.0,
	}
}
