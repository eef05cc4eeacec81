package camera

// maxTaxiSpeed is the ground speed (m/s) below which a parked or
// holding aircraft qualifies for auto activation.
const maxTaxiSpeed = 1.0

// AutoInput is the telemetry slice the auto evaluator looks at.
type AutoInput struct {
	Valid       bool
	IsOnGround  bool
	GroundSpeed float64 // m/s
	AltitudeFt  float64 // Feet MSL
}

// ShouldAutoActivate is the stateless auto-mode predicate, evaluated
// every frame. It activates when the aircraft is parked on the ground,
// or when it cruises above the altitude threshold and the pointer has
// been idle past the configured delay. Missing telemetry never
// activates.
func ShouldAutoActivate(in AutoInput, idleSeconds, delaySeconds, altThresholdFt float64) bool {
	if !in.Valid {
		return false
	}
	if in.IsOnGround && in.GroundSpeed < maxTaxiSpeed {
		return true
	}
	if !in.IsOnGround && in.AltitudeFt > altThresholdFt && idleSeconds >= delaySeconds {
		return true
	}
	return false
}
