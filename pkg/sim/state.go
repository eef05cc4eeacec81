package sim

// State describes the simulator connection from the director's point
// of view. Auto mode only engages while the sim is StateActive.
type State string

const (
	// StateDisconnected means no connection to the simulator.
	StateDisconnected State = "disconnected"
	// StateInactive means connected but not flying (menu, loading, pause).
	StateInactive State = "inactive"
	// StateActive means an aircraft is loaded and flying.
	StateActive State = "active"
)
