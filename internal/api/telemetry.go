package api

import (
	"net/http"
	"sync"

	"cinecam/pkg/sim"
)

// TelemetryHandler serves the latest telemetry snapshot written by the
// frame loop.
type TelemetryHandler struct {
	mu        sync.RWMutex
	telemetry sim.Telemetry
	simState  sim.State
}

// TelemetryResponse wraps telemetry with the simulator connection state.
type TelemetryResponse struct {
	sim.Telemetry
	SimState string `json:"SimState"`
}

func NewTelemetryHandler() *TelemetryHandler {
	return &TelemetryHandler{simState: sim.StateDisconnected}
}

// Update stores the latest telemetry snapshot from the frame loop.
func (h *TelemetryHandler) Update(t *sim.Telemetry) {
	h.mu.Lock()
	h.telemetry = *t
	h.mu.Unlock()
}

// UpdateState records the simulator connection state.
func (h *TelemetryHandler) UpdateState(s sim.State) {
	h.mu.Lock()
	h.simState = s
	h.mu.Unlock()
}

func (h *TelemetryHandler) handleTelemetry(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	resp := TelemetryResponse{Telemetry: h.telemetry, SimState: string(h.simState)}
	h.mu.RUnlock()
	writeJSON(w, resp)
}
