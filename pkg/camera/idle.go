package camera

// PointerTracker accumulates pointer idle time across frames. The host
// supplies pointer coordinates and the frame delta; the tracker never
// reads the clock itself, so it behaves identically at any frame rate.
type PointerTracker struct {
	lastX, lastY int
	idle         float64
	primed       bool
}

// Update records the pointer position for this frame and returns true
// if the pointer moved since the previous frame. Movement resets the
// idle accumulator; stillness grows it by dt seconds. The first call
// only primes the tracker and reports no movement.
func (p *PointerTracker) Update(x, y int, dt float64) bool {
	if !p.primed {
		p.lastX, p.lastY = x, y
		p.primed = true
		return false
	}
	moved := x != p.lastX || y != p.lastY
	p.lastX, p.lastY = x, y
	if moved {
		p.idle = 0
		return true
	}
	p.idle += dt
	return false
}

// Idle returns the accumulated idle time in seconds.
func (p *PointerTracker) Idle() float64 {
	return p.idle
}

// Reset clears the idle accumulator without forgetting the pointer
// position.
func (p *PointerTracker) Reset() {
	p.idle = 0
}
