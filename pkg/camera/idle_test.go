package camera

import "testing"

func TestPointerTracker(t *testing.T) {
	var p PointerTracker

	// First observation only primes the tracker.
	if moved := p.Update(100, 100, 0.1); moved {
		t.Error("first update should not report movement")
	}

	// Stillness accumulates idle time.
	p.Update(100, 100, 0.5)
	p.Update(100, 100, 0.5)
	if got := p.Idle(); got != 1.0 {
		t.Errorf("Idle() = %v, want 1.0", got)
	}

	// Movement resets the accumulator.
	if moved := p.Update(101, 100, 0.1); !moved {
		t.Error("movement not detected")
	}
	if got := p.Idle(); got != 0 {
		t.Errorf("Idle() after movement = %v, want 0", got)
	}

	// Reset clears idle time but remembers the position.
	p.Update(101, 100, 2.0)
	p.Reset()
	if got := p.Idle(); got != 0 {
		t.Errorf("Idle() after Reset = %v, want 0", got)
	}
	if moved := p.Update(101, 100, 0.1); moved {
		t.Error("unchanged position reported as movement after Reset")
	}
}
