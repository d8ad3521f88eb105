package game

// TickTimer is a one-shot countdown advanced once per tick. Arming an
// already armed timer replaces the pending duration.
type TickTimer struct {
	remaining float64
	armed     bool
}

func (t *TickTimer) Arm(seconds float64) {
	t.remaining = seconds
	t.armed = true
}

func (t *TickTimer) Cancel() {
	t.remaining = 0
	t.armed = false
}

func (t *TickTimer) Armed() bool {
	return t.armed
}

// Tick advances the countdown and reports true exactly once, on the
// tick it elapses.
func (t *TickTimer) Tick(dt float64) bool {
	if !t.armed {
		return false
	}
	t.remaining -= dt
	if t.remaining > 0 {
		return false
	}
	t.armed = false
	t.remaining = 0
	return true
}
