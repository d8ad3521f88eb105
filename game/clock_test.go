package game

import "testing"

func TestClockStartsAtFullSpeed(t *testing.T) {
	c := NewClock()
	if got := c.Scale(); got != 1 {
		t.Fatalf("Scale() = %v, want 1", got)
	}
	if got := c.Step(tick); got != tick {
		t.Fatalf("Step(tick) = %v, want %v", got, tick)
	}
}

func TestClockHitStopFreezesThenRestores(t *testing.T) {
	c := NewClock()
	c.HitStop(0, 5, 0.5)

	if got := c.Scale(); got != 0 {
		t.Fatalf("Scale() right after HitStop = %v, want 0", got)
	}

	// frozen for the whole delay
	for i := 0; i < 29; i++ {
		if got := c.Step(tick); got != 0 {
			t.Fatalf("Step() during delay tick %d = %v, want 0", i, got)
		}
	}

	// the ramp begins and every step climbs
	prev := c.Scale()
	climbed := false
	for i := 0; i < 60; i++ {
		c.Step(tick)
		if c.Scale() < prev {
			t.Fatalf("scale went backwards: %v -> %v", prev, c.Scale())
		}
		if c.Scale() > prev {
			climbed = true
		}
		prev = c.Scale()
	}
	if !climbed {
		t.Fatal("scale never climbed after the delay")
	}
	if got := c.Scale(); got != 1 {
		t.Fatalf("Scale() after restore = %v, want exactly 1", got)
	}
	if got := c.Step(tick); got != tick {
		t.Fatalf("Step() after restore = %v, want %v", got, tick)
	}
}

func TestClockHitStopZeroDelayRestoresImmediately(t *testing.T) {
	c := NewClock()
	c.HitStop(0.5, 5, 0)

	got := c.Step(tick)
	if got <= 0.5*tick {
		t.Fatalf("Step() = %v, want scale already climbing past 0.5", got)
	}
}

func TestClockNewerHitStopReplacesPendingRestore(t *testing.T) {
	c := NewClock()
	c.HitStop(0, 5, 0.5)
	for i := 0; i < 15; i++ {
		c.Step(tick)
	}
	c.HitStop(0, 5, 0.5)

	// the delay restarted, so the freeze holds for another ~29 ticks
	for i := 0; i < 29; i++ {
		if got := c.Step(tick); got != 0 {
			t.Fatalf("Step() after re-stop tick %d = %v, want 0", i, got)
		}
	}
}

func TestClockNormalizeDropsPendingRestore(t *testing.T) {
	c := NewClock()
	c.HitStop(0.2, 5, 10)
	c.Step(tick)

	c.Normalize()
	if got := c.Scale(); got != 1 {
		t.Fatalf("Scale() after Normalize = %v, want 1", got)
	}
	// the ten second delay must never resurface
	for i := 0; i < 700; i++ {
		if got := c.Step(tick); got != tick {
			t.Fatalf("Step() tick %d after Normalize = %v, want %v", i, got, tick)
		}
	}
}
