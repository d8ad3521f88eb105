package game

import "testing"

func TestStatClampsAndNotifiesOnChange(t *testing.T) {
	s := NewStat(5)
	var calls int
	var lastValue, lastMax int
	s.Subscribe(func(value, max int) {
		calls++
		lastValue, lastMax = value, max
	})

	if got := s.Value(); got != 5 {
		t.Fatalf("Value() = %d, want 5", got)
	}

	if !s.Add(-2) {
		t.Fatal("Add(-2) reported no change")
	}
	if lastValue != 3 || lastMax != 5 {
		t.Fatalf("subscriber saw (%d, %d), want (3, 5)", lastValue, lastMax)
	}

	if s.Set(3) {
		t.Fatal("Set(same) reported a change")
	}
	if calls != 1 {
		t.Fatalf("subscriber calls = %d, want 1", calls)
	}

	if !s.Set(99) {
		t.Fatal("Set(99) reported no change")
	}
	if got := s.Value(); got != 5 {
		t.Fatalf("Value() after overfill = %d, want clamp to 5", got)
	}

	if !s.Set(-10) {
		t.Fatal("Set(-10) reported no change")
	}
	if got := s.Value(); got != 0 {
		t.Fatalf("Value() after underflow = %d, want clamp to 0", got)
	}
}

func TestStatSetMaxReclamps(t *testing.T) {
	s := NewStat(5)
	var calls int
	s.Subscribe(func(value, max int) { calls++ })

	s.SetMax(3)
	if got := s.Value(); got != 3 {
		t.Fatalf("Value() after SetMax(3) = %d, want 3", got)
	}
	if got := s.Max(); got != 3 {
		t.Fatalf("Max() = %d, want 3", got)
	}
	if calls != 1 {
		t.Fatalf("subscriber calls = %d, want 1", calls)
	}

	s.SetMax(3)
	if calls != 1 {
		t.Fatal("SetMax(same) notified")
	}
}

func TestMeterClampsAndNotifiesOnChange(t *testing.T) {
	m := NewMeter(1)
	var calls int
	var last float64
	m.Subscribe(func(v float64) {
		calls++
		last = v
	})

	if !m.Add(-0.25) {
		t.Fatal("Add(-0.25) reported no change")
	}
	if last != 0.75 {
		t.Fatalf("subscriber saw %v, want 0.75", last)
	}

	if m.Set(0.75) {
		t.Fatal("Set(same) reported a change")
	}
	if calls != 1 {
		t.Fatalf("subscriber calls = %d, want 1", calls)
	}

	m.Add(5)
	if got := m.Value(); got != 1 {
		t.Fatalf("Value() after overfill = %v, want 1", got)
	}
	m.Add(-5)
	if got := m.Value(); got != 0 {
		t.Fatalf("Value() after drain = %v, want 0", got)
	}
}
