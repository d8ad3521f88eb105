package game

import "github.com/milk9111/metroidvania/common"

// Stat is a clamped integer resource such as health. Subscribers are
// notified only when the stored value actually changes.
type Stat struct {
	value int
	max   int
	subs  []func(value, max int)
}

func NewStat(max int) *Stat {
	if max < 1 {
		max = 1
	}
	return &Stat{value: max, max: max}
}

func (s *Stat) Value() int {
	return s.value
}

func (s *Stat) Max() int {
	return s.max
}

// Set clamps v into [0, max] and reports whether the value changed.
func (s *Stat) Set(v int) bool {
	if v < 0 {
		v = 0
	}
	if v > s.max {
		v = s.max
	}
	if v == s.value {
		return false
	}
	s.value = v
	s.notify()
	return true
}

func (s *Stat) Add(delta int) bool {
	return s.Set(s.value + delta)
}

// SetMax changes the cap and re-clamps the stored value.
func (s *Stat) SetMax(max int) {
	if max < 1 {
		max = 1
	}
	if max == s.max {
		return
	}
	s.max = max
	if s.value > max {
		s.value = max
	}
	s.notify()
}

func (s *Stat) Subscribe(fn func(value, max int)) {
	if fn == nil {
		return
	}
	s.subs = append(s.subs, fn)
}

func (s *Stat) notify() {
	for _, fn := range s.subs {
		fn(s.value, s.max)
	}
}

// Meter is a clamped [0, 1] float resource such as mana.
type Meter struct {
	value float64
	subs  []func(float64)
}

func NewMeter(start float64) *Meter {
	return &Meter{value: common.Clamp(start, 0, 1)}
}

func (m *Meter) Value() float64 {
	return m.value
}

// Set clamps v into [0, 1] and reports whether the value changed.
func (m *Meter) Set(v float64) bool {
	v = common.Clamp(v, 0, 1)
	if v == m.value {
		return false
	}
	m.value = v
	m.notify()
	return true
}

func (m *Meter) Add(delta float64) bool {
	return m.Set(m.value + delta)
}

func (m *Meter) Subscribe(fn func(float64)) {
	if fn == nil {
		return
	}
	m.subs = append(m.subs, fn)
}

func (m *Meter) notify() {
	for _, fn := range m.subs {
		fn(m.value)
	}
}
