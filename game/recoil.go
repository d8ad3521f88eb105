package game

// Recoil is the duration-style knockback window enemies use. While the
// window is open the entity's behavior is pre-empted and physics alone
// carries the knocked body.
type Recoil struct {
	Duration float64

	timer  float64
	active bool
}

// Start opens the window. Callers guard with Active so a hit landing
// mid-recoil extends nothing.
func (r *Recoil) Start() {
	r.active = true
	r.timer = 0
}

func (r *Recoil) Active() bool {
	return r.active
}

// Tick consumes the tick while the window is open, including the tick
// on which it closes.
func (r *Recoil) Tick(dt float64) bool {
	if !r.active {
		return false
	}
	if r.timer < r.Duration {
		r.timer += dt
	} else {
		r.active = false
		r.timer = 0
	}
	return true
}

// stepRecoil counts the player's knockback in whole ticks per axis
// rather than seconds. The tick budget is passed per call so tuning
// changes land mid-flight.
type stepRecoil struct {
	steps  int
	active bool
}

func (r *stepRecoil) start() {
	r.active = true
	r.steps = 0
}

func (r *stepRecoil) stop() {
	r.active = false
	r.steps = 0
}

// step consumes one tick and reports whether the recoil still holds.
func (r *stepRecoil) step(limit int) bool {
	if !r.active {
		return false
	}
	if r.steps < limit {
		r.steps++
		return true
	}
	r.stop()
	return false
}
