package game

import "github.com/milk9111/metroidvania/common"

// Clock owns the global time scale. Combat impacts slam the scale down
// through HitStop and the clock ramps it back toward 1 on wall time, so
// a frozen simulation can never strand itself frozen.
type Clock struct {
	scale        float64
	restoreSpeed float64
	restoring    bool
	pending      TickTimer
}

func NewClock() *Clock {
	return &Clock{scale: 1}
}

// Scale is the current multiplier applied to wall time.
func (c *Clock) Scale() float64 {
	return c.scale
}

// HitStop drops the time scale and schedules the restore ramp. A newer
// call replaces any pending delay.
func (c *Clock) HitStop(scale, restoreSpeed, delay float64) {
	c.scale = common.Clamp(scale, 0, 1)
	c.restoreSpeed = restoreSpeed
	if delay > 0 {
		c.restoring = false
		c.pending.Arm(delay)
		return
	}
	c.pending.Cancel()
	c.restoring = true
}

// Normalize snaps the scale back to 1 and drops any pending restore.
func (c *Clock) Normalize() {
	c.scale = 1
	c.restoring = false
	c.pending.Cancel()
}

// Step advances the restore machinery by one tick of wall time and
// returns the scaled delta the rest of the simulation should run on.
func (c *Clock) Step(realDT float64) float64 {
	if c.pending.Tick(realDT) {
		c.restoring = true
	}
	if c.restoring {
		c.scale = common.Approach(c.scale, 1, c.restoreSpeed*realDT)
		if c.scale >= 1 {
			c.scale = 1
			c.restoring = false
		}
	}
	return realDT * c.scale
}
