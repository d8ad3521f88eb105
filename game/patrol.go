package game

// patrolBehavior walks a platform edge to edge: march until the floor
// runs out or something blocks the way, pause, turn, march back.
type patrolBehavior struct{}

func (patrolBehavior) Tick(e *Enemy, w *World, dt float64) {
	switch e.State {
	case StatePatrol:
		if e.bumped {
			e.Facing = -e.Facing
		}
		if !w.groundAhead(e) || w.wallAhead(e) {
			e.Body.SetVelocity(0, e.Body.Velocity().Y)
			e.setState(StatePatrolFlip)
			return
		}
		e.Body.SetVelocity(e.Facing*e.tun.Speed, e.Body.Velocity().Y)
	case StatePatrolFlip:
		e.Body.SetVelocity(0, e.Body.Velocity().Y)
		e.timer += dt
		if e.timer > e.tun.FlipWait {
			e.Facing = -e.Facing
			e.setState(StatePatrol)
		}
	default:
		e.setState(StatePatrol)
	}
}

func (patrolBehavior) OnHit(e *Enemy, w *World) {
	if e.Health <= 0 {
		e.die(w)
	}
}

func (patrolBehavior) OnDeath(e *Enemy, w *World) {
	e.cue.Cue("death")
	w.hooks.spawn("enemy_death", e.Body.Position())
	e.despawn.Arm(e.tun.Despawn)
}
