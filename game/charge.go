package game

// chargeBehavior prowls like a patroller until its sight line crosses
// the player, hops once in surprise, then barrels forward at a speed
// multiplier until the charge clock runs out.
type chargeBehavior struct{}

func (chargeBehavior) Tick(e *Enemy, w *World, dt float64) {
	switch e.State {
	case StateProwl:
		if e.bumped || !w.groundAhead(e) || w.wallAhead(e) {
			e.Facing = -e.Facing
		}
		if w.seesPlayer(e, e.tun.SightRange) {
			e.setState(StateSurprised)
			return
		}
		e.Body.SetVelocity(e.Facing*e.tun.Speed, e.Body.Velocity().Y)
	case StateSurprised:
		// one-tick hop, then commit
		e.Body.SetVelocity(e.Facing*e.tun.LungeX, e.tun.LungeY)
		e.setState(StateCharge)
	case StateCharge:
		e.timer += dt
		if e.timer >= e.tun.ChargeTime {
			e.setState(StateProwl)
			return
		}
		if w.groundAhead(e) {
			e.Body.SetVelocity(e.Facing*e.tun.Speed*e.tun.ChargeMultiplier, e.Body.Velocity().Y)
		} else {
			e.Body.SetVelocity(0, e.Body.Velocity().Y)
		}
	default:
		e.setState(StateProwl)
	}
}

func (chargeBehavior) OnHit(e *Enemy, w *World) {
	if e.Health <= 0 {
		e.die(w)
	}
}

func (chargeBehavior) OnDeath(e *Enemy, w *World) {
	e.cue.Cue("death")
	w.hooks.spawn("enemy_death", e.Body.Position())
	e.despawn.Arm(e.tun.Despawn)
}
