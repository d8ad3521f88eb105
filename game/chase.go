package game

import (
	"math"

	"github.com/jakecoffman/cp"
)

// chaseBehavior hovers in place until the player drifts into range,
// then flies straight at them for as long as both live. Hits stun it,
// death cuts its wings: gravity comes back scaled up and the body
// drops until the despawn timer reclaims it.
type chaseBehavior struct{}

func (chaseBehavior) Tick(e *Enemy, w *World, dt float64) {
	switch e.State {
	case StateHover:
		e.Body.SetVelocity(0, 0)
		if w.playerDistance(e) < e.tun.ChaseRange {
			e.setState(StateChase)
		}
	case StateChase:
		if w.player == nil || !w.player.State.Alive {
			e.Body.SetVelocity(0, 0)
			return
		}
		delta := w.player.Body.Position().Sub(e.Body.Position())
		dir := normalizeOr(delta, cp.Vector{})
		e.Body.SetVelocityVector(dir.Mult(e.tun.Speed))
		if delta.X != 0 {
			e.Facing = math.Copysign(1, delta.X)
		}
	case StateStunned:
		e.Body.SetVelocity(0, 0)
		e.timer += dt
		if e.timer > e.tun.StunTime {
			e.setState(StateHover)
		}
	case StateFalling:
		// dead weight, physics owns the body now
	default:
		e.setState(StateHover)
	}
}

func (chaseBehavior) OnHit(e *Enemy, w *World) {
	if e.Health <= 0 {
		e.die(w)
		return
	}
	e.setState(StateStunned)
}

func (chaseBehavior) OnDeath(e *Enemy, w *World) {
	e.setState(StateFalling)
	w.space.SetGravityScale(e.Body, e.tun.DeathGravity)
	e.despawn.Arm(w.randRange(e.tun.DespawnMin, e.tun.DespawnMax))
}
