package game

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/metroidvania/config"
)

// State identifies one node of an enemy state machine. The string form
// doubles as the animation cue fired on entry.
type State uint8

const (
	StateNone State = iota
	StatePatrol
	StatePatrolFlip
	StateHover
	StateChase
	StateStunned
	StateFalling
	StateProwl
	StateSurprised
	StateCharge
)

var stateNames = map[State]string{
	StatePatrol:        "patrol",
	StatePatrolFlip:    "patrol_flip",
	StateHover:         "hover",
	StateChase:         "chase",
	StateStunned:       "stunned",
	StateFalling:       "falling",
	StateProwl:         "prowl",
	StateSurprised:     "surprised",
	StateCharge:        "charge",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "none"
}

// Behavior is the per-archetype strategy the shared enemy record
// delegates to. Tick runs once per simulation tick while the enemy is
// alive and not recoiling. OnHit runs after every landed hit, OnDeath
// exactly once when health runs out.
type Behavior interface {
	Tick(e *Enemy, w *World, dt float64)
	OnHit(e *Enemy, w *World)
	OnDeath(e *Enemy, w *World)
}

var behaviors = map[string]Behavior{
	"patrol": patrolBehavior{},
	"chase":  chaseBehavior{},
	"charge": chargeBehavior{},
}

// Enemy is the one record every archetype runs on. Archetypes differ
// only in tuning values and the Behavior strategy attached at spawn.
type Enemy struct {
	Kind  string
	Body  *cp.Body
	Shape *cp.Shape

	Health int
	Facing float64 // +1 right, -1 left
	State  State
	Alive  bool

	// WinOnDeath marks this enemy as the encounter's victory
	// condition.
	WinOnDeath bool

	Recoil Recoil

	world    *World
	behavior Behavior
	cue      CueSink
	tun      *config.EnemySpec

	timer   float64
	bumped  bool
	despawn TickTimer
}

// SetCue attaches an animation sink. Nil restores the discarding
// default.
func (e *Enemy) SetCue(c CueSink) {
	if c == nil {
		c = nopCue{}
	}
	e.cue = c
}

func (e *Enemy) Size() (w, h float64) {
	return e.tun.Width, e.tun.Height
}

func (e *Enemy) GrantsMana() bool {
	return true
}

// setState switches machines and fires the entry cue. Re-entering the
// current state is a no-op so per-state timers survive repeated calls.
func (e *Enemy) setState(s State) {
	if e.State == s {
		return
	}
	e.State = s
	e.timer = 0
	e.cue.Cue(s.String())
}

// Update runs one tick. An open recoil window pre-empts the behavior
// entirely; physics alone carries the body until it closes.
func (e *Enemy) Update(w *World, dt float64) {
	if !e.Alive {
		return
	}
	if e.Recoil.Tick(dt) {
		e.bumped = false
		return
	}
	e.behavior.Tick(e, w, dt)
	e.bumped = false
}

// Hit applies attack damage and knockback. Dead enemies ignore it, and
// a hit landing mid-recoil deals damage without restarting the shove.
func (e *Enemy) Hit(damage int, dir cp.Vector, force float64) {
	if !e.Alive {
		return
	}
	e.Health -= damage
	if !e.Recoil.Active() {
		e.world.hooks.spawn("enemy_hurt", e.Body.Position())
		e.Body.SetVelocityVector(dir.Mult(force * e.tun.RecoilFactor))
		e.Recoil.Start()
	}
	e.behavior.OnHit(e, e.world)
}

// die retires the enemy: the body stops colliding with anything but
// terrain and the behavior stages its own exit. Idempotent.
func (e *Enemy) die(w *World) {
	if !e.Alive {
		return
	}
	e.Alive = false
	w.space.MakeCorpse(e.Shape)
	e.behavior.OnDeath(e, w)
	if e.WinOnDeath {
		w.hooks.showWin()
	}
}
