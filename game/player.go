package game

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/metroidvania/common"
	"github.com/milk9111/metroidvania/config"
)

// Releasing jump above this upward speed cuts the jump short. Below it
// the release is too late to matter.
const risingReleaseSpeed = 3.0

// PlayerState is the flag block other systems read off the player.
type PlayerState struct {
	Jumping     bool
	Dashing     bool
	FacingRight bool
	Invincible  bool
	Healing     bool
	Cutscene    bool
	Alive       bool
	Visible     bool
}

// Player is the controllable character. All movement decisions happen
// in Update; the physics space only integrates the velocities chosen
// here.
type Player struct {
	Body  *cp.Body
	Shape *cp.Shape

	Health *Stat
	Mana   *Meter

	State PlayerState

	world *World
	tun   *config.PlayerSpec
	cue   CueSink

	grounded bool

	jumpBuffer float64
	coyote     float64
	airJumps   int

	canDash      bool
	dashed       bool
	dashTimer    TickTimer
	dashCooldown TickTimer

	sinceAttack float64
	recoilX     stepRecoil
	recoilY     stepRecoil
	recoilDirX  float64 // +1 pushes right
	recoilDirY  float64 // +1 pushes up

	healHold  float64
	healTimer float64

	invincible TickTimer
	flicker    float64
	deathUI    TickTimer
}

// SetCue attaches an animation sink. Nil restores the discarding
// default.
func (p *Player) SetCue(c CueSink) {
	if c == nil {
		c = nopCue{}
	}
	p.cue = c
}

func (p *Player) Size() (w, h float64) {
	return p.tun.Width, p.tun.Height
}

func (p *Player) Grounded() bool {
	return p.grounded
}

func (p *Player) RecoilingX() bool {
	return p.recoilX.active
}

func (p *Player) RecoilingY() bool {
	return p.recoilY.active
}

func (p *Player) facing() float64 {
	if p.State.FacingRight {
		return 1
	}
	return -1
}

// Update advances the player one simulation tick. dt is scaled time,
// realDT wall time; the split keeps hit-stop from freezing the timers
// that exist to unfreeze things.
func (p *Player) Update(in Input, dt, realDT float64) {
	if p.State.Cutscene {
		return
	}

	halfW, halfH := p.tun.Width/2, p.tun.Height/2
	p.grounded = p.world.space.Grounded(p.Body, halfW, halfH)

	p.tickTimers(in, dt, realDT)

	if !p.State.Alive {
		return
	}

	if p.State.Dashing {
		p.tickDash(dt)
		return
	}

	p.heal(in, dt)
	if p.State.Healing {
		p.Body.SetVelocity(0, 0)
		return
	}

	p.face(in)
	p.move(in)
	p.jump(in)
	p.startDash(in)
	p.attack(in)
	p.recoil()
}

func (p *Player) tickTimers(in Input, dt, realDT float64) {
	p.sinceAttack += dt

	// The buffer leaks on wall time at ten times the clock so a press
	// hoarded through a hit-stop still goes stale quickly.
	if in.JumpPressed {
		p.jumpBuffer = p.tun.JumpBufferWindow
	} else {
		p.jumpBuffer -= 10 * realDT
		if p.jumpBuffer < 0 {
			p.jumpBuffer = 0
		}
	}

	if p.grounded {
		p.State.Jumping = false
		p.coyote = p.tun.CoyoteTime
		p.airJumps = 0
		p.recoilY.stop()
	} else {
		p.coyote -= dt
	}

	if p.dashCooldown.Tick(dt) {
		p.canDash = true
	}

	if p.invincible.Tick(realDT) {
		p.State.Invincible = false
		p.State.Visible = true
		p.flicker = 0
	}
	p.flickerTick(realDT)

	if p.deathUI.Tick(realDT) {
		p.world.hooks.showDeath()
	}
}

func (p *Player) flickerTick(realDT float64) {
	if !p.State.Invincible {
		return
	}
	p.flicker += realDT
	if p.flicker >= p.tun.FlickerInterval {
		p.flicker -= p.tun.FlickerInterval
		p.State.Visible = !p.State.Visible
	}
}

func (p *Player) face(in Input) {
	if in.MoveX < 0 {
		p.State.FacingRight = false
	} else if in.MoveX > 0 {
		p.State.FacingRight = true
	}
}

func (p *Player) move(in Input) {
	v := p.Body.Velocity()
	p.Body.SetVelocity(p.tun.WalkSpeed*in.MoveX, v.Y)
}

func (p *Player) jump(in Input) {
	if p.jumpBuffer > 0 && p.coyote > 0 && !p.State.Jumping {
		v := p.Body.Velocity()
		p.Body.SetVelocity(v.X, p.tun.JumpForce)
		p.State.Jumping = true
		p.jumpBuffer = 0
		p.cue.Cue("jump")
	} else if !p.grounded && in.JumpPressed && p.airJumps < p.tun.MaxAirJumps {
		p.airJumps++
		p.State.Jumping = true
		v := p.Body.Velocity()
		p.Body.SetVelocity(v.X, p.tun.JumpForce)
		p.cue.Cue("air_jump")
	}

	if in.JumpReleased {
		if v := p.Body.Velocity(); v.Y > risingReleaseSpeed {
			p.State.Jumping = false
			p.Body.SetVelocity(v.X, common.Clamp(v.Y, -p.tun.MaxFallSpeed, p.tun.MaxFallSpeed))
		}
	}

	// fall ceiling
	if v := p.Body.Velocity(); v.Y < -p.tun.MaxFallSpeed {
		p.Body.SetVelocity(v.X, -p.tun.MaxFallSpeed)
	}
}

func (p *Player) startDash(in Input) {
	if p.grounded {
		p.dashed = false
	}
	if in.DashPressed && p.canDash && !p.dashed {
		p.beginDash()
	}
}

func (p *Player) beginDash() {
	p.canDash = false
	p.dashed = true
	p.State.Dashing = true
	p.cue.Cue("dash")
	p.world.space.SetGravityScale(p.Body, 0)
	p.Body.SetVelocity(p.facing()*p.tun.DashSpeed, 0)
	if p.grounded {
		p.world.hooks.spawn("dash_dust", p.Body.Position())
	}
	p.dashTimer.Arm(p.tun.DashTime)
}

func (p *Player) tickDash(dt float64) {
	// hold the dash speed against friction and contacts
	p.Body.SetVelocity(p.facing()*p.tun.DashSpeed, 0)
	if p.dashTimer.Tick(dt) {
		p.State.Dashing = false
		p.world.space.SetGravityScale(p.Body, 1)
		p.dashCooldown.Arm(p.tun.DashCooldown)
	}
}

func (p *Player) attack(in Input) {
	if !in.AttackPressed || p.sinceAttack < p.tun.AttackCooldown {
		return
	}
	p.sinceAttack = 0
	p.cue.Cue("attack")

	switch {
	case in.MoveY == 0 || (in.MoveY < 0 && p.grounded):
		if p.strike(p.tun.SideAttack, "slash_side", p.tun.RecoilXSpeed) {
			p.recoilDirX = -p.facing()
			p.recoilX.start()
		}
	case in.MoveY > 0:
		if p.strike(p.tun.UpAttack, "slash_up", p.tun.RecoilYSpeed) {
			p.recoilDirY = -1
			p.recoilY.start()
		}
	default: // airborne down slash
		if p.strike(p.tun.DownAttack, "slash_down", p.tun.RecoilYSpeed) {
			p.recoilDirY = 1
			p.recoilY.start()
		}
	}
}

// strike runs one hitbox overlap and reports whether anything took the
// hit.
func (p *Player) strike(box config.BoxSpec, effect string, force float64) bool {
	center := p.attackPoint(box)
	p.world.hooks.spawn(effect, center)
	return p.world.strike(p, center, box.Width, box.Height, force)
}

func (p *Player) attackPoint(box config.BoxSpec) cp.Vector {
	pos := p.Body.Position()
	return cp.Vector{X: pos.X + p.facing()*box.OffsetX, Y: pos.Y + box.OffsetY}
}

// recoil overrides whatever velocity the tick chose. X knockback flies
// flat, Y knockback suspends gravity and refunds air jumps so a pogo
// chain can carry across a whole room.
func (p *Player) recoil() {
	if p.State.Dashing {
		return
	}
	if p.recoilX.step(p.tun.RecoilXSteps) {
		p.Body.SetVelocity(p.recoilDirX*p.tun.RecoilXSpeed, 0)
	}
	if p.recoilY.step(p.tun.RecoilYSteps) {
		v := p.Body.Velocity()
		p.Body.SetVelocity(v.X, p.recoilDirY*p.tun.RecoilYSpeed)
		p.world.space.SetGravityScale(p.Body, 0)
		p.airJumps = 0
	} else {
		p.world.space.SetGravityScale(p.Body, 1)
	}
}

func (p *Player) heal(in Input, dt float64) {
	if in.HealHeld {
		p.healHold += dt
	} else {
		p.healHold = 0
	}

	allowed := in.HealHeld &&
		p.healHold > p.tun.HealHold &&
		p.Health.Value() < p.Health.Max() &&
		p.Mana.Value() > 0 &&
		p.grounded &&
		!p.State.Dashing

	if !allowed {
		p.State.Healing = false
		p.healTimer = 0
		return
	}

	if !p.State.Healing {
		p.State.Healing = true
		p.cue.Cue("heal")
	}
	p.healTimer += dt
	if p.healTimer >= p.tun.TimeToHeal {
		p.Health.Add(1)
		p.healTimer = 0
	}
	p.Mana.Add(-p.tun.ManaDrainSpeed * dt)
}

// TakeDamage applies damage pushed in the given direction and reports
// whether it landed. Dead or invincible players shrug hits off.
func (p *Player) TakeDamage(amount int, dir cp.Vector) bool {
	if !p.State.Alive || p.State.Invincible {
		return false
	}
	p.Health.Add(-amount)
	p.State.Healing = false
	p.healHold = 0
	p.healTimer = 0
	if p.Health.Value() <= 0 {
		p.die()
		return true
	}

	p.cue.Cue("hurt")
	p.world.hooks.spawn("blood", p.Body.Position())

	kd := normalizeOr(dir, cp.Vector{Y: 1})
	if kd.X != 0 {
		p.recoilDirX = math.Copysign(1, kd.X)
		p.recoilX.start()
	}
	if math.Abs(kd.Y) > 0.5 {
		p.recoilDirY = math.Copysign(1, kd.Y)
		p.recoilY.start()
	}

	p.State.Invincible = true
	p.invincible.Arm(p.tun.InvincibleTime)
	p.flicker = 0
	return true
}

// die ends the run: clear combat state, freeze the body, normalize the
// clock so the death screen arrives at full speed.
func (p *Player) die() {
	p.State.Alive = false
	p.State.Healing = false
	p.State.Invincible = false
	p.State.Visible = true
	p.recoilX.stop()
	p.recoilY.stop()
	p.invincible.Cancel()
	p.Body.SetVelocity(0, 0)
	p.world.space.SetGravityScale(p.Body, 1)
	p.world.clock.Normalize()
	p.cue.Cue("death")
	p.world.hooks.spawn("death_burst", p.Body.Position())
	p.deathUI.Arm(p.tun.DeathUIDelay)
}

// Respawn restores the player at the given point with full resources.
func (p *Player) Respawn(at cp.Vector) {
	p.Body.SetPosition(at)
	p.Body.SetVelocity(0, 0)
	p.world.space.SetGravityScale(p.Body, 1)
	p.Health.Set(p.Health.Max())
	p.Mana.Set(1)

	p.State = PlayerState{Alive: true, Visible: true, FacingRight: true}
	p.grounded = false
	p.jumpBuffer = 0
	p.coyote = 0
	p.airJumps = 0
	p.canDash = true
	p.dashed = false
	p.sinceAttack = p.tun.AttackCooldown
	p.healHold = 0
	p.healTimer = 0
	p.flicker = 0
	p.dashTimer.Cancel()
	p.dashCooldown.Cancel()
	p.invincible.Cancel()
	p.deathUI.Cancel()
	p.recoilX.stop()
	p.recoilY.stop()
}
