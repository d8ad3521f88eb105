package game

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestSideAttackHitsEnemy(t *testing.T) {
	effects := &recordEffects{}
	screens := &recordScreens{}
	w := worldWithFloor(Hooks{Effects: effects, Screens: screens})
	// walls pin the knocked enemy inside attack range and stop the
	// attacker's own recoil from drifting him out of it
	w.space.AddTerrainBox(cp.Vector{X: 55, Y: 40}, 10, 120)
	w.space.AddTerrainBox(cp.Vector{X: -25, Y: 40}, 10, 120)
	p := w.SpawnPlayer(cp.Vector{X: 0, Y: 22})
	settle(w, 30)

	e, err := w.SpawnEnemy("walker", cp.Vector{X: 30, Y: 16})
	if err != nil {
		t.Fatalf("SpawnEnemy() err = %v", err)
	}
	e.WinOnDeath = true
	p.Mana.Set(0.5)

	w.Update(Input{AttackPressed: true}, tick)

	if got := e.Health; got != 2 {
		t.Fatalf("enemy health after hit = %d, want 2", got)
	}
	if !e.Recoil.Active() {
		t.Fatal("enemy should be recoiling")
	}
	if got := e.Body.Velocity().X; got < 100 {
		t.Fatalf("enemy knockback velocity = %v, want pushed away hard", got)
	}
	if got := p.Mana.Value(); got != 0.75 {
		t.Fatalf("mana after enemy hit = %v, want 0.75", got)
	}
	if !p.RecoilingX() {
		t.Fatal("attacker should recoil off the hit")
	}
	if got := p.Body.Velocity().X; got != -200 {
		t.Fatalf("attacker recoil velocity = %v, want -200", got)
	}
	if effects.count("slash_side") != 1 || effects.count("enemy_hurt") != 1 {
		t.Fatalf("effects = %v", effects.names)
	}

	// inside the cooldown the swing does nothing
	w.Update(Input{AttackPressed: true}, tick)
	if got := e.Health; got != 2 {
		t.Fatalf("health after cooldown-blocked swing = %d, want 2", got)
	}

	// two more swings kill it
	stepWorld(w, Input{}, 15)
	w.Update(Input{AttackPressed: true}, tick)
	stepWorld(w, Input{}, 18)
	w.Update(Input{AttackPressed: true}, tick)

	if e.Alive {
		t.Fatal("enemy should be dead after three hits")
	}
	if screens.win != 1 {
		t.Fatalf("win screens = %d, want 1 from win_on_death", screens.win)
	}

	// no further hurt effects once it is down
	stepWorld(w, Input{}, 15)
	w.Update(Input{AttackPressed: true}, tick)
	if effects.count("enemy_hurt") != 3 {
		t.Fatalf("enemy_hurt effects = %d, want exactly 3", effects.count("enemy_hurt"))
	}

	stepWorld(w, Input{}, 10)
	if got := len(w.Enemies()); got != 0 {
		t.Fatalf("enemies after despawn = %d, want 0", got)
	}
}

func TestDownAttackPogoBounce(t *testing.T) {
	w := worldWithFloor(Hooks{})
	p := w.SpawnPlayer(cp.Vector{X: 0, Y: 60})
	e, err := w.SpawnEnemy("walker", cp.Vector{X: 0, Y: 16})
	if err != nil {
		t.Fatalf("SpawnEnemy() err = %v", err)
	}

	// spend the air jump so the pogo can refund it
	p.airJumps = 1

	w.Update(Input{AttackPressed: true, MoveY: -1}, tick)

	if got := e.Health; got != 2 {
		t.Fatalf("enemy health = %d, want 2", got)
	}
	if !p.RecoilingY() {
		t.Fatal("pogo should start the vertical recoil")
	}
	if got := p.Body.Velocity().Y; got != 300 {
		t.Fatalf("pogo velocity = %v, want exactly 300 with gravity suspended", got)
	}
	if p.airJumps != 0 {
		t.Fatalf("air jumps after pogo = %d, want refunded to 0", p.airJumps)
	}

	// gravity stays off while the bounce window holds
	stepWorld(w, Input{}, 2)
	if got := p.Body.Velocity().Y; got != 300 {
		t.Fatalf("velocity during bounce window = %v, want 300", got)
	}

	// window closes, gravity comes back
	stepWorld(w, Input{}, 8)
	if got := p.Body.Velocity().Y; got >= 300 {
		t.Fatalf("velocity after bounce window = %v, want decaying", got)
	}
}

func TestGroundedDownInputFallsBackToSideAttack(t *testing.T) {
	effects := &recordEffects{}
	w := worldWithFloor(Hooks{Effects: effects})
	w.SpawnPlayer(cp.Vector{X: 0, Y: 22})
	settle(w, 30)

	w.Update(Input{AttackPressed: true, MoveY: -1}, tick)

	if effects.count("slash_side") != 1 || effects.count("slash_down") != 0 {
		t.Fatalf("effects = %v, want a side slash while grounded", effects.names)
	}
}

func TestUpAttackRecoilsDownward(t *testing.T) {
	w := worldWithFloor(Hooks{})
	p := w.SpawnPlayer(cp.Vector{X: 0, Y: 60})
	// park a flier in the overhead hitbox
	e, err := w.SpawnEnemy("flier", cp.Vector{X: 0, Y: 95})
	if err != nil {
		t.Fatalf("SpawnEnemy() err = %v", err)
	}

	w.Update(Input{AttackPressed: true, MoveY: 1}, tick)

	if got := e.Health; got != 2 {
		t.Fatalf("enemy health = %d, want 2", got)
	}
	if !p.RecoilingY() {
		t.Fatal("upward slash should recoil the attacker")
	}
	if got := p.Body.Velocity().Y; got != -300 {
		t.Fatalf("recoil velocity = %v, want pushed down at -300", got)
	}
}

func TestTakeDamageInvincibilityAndFlicker(t *testing.T) {
	w := worldWithFloor(Hooks{})
	p := w.SpawnPlayer(cp.Vector{X: 0, Y: 22})
	settle(w, 30)

	if !p.TakeDamage(1, cp.Vector{X: 1, Y: 0.1}) {
		t.Fatal("first hit did not land")
	}
	if got := p.Health.Value(); got != 4 {
		t.Fatalf("health = %d, want 4", got)
	}
	if !p.State.Invincible {
		t.Fatal("invincibility window did not open")
	}
	if !p.RecoilingX() {
		t.Fatal("mostly horizontal hit should recoil on X")
	}
	if p.RecoilingY() {
		t.Fatal("mostly horizontal hit should not recoil on Y")
	}

	if p.TakeDamage(1, cp.Vector{X: 1}) {
		t.Fatal("hit landed through invincibility")
	}

	// sprite flickers somewhere inside the window
	sawHidden := false
	for i := 0; i < 15; i++ {
		w.Update(Input{}, tick)
		if !p.State.Visible {
			sawHidden = true
		}
	}
	if !sawHidden {
		t.Fatal("sprite never flickered while invincible")
	}

	stepWorld(w, Input{}, 50)
	if p.State.Invincible {
		t.Fatal("invincibility window never closed")
	}
	if !p.State.Visible {
		t.Fatal("sprite should be visible once the window closes")
	}

	if !p.TakeDamage(1, cp.Vector{X: -1}) {
		t.Fatal("hit after the window should land")
	}
}

func TestAttackStrikesEveryTargetInTheBox(t *testing.T) {
	effects := &recordEffects{}
	w := worldWithFloor(Hooks{Effects: effects})
	p := w.SpawnPlayer(cp.Vector{X: 0, Y: 22})
	settle(w, 30)

	e, err := w.SpawnEnemy("walker", cp.Vector{X: 27, Y: 16})
	if err != nil {
		t.Fatalf("SpawnEnemy() err = %v", err)
	}
	crate := w.SpawnBreakable(cp.Vector{X: 35, Y: 20}, 10, 40, 1)

	p.Mana.Set(0)
	w.Update(Input{AttackPressed: true}, tick)

	if got := e.Health; got != 2 {
		t.Fatalf("enemy health = %d, want 2", got)
	}
	if !crate.Broken() {
		t.Fatal("crate inside the same swing should shatter")
	}
	if got := p.Mana.Value(); got != 0.25 {
		t.Fatalf("mana = %v, want 0.25 (one enemy, crate grants none)", got)
	}
	if effects.count("enemy_hurt") != 1 || effects.count("shatter") != 1 {
		t.Fatalf("effects = %v, want one enemy_hurt and one shatter", effects.names)
	}
}

func TestGroundedHitCancelsVerticalRecoil(t *testing.T) {
	w := worldWithFloor(Hooks{})
	p := w.SpawnPlayer(cp.Vector{X: 0, Y: 22})
	settle(w, 30)

	if !p.TakeDamage(1, cp.Vector{Y: -1}) {
		t.Fatal("hit did not land")
	}
	if !p.RecoilingY() {
		t.Fatal("downward hit should start the vertical recoil")
	}

	// standing on the floor clears it before it can shove anywhere
	w.Update(Input{}, tick)
	if p.RecoilingY() {
		t.Fatal("grounded player kept the vertical recoil")
	}
}
