package game

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/metroidvania/config"
	"github.com/milk9111/metroidvania/physics"
)

// World owns one simulation: the physics space, the combat clock, the
// player, and every enemy and prop in the arena. It is not safe for
// concurrent use; the caller drives Update from a single loop.
type World struct {
	space *physics.Space
	clock *Clock
	hooks Hooks
	rng   *rand.Rand

	tuning      *config.TuningSpec
	enemyTuning map[string]*config.EnemySpec

	player     *Player
	enemies    []*Enemy
	breakables []*Breakable

	arenaName string
	spawn     cp.Vector
}

// NewWorld builds an empty world from tuning. Hooks may be zero for
// headless runs; seed feeds the despawn jitter.
func NewWorld(tuning *config.TuningSpec, hooks Hooks, seed int64) *World {
	w := &World{
		space:       physics.NewSpace(tuning.World.Gravity),
		clock:       NewClock(),
		hooks:       hooks,
		rng:         rand.New(rand.NewSource(seed)),
		tuning:      tuning,
		enemyTuning: make(map[string]*config.EnemySpec, len(tuning.Enemies)),
	}
	for kind, spec := range tuning.Enemies {
		s := spec
		w.enemyTuning[kind] = &s
	}
	return w
}

func (w *World) Clock() *Clock {
	return w.clock
}

func (w *World) Space() *physics.Space {
	return w.space
}

func (w *World) Player() *Player {
	return w.player
}

func (w *World) Enemies() []*Enemy {
	return w.enemies
}

func (w *World) Breakables() []*Breakable {
	return w.breakables
}

func (w *World) ArenaName() string {
	return w.arenaName
}

// LoadArena builds the terrain and spawns everything the arena places.
func (w *World) LoadArena(arena *config.ArenaSpec) error {
	if err := arena.Validate(w.tuning); err != nil {
		return err
	}
	w.arenaName = arena.Name
	w.spawn = cp.Vector{X: arena.SpawnX, Y: arena.SpawnY}

	for _, box := range arena.Terrain {
		w.space.AddTerrainBox(cp.Vector{X: box.X, Y: box.Y}, box.Width, box.Height)
	}
	w.SpawnPlayer(w.spawn)
	for _, sp := range arena.Enemies {
		e, err := w.SpawnEnemy(sp.Kind, cp.Vector{X: sp.X, Y: sp.Y})
		if err != nil {
			return err
		}
		e.WinOnDeath = sp.WinOnDeath
	}
	for _, b := range arena.Breakables {
		w.SpawnBreakable(cp.Vector{X: b.X, Y: b.Y}, b.Width, b.Height, b.Health)
	}
	return nil
}

// SpawnPlayer creates the controllable character. A world holds at
// most one; spawning again replaces it.
func (w *World) SpawnPlayer(pos cp.Vector) *Player {
	if w.player != nil {
		w.space.Remove(w.player.Body)
	}
	tun := &w.tuning.Player
	body, shape := w.space.AddPlayer(pos, tun.Width, tun.Height)
	p := &Player{
		Body:    body,
		Shape:   shape,
		Health:  NewStat(tun.MaxHealth),
		Mana:    NewMeter(1),
		world:   w,
		tun:     tun,
		cue:     nopCue{},
		canDash: true,
		// first attack should not wait out a cooldown nobody started
		sinceAttack: tun.AttackCooldown,
	}
	p.State.Alive = true
	p.State.Visible = true
	p.State.FacingRight = true
	w.player = p
	return p
}

// SpawnEnemy creates one enemy of a tuned kind at pos.
func (w *World) SpawnEnemy(kind string, pos cp.Vector) (*Enemy, error) {
	tun, ok := w.enemyTuning[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownEnemyKind, kind)
	}
	arch := tun.Archetype
	if arch == "" {
		arch = kind
	}
	behavior, ok := behaviors[arch]
	if !ok {
		return nil, fmt.Errorf("%w: %q has unknown archetype %q", config.ErrUnknownEnemyKind, kind, arch)
	}

	body, shape := w.space.AddEnemy(pos, tun.Width, tun.Height, tun.Flying)
	e := &Enemy{
		Kind:     kind,
		Body:     body,
		Shape:    shape,
		Health:   tun.Health,
		Facing:   -1,
		Alive:    true,
		Recoil:   Recoil{Duration: tun.RecoilDuration},
		world:    w,
		behavior: behavior,
		cue:      nopCue{},
		tun:      tun,
	}
	shape.UserData = e
	w.enemies = append(w.enemies, e)
	return e, nil
}

// SpawnBreakable places a static smashable prop.
func (w *World) SpawnBreakable(pos cp.Vector, width, height float64, health int) *Breakable {
	body, shape := w.space.AddProp(pos, width, height)
	b := &Breakable{
		Body:   body,
		Shape:  shape,
		Health: health,
		Width:  width,
		Height: height,
		world:  w,
	}
	shape.UserData = b
	w.breakables = append(w.breakables, b)
	return b
}

// Update advances the whole simulation by one tick of wall time.
func (w *World) Update(in Input, realDT float64) {
	dt := w.clock.Step(realDT)

	if w.player != nil {
		w.player.Update(in, dt, realDT)
	}
	for _, e := range w.enemies {
		e.Update(w, dt)
	}

	w.space.Step(dt)

	w.resolveBumps()
	w.resolveContacts()
	w.reap(dt)
}

// Respawn puts the player back at the arena spawn point and reloads
// the scene.
func (w *World) Respawn() {
	if w.player == nil {
		return
	}
	w.player.Respawn(w.spawn)
	w.clock.Normalize()
	w.hooks.loadScene(w.arenaName)
}

// Retune swaps tuning values in place so live entities pick the new
// numbers up without respawning.
func (w *World) Retune(tuning *config.TuningSpec) error {
	if err := tuning.Validate(); err != nil {
		return err
	}
	*w.tuning = *tuning
	for kind, spec := range tuning.Enemies {
		s := spec
		if p, ok := w.enemyTuning[kind]; ok {
			*p = s
		} else {
			w.enemyTuning[kind] = &s
		}
	}
	w.space.SetGravity(tuning.World.Gravity)
	return nil
}

// strike damages everything attackable inside one hitbox. Enemies top
// the attacker's mana back up; props just break.
func (w *World) strike(p *Player, center cp.Vector, width, height, force float64) bool {
	hitAny := false
	seen := make(map[Hittable]bool)
	for _, shape := range w.space.OverlapBox(center, width, height, physics.CategoryAttackable) {
		target, ok := shape.UserData.(Hittable)
		if !ok || seen[target] {
			continue
		}
		seen[target] = true
		hitAny = true

		dir := normalizeOr(shape.Body().Position().Sub(p.Body.Position()), cp.Vector{Y: 1})
		target.Hit(p.tun.Damage, dir, force)

		if src, ok := target.(ManaSource); ok && src.GrantsMana() {
			p.Mana.Add(p.tun.ManaGain)
		}
	}
	return hitAny
}

func (w *World) resolveBumps() {
	for _, pair := range w.space.DrainBumps() {
		for _, shape := range pair {
			if e, ok := shape.UserData.(*Enemy); ok && e.Alive {
				e.bumped = true
			}
		}
	}
}

// resolveContacts turns this tick's player-enemy touches into damage
// and, when the damage lands, a hit-stop.
func (w *World) resolveContacts() {
	if w.player == nil {
		return
	}
	for _, shape := range w.space.DrainPlayerContacts() {
		e, ok := shape.UserData.(*Enemy)
		if !ok || !e.Alive || e.tun.ContactDamage <= 0 {
			continue
		}
		dir := w.player.Body.Position().Sub(e.Body.Position())
		if !w.player.TakeDamage(e.tun.ContactDamage, dir) {
			continue
		}
		stop := w.tuning.World.ContactStop
		w.clock.HitStop(stop.Scale, stop.RestoreSpeed, stop.Delay)
	}
}

// reap removes despawned corpses and broken props from the space.
func (w *World) reap(dt float64) {
	live := w.enemies[:0]
	for _, e := range w.enemies {
		if !e.Alive && e.despawn.Tick(dt) {
			w.space.Remove(e.Body)
			continue
		}
		live = append(live, e)
	}
	w.enemies = live

	intact := w.breakables[:0]
	for _, b := range w.breakables {
		if b.broken {
			w.space.Remove(b.Body)
			continue
		}
		intact = append(intact, b)
	}
	w.breakables = intact
}

func (w *World) randRange(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + w.rng.Float64()*(hi-lo)
}

// groundAhead checks for floor just past the enemy's leading edge.
func (w *World) groundAhead(e *Enemy) bool {
	halfW := e.tun.Width / 2
	pos := e.Body.Position()
	origin := cp.Vector{X: pos.X + e.Facing*(halfW+2), Y: pos.Y}
	return w.space.RayHit(origin, cp.Vector{Y: -1}, e.tun.LedgeCheck, physics.CategoryTerrain)
}

// wallAhead checks for terrain in the enemy's walking direction.
func (w *World) wallAhead(e *Enemy) bool {
	pos := e.Body.Position()
	return w.space.RayHit(pos, cp.Vector{X: e.Facing}, e.tun.WallCheck, physics.CategoryTerrain)
}

// seesPlayer casts the enemy's facing sight line.
func (w *World) seesPlayer(e *Enemy, distance float64) bool {
	if w.player == nil || !w.player.State.Alive {
		return false
	}
	return w.space.RayHit(e.Body.Position(), cp.Vector{X: e.Facing}, distance, physics.CategoryPlayer)
}

func (w *World) playerDistance(e *Enemy) float64 {
	if w.player == nil || !w.player.State.Alive {
		return math.Inf(1)
	}
	return e.Body.Position().Distance(w.player.Body.Position())
}
