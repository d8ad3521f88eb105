package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownEnemyKind = errors.New("config: unknown enemy kind")
	ErrBadSpec          = errors.New("config: invalid spec")
)

// LoadSpec reads and unmarshals one yaml spec file.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("config: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("config: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// TuningSpec is the full gameplay tuning document (config/tuning.yaml).
type TuningSpec struct {
	World   WorldSpec            `yaml:"world"`
	Player  PlayerSpec           `yaml:"player"`
	Enemies map[string]EnemySpec `yaml:"enemies"`
}

type WorldSpec struct {
	// Gravity is stored positive and applied downward.
	Gravity     float64     `yaml:"gravity"`
	ContactStop HitStopSpec `yaml:"contact_stop"`
}

// HitStopSpec parameterizes the time dilation applied when the player
// takes contact damage.
type HitStopSpec struct {
	Scale        float64 `yaml:"scale"`
	RestoreSpeed float64 `yaml:"restore_speed"`
	Delay        float64 `yaml:"delay"`
}

type PlayerSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	WalkSpeed        float64 `yaml:"walk_speed"`
	JumpForce        float64 `yaml:"jump_force"`
	CoyoteTime       float64 `yaml:"coyote_time"`
	JumpBufferWindow float64 `yaml:"jump_buffer_window"`
	MaxAirJumps      int     `yaml:"max_air_jumps"`
	MaxFallSpeed     float64 `yaml:"max_fall_speed"`

	DashSpeed    float64 `yaml:"dash_speed"`
	DashTime     float64 `yaml:"dash_time"`
	DashCooldown float64 `yaml:"dash_cooldown"`

	MaxHealth      int     `yaml:"max_health"`
	Damage         int     `yaml:"damage"`
	AttackCooldown float64 `yaml:"attack_cooldown"`
	SideAttack     BoxSpec `yaml:"side_attack"`
	UpAttack       BoxSpec `yaml:"up_attack"`
	DownAttack     BoxSpec `yaml:"down_attack"`

	RecoilXSpeed float64 `yaml:"recoil_x_speed"`
	RecoilYSpeed float64 `yaml:"recoil_y_speed"`
	RecoilXSteps int     `yaml:"recoil_x_steps"`
	RecoilYSteps int     `yaml:"recoil_y_steps"`

	ManaGain       float64 `yaml:"mana_gain"`
	ManaDrainSpeed float64 `yaml:"mana_drain_speed"`
	TimeToHeal     float64 `yaml:"time_to_heal"`
	HealHold       float64 `yaml:"heal_hold"`

	InvincibleTime  float64 `yaml:"invincible_time"`
	FlickerInterval float64 `yaml:"flicker_interval"`
	DeathUIDelay    float64 `yaml:"death_ui_delay"`
}

// BoxSpec is an attack volume relative to the body center. OffsetX is
// mirrored by facing.
type BoxSpec struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

type EnemySpec struct {
	// Archetype names the behavior strategy. Empty falls back to the
	// kind name itself.
	Archetype string `yaml:"archetype"`

	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Health        int     `yaml:"health"`
	Speed         float64 `yaml:"speed"`
	ContactDamage int     `yaml:"contact_damage"`

	RecoilDuration float64 `yaml:"recoil_duration"`
	RecoilFactor   float64 `yaml:"recoil_factor"`

	// Patrol and charge walkers.
	LedgeCheck float64 `yaml:"ledge_check"`
	WallCheck  float64 `yaml:"wall_check"`
	FlipWait   float64 `yaml:"flip_wait"`

	// Chase flyers.
	Flying       bool    `yaml:"flying"`
	ChaseRange   float64 `yaml:"chase_range"`
	StunTime     float64 `yaml:"stun_time"`
	DeathGravity float64 `yaml:"death_gravity"`
	DespawnMin   float64 `yaml:"despawn_min"`
	DespawnMax   float64 `yaml:"despawn_max"`

	// Chargers.
	SightRange       float64 `yaml:"sight_range"`
	LungeX           float64 `yaml:"lunge_x"`
	LungeY           float64 `yaml:"lunge_y"`
	ChargeTime       float64 `yaml:"charge_time"`
	ChargeMultiplier float64 `yaml:"charge_multiplier"`

	Despawn float64 `yaml:"despawn"`
}

// ArenaSpec lays out one playable space: static terrain, the player
// spawn, and entity placements (config/arena.yaml).
type ArenaSpec struct {
	Name       string          `yaml:"name"`
	SpawnX     float64         `yaml:"spawn_x"`
	SpawnY     float64         `yaml:"spawn_y"`
	Terrain    []RectSpec      `yaml:"terrain"`
	Enemies    []SpawnSpec     `yaml:"enemies"`
	Breakables []BreakableSpec `yaml:"breakables"`
}

// RectSpec is a centered box: X,Y is the center.
type RectSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type SpawnSpec struct {
	Kind       string  `yaml:"kind"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	WinOnDeath bool    `yaml:"win_on_death"`
}

type BreakableSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Health int     `yaml:"health"`
}

func LoadTuning(name string) (*TuningSpec, error) {
	spec, err := LoadSpec[TuningSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func LoadArena(name string) (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec](name)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func (t *TuningSpec) Validate() error {
	if t.World.Gravity <= 0 {
		return fmt.Errorf("%w: world.gravity must be positive", ErrBadSpec)
	}
	if t.World.ContactStop.Scale < 0 || t.World.ContactStop.Scale > 1 {
		return fmt.Errorf("%w: world.contact_stop.scale must be in [0,1]", ErrBadSpec)
	}
	p := t.Player
	if p.MaxHealth <= 0 {
		return fmt.Errorf("%w: player.max_health must be positive", ErrBadSpec)
	}
	if p.WalkSpeed <= 0 || p.JumpForce <= 0 || p.DashSpeed <= 0 {
		return fmt.Errorf("%w: player speeds must be positive", ErrBadSpec)
	}
	if p.DashTime <= 0 || p.AttackCooldown <= 0 || p.TimeToHeal <= 0 {
		return fmt.Errorf("%w: player timers must be positive", ErrBadSpec)
	}
	for kind, e := range t.Enemies {
		if e.Health <= 0 {
			return fmt.Errorf("%w: enemies.%s.health must be positive", ErrBadSpec, kind)
		}
		if e.DespawnMax < e.DespawnMin {
			return fmt.Errorf("%w: enemies.%s despawn_max < despawn_min", ErrBadSpec, kind)
		}
	}
	return nil
}

// Validate checks every placement against the tuned enemy kinds.
func (a *ArenaSpec) Validate(tuning *TuningSpec) error {
	if tuning == nil {
		return fmt.Errorf("%w: nil tuning", ErrBadSpec)
	}
	for i, sp := range a.Enemies {
		if _, ok := tuning.Enemies[sp.Kind]; !ok {
			return fmt.Errorf("%w: enemies[%d] %q", ErrUnknownEnemyKind, i, sp.Kind)
		}
	}
	return nil
}
