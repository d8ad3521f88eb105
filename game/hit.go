package game

import "github.com/jakecoffman/cp"

// Hittable is anything an attack overlap can strike. dir is the unit
// direction the target should be pushed, force the pre-factor speed.
type Hittable interface {
	Hit(damage int, dir cp.Vector, force float64)
}

// ManaSource marks hit targets that refill the attacker's mana.
// Props absorb hits without granting anything.
type ManaSource interface {
	GrantsMana() bool
}

// normalizeOr returns v normalized, or fallback for degenerate input.
func normalizeOr(v, fallback cp.Vector) cp.Vector {
	if v.Dot(v) < 1e-12 {
		return fallback
	}
	return v.Normalize()
}
