package game

import "github.com/jakecoffman/cp"

// Breakable is a static prop attacks can smash: it absorbs hits
// without granting mana and shatters at zero health.
type Breakable struct {
	Body  *cp.Body
	Shape *cp.Shape

	Health int
	Width  float64
	Height float64

	world  *World
	broken bool
}

func (b *Breakable) Broken() bool {
	return b.broken
}

func (b *Breakable) Hit(damage int, dir cp.Vector, force float64) {
	if b.broken {
		return
	}
	b.Health -= damage
	if b.Health > 0 {
		b.world.hooks.spawn("chip", b.Body.Position())
		return
	}
	b.broken = true
	b.world.hooks.spawn("shatter", b.Body.Position())
}
