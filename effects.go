package main

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
)

// Effect is one transient burst placed in world space. The harness draws
// these as expanding fading rings since there is no sprite art.
type Effect struct {
	Name string
	Pos  cp.Vector
	Age  float64
	TTL  float64
}

// Effects collects spawned bursts and ages them out. Implements the
// world's effect hook.
type Effects struct {
	live []Effect
}

func NewEffects() *Effects {
	return &Effects{}
}

func (e *Effects) Spawn(name string, at cp.Vector) {
	e.live = append(e.live, Effect{Name: name, Pos: at, TTL: effectTTL(name)})
}

func (e *Effects) Update(dt float64) {
	kept := e.live[:0]
	for _, fx := range e.live {
		fx.Age += dt
		if fx.Age < fx.TTL {
			kept = append(kept, fx)
		}
	}
	e.live = kept
}

func (e *Effects) Live() []Effect {
	return e.live
}

func effectTTL(name string) float64 {
	switch name {
	case "death_burst", "shatter", "enemy_death":
		return 0.45
	case "dash_dust":
		return 0.3
	default:
		return 0.2
	}
}

func effectColor(name string) color.RGBA {
	switch name {
	case "slash_side", "slash_up", "slash_down":
		return colornames.Whitesmoke
	case "enemy_hurt", "blood", "death_burst":
		return colornames.Crimson
	case "enemy_death":
		return colornames.Darkorange
	case "chip", "shatter":
		return colornames.Burlywood
	case "dash_dust":
		return colornames.Lightsteelblue
	default:
		return colornames.Gold
	}
}

// flash is a per-entity cue sink. Cues stand in for audio here: the
// renderer brightens the entity briefly and the debug overlay shows the
// last cue name.
type flash struct {
	Name string
	TTL  float64
}

func (f *flash) Cue(name string) {
	f.Name = name
	f.TTL = 0.12
}

func (f *flash) Update(dt float64) {
	if f.TTL > 0 {
		f.TTL -= dt
	}
}

func (f *flash) Active() bool {
	return f.TTL > 0
}
