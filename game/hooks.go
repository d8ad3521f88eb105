package game

import "github.com/jakecoffman/cp"

// CueSink receives animation cues for one entity. Renderers register
// one per entity they draw; the default sink discards everything.
type CueSink interface {
	Cue(name string)
}

type nopCue struct{}

func (nopCue) Cue(string) {}

// Effects spawns transient visuals at a point: slashes, blood, dust.
type Effects interface {
	Spawn(name string, at cp.Vector)
}

// Screens shows the terminal overlays.
type Screens interface {
	ShowDeath()
	ShowWin()
}

// Scenes loads another scene by name.
type Scenes interface {
	Load(name string)
}

// Hooks bundles the outward-facing collaborators handed to a World.
// The zero value is safe: every nil field is a no-op, so headless
// simulations run without any presentation layer attached.
type Hooks struct {
	Effects Effects
	Screens Screens
	Scenes  Scenes
}

func (h Hooks) spawn(name string, at cp.Vector) {
	if h.Effects != nil {
		h.Effects.Spawn(name, at)
	}
}

func (h Hooks) showDeath() {
	if h.Screens != nil {
		h.Screens.ShowDeath()
	}
}

func (h Hooks) showWin() {
	if h.Screens != nil {
		h.Screens.ShowWin()
	}
}

func (h Hooks) loadScene(name string) {
	if h.Scenes != nil {
		h.Scenes.Load(name)
	}
}
