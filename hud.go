package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/metroidvania/game"
)

// HUD mirrors the player's vitals through stat subscriptions so drawing
// never reaches back into the world.
type HUD struct {
	health    int
	maxHealth int
	mana      float64
	arena     string

	face ebtext.Face
}

func NewHUD() *HUD {
	return &HUD{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

// observe seeds the HUD from the player's current vitals and subscribes
// for changes. Called again after every world rebuild.
func (h *HUD) observe(p *game.Player, arena string) {
	h.arena = arena
	h.health = p.Health.Value()
	h.maxHealth = p.Health.Max()
	h.mana = p.Mana.Value()
	p.Health.Subscribe(func(value, max int) {
		h.health = value
		h.maxHealth = max
	})
	p.Mana.Subscribe(func(value float64) {
		h.mana = value
	})
}

func (h *HUD) Draw(screen *ebiten.Image) {
	// Health pips across the top left.
	for i := 0; i < h.maxHealth; i++ {
		x := float32(16 + i*24)
		if i < h.health {
			vector.FillRect(screen, x, 16, 18, 18, colornames.Crimson, false)
		}
		vector.StrokeRect(screen, x, 16, 18, 18, 1.0, colornames.Gainsboro, false)
	}

	// Mana bar under the pips.
	vector.StrokeRect(screen, 16, 42, 120, 8, 1.0, colornames.Gainsboro, false)
	if h.mana > 0 {
		vector.FillRect(screen, 16, 42, float32(120*h.mana), 8, colornames.Deepskyblue, false)
	}

	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(16, 56)
	op.ColorScale.ScaleWithColor(colornames.Gainsboro)
	ebtext.Draw(screen, h.arena, h.face, op)
}
