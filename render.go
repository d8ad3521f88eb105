package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/metroidvania/game"
)

// Camera tracks a world-space focus point. The world is y-up; ToScreen
// flips into ebiten's y-down screen space around the view center.
type Camera struct {
	pos cp.Vector
}

func NewCamera() *Camera {
	return &Camera{}
}

func (c *Camera) Snap(at cp.Vector) {
	c.pos = at
}

func (c *Camera) Follow(target cp.Vector, dt float64) {
	t := 1 - math.Exp(-8*dt)
	c.pos.X += (target.X - c.pos.X) * t
	c.pos.Y += (target.Y - c.pos.Y) * t
}

func (c *Camera) ToScreen(world cp.Vector) (float32, float32) {
	sx := baseWidth/2 + (world.X - c.pos.X)
	sy := baseHeight/2 - (world.Y - c.pos.Y)
	return float32(sx), float32(sy)
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x16, G: 0x16, B: 0x1e, A: 0xff})

	for _, r := range g.arena.Terrain {
		g.drawRect(screen, cp.Vector{X: r.X, Y: r.Y}, r.Width, r.Height, colornames.Darkslategray, colornames.Slategray)
	}

	for _, b := range g.world.Breakables() {
		g.drawRect(screen, b.Body.Position(), b.Width, b.Height, colornames.Peru, colornames.Burlywood)
	}

	for _, e := range g.world.Enemies() {
		clr := enemyColor(e)
		if f := g.enemyFlashes[e]; f != nil && f.Active() {
			clr = colornames.White
		}
		w, h := e.Size()
		pos := e.Body.Position()
		g.drawRect(screen, pos, w, h, clr, colornames.Black)
		if e.Alive {
			g.drawFacingMark(screen, pos, e.Facing, w)
		}
	}

	g.drawPlayer(screen)

	for _, fx := range g.effects.Live() {
		g.drawEffect(screen, fx)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	p := g.world.Player()
	if !p.State.Visible {
		return
	}
	clr := colornames.Ghostwhite
	switch {
	case g.playerFlash.Active():
		clr = colornames.White
	case p.State.Dashing:
		clr = colornames.Lightsteelblue
	case p.State.Healing:
		clr = colornames.Mediumspringgreen
	}
	w, h := p.Size()
	pos := p.Body.Position()
	g.drawRect(screen, pos, w, h, clr, colornames.Black)

	facing := 1.0
	if !p.State.FacingRight {
		facing = -1.0
	}
	g.drawFacingMark(screen, pos, facing, w)
}

// drawRect fills and outlines a centered world-space box.
func (g *Game) drawRect(screen *ebiten.Image, center cp.Vector, w, h float64, fill, stroke color.Color) {
	sx, sy := g.camera.ToScreen(cp.Vector{X: center.X - w/2, Y: center.Y + h/2})
	vector.FillRect(screen, sx, sy, float32(w), float32(h), fill, false)
	vector.StrokeRect(screen, sx, sy, float32(w), float32(h), 1.0, stroke, false)
}

// drawFacingMark puts a small notch on the side an entity is facing,
// since featureless boxes don't read otherwise.
func (g *Game) drawFacingMark(screen *ebiten.Image, center cp.Vector, facing, width float64) {
	front := cp.Vector{X: center.X + facing*width/2, Y: center.Y}
	sx, sy := g.camera.ToScreen(front)
	vector.FillRect(screen, sx-2, sy-2, 4, 4, colornames.Black, false)
}

// drawEffect draws a burst as an expanding ring that fades out.
func (g *Game) drawEffect(screen *ebiten.Image, fx Effect) {
	t := fx.Age / fx.TTL
	size := 6 + 26*t
	base := effectColor(fx.Name)
	faded := color.NRGBA{R: base.R, G: base.G, B: base.B, A: uint8(255 * (1 - t))}
	sx, sy := g.camera.ToScreen(cp.Vector{X: fx.Pos.X - size/2, Y: fx.Pos.Y + size/2})
	vector.StrokeRect(screen, sx, sy, float32(size), float32(size), 2.0, faded, false)
}

func enemyColor(e *game.Enemy) color.RGBA {
	if !e.Alive {
		return colornames.Dimgray
	}
	switch e.State {
	case game.StateStunned:
		return colornames.Plum
	case game.StateSurprised:
		return colornames.Orange
	case game.StateCharge:
		return colornames.Orangered
	default:
		return colornames.Crimson
	}
}
