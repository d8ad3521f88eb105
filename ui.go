package main

import "github.com/ebitenui/ebitenui"

// NewDeathUI builds the overlay shown once the death screen delay runs
// out. Respawn reloads the arena through the world's scene hook, which
// brings enemies and props back along with the player.
func NewDeathUI(g *Game) *ebitenui.UI {
	return newOverlayUI("You Died",
		overlayButton{"Respawn", func() { g.world.Respawn() }},
		overlayButton{"Quit", func() { g.quit = true }},
	)
}

// NewWinUI builds the overlay shown when a win-flagged enemy falls.
func NewWinUI(g *Game) *ebitenui.UI {
	return newOverlayUI("Victory",
		overlayButton{"Play Again", func() { g.world.Respawn() }},
		overlayButton{"Quit", func() { g.quit = true }},
	)
}
