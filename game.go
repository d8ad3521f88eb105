package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/metroidvania/config"
	"github.com/milk9111/metroidvania/game"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

// tick is the fixed simulation step. Ebiten calls Update at 60 TPS.
const tick = 1.0 / 60.0

type Game struct {
	frames int
	debug  bool

	input   *Input
	effects *Effects
	camera  *Camera
	hud     *HUD

	tuning    *config.TuningSpec
	arena     *config.ArenaSpec
	arenaFile string

	world        *game.World
	playerFlash  *flash
	enemyFlashes map[*game.Enemy]*flash

	watcher *config.Watcher

	paused     bool
	deathShown bool
	winShown   bool
	quit       bool

	// pendingScene holds a scene load requested by the world mid-update;
	// the swap happens at a frame boundary.
	pendingScene string

	pauseUI *ebitenui.UI
	deathUI *ebitenui.UI
	winUI   *ebitenui.UI
}

func NewGame(arenaName string, debug bool) (*Game, error) {
	arenaFile := specFileName(arenaName)

	tuning, err := config.LoadTuning("tuning.yaml")
	if err != nil {
		return nil, fmt.Errorf("load tuning: %w", err)
	}
	arena, err := config.LoadArena(arenaFile)
	if err != nil {
		return nil, fmt.Errorf("load arena %s: %w", arenaFile, err)
	}

	g := &Game{
		debug:     debug,
		input:     NewInput(),
		effects:   NewEffects(),
		camera:    NewCamera(),
		hud:       NewHUD(),
		tuning:    tuning,
		arena:     arena,
		arenaFile: arenaFile,
	}
	if err := g.buildWorld(); err != nil {
		return nil, err
	}

	g.pauseUI = NewPauseUI(g)
	g.deathUI = NewDeathUI(g)
	g.winUI = NewWinUI(g)

	// Hot reload is best effort; without a config/ directory on disk the
	// embedded specs are all there is.
	if watcher, err := config.NewWatcher("config"); err != nil {
		log.Printf("config watch disabled: %v", err)
	} else {
		g.watcher = watcher
	}

	return g, nil
}

// buildWorld constructs a fresh world from the current tuning and arena
// specs and rewires everything that hangs off the old one: cue sinks,
// HUD subscriptions, camera.
func (g *Game) buildWorld() error {
	world := game.NewWorld(g.tuning, game.Hooks{Effects: g.effects, Screens: g, Scenes: g}, time.Now().UnixNano())
	if err := world.LoadArena(g.arena); err != nil {
		return err
	}
	g.world = world

	g.playerFlash = &flash{}
	world.Player().SetCue(g.playerFlash)
	g.enemyFlashes = make(map[*game.Enemy]*flash, len(world.Enemies()))
	for _, e := range world.Enemies() {
		f := &flash{}
		e.SetCue(f)
		g.enemyFlashes[e] = f
	}

	g.camera.Snap(world.Player().Body.Position())
	g.hud.observe(world.Player(), g.arena.Name)
	return nil
}

// ShowDeath implements game.Screens.
func (g *Game) ShowDeath() {
	g.deathShown = true
}

// ShowWin implements game.Screens.
func (g *Game) ShowWin() {
	g.winShown = true
}

// Load implements game.Scenes. The world calls this during respawn; the
// actual swap waits for the frame boundary.
func (g *Game) Load(name string) {
	g.pendingScene = name
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++

	g.pollConfig()
	g.input.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && !g.deathShown && !g.winShown {
		g.paused = !g.paused
	}

	switch {
	case g.deathShown:
		g.deathUI.Update()
	case g.winShown:
		g.winUI.Update()
	case g.paused:
		g.pauseUI.Update()
	default:
		g.world.Update(g.input.Current, tick)
		g.camera.Follow(g.world.Player().Body.Position(), tick)
	}

	g.effects.Update(tick)
	g.playerFlash.Update(tick)
	for _, f := range g.enemyFlashes {
		f.Update(tick)
	}

	if g.pendingScene != "" {
		name := g.pendingScene
		g.pendingScene = ""
		if err := g.reloadScene(name); err != nil {
			return err
		}
	}

	return nil
}

// reloadScene rebuilds the world from the named arena spec. Respawn
// funnels through here so enemies and props come back too.
func (g *Game) reloadScene(name string) error {
	// Scene names need not match spec filenames; the current arena
	// reloads from wherever it was loaded.
	file := specFileName(name)
	if name == g.arena.Name {
		file = g.arenaFile
	}
	arena, err := config.LoadArena(file)
	if err != nil {
		return fmt.Errorf("reload arena %s: %w", name, err)
	}
	g.arena = arena
	g.arenaFile = file
	if err := g.buildWorld(); err != nil {
		return err
	}
	g.deathShown = false
	g.winShown = false
	return nil
}

// pollConfig drains watcher events without blocking. Tuning edits retune
// the live world; arena edits rebuild the stage.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if filepath.Base(path) == filepath.Base(g.arenaFile) {
				if err := g.reloadScene(g.arena.Name); err != nil {
					log.Printf("arena reload: %v", err)
				}
				continue
			}
			tuning, err := config.LoadTuning("tuning.yaml")
			if err != nil {
				log.Printf("tuning reload: %v", err)
				continue
			}
			if err := g.world.Retune(tuning); err != nil {
				log.Printf("retune: %v", err)
				continue
			}
			log.Printf("retuned from %s", filepath.Base(path))
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("config watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawWorld(screen)
	g.hud.Draw(screen)

	switch {
	case g.deathShown:
		g.deathUI.Draw(screen)
	case g.winShown:
		g.winUI.Draw(screen)
	case g.paused:
		g.pauseUI.Draw(screen)
	}

	if g.debug {
		g.drawDebug(screen)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	p := g.world.Player()
	vel := p.Body.Velocity()
	pos := p.Body.Position()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"Frames: %d    FPS: %.2f\npos (%.0f, %.0f)  vel (%.0f, %.0f)\ngrounded %v  scale %.2f  cue %s",
		g.frames, ebiten.ActualFPS(),
		pos.X, pos.Y, vel.X, vel.Y,
		p.Grounded(), g.world.Clock().Scale(), g.playerFlash.Name,
	))
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// specFileName appends .yaml when the name has no spec extension, so
// -arena accepts bare basenames.
func specFileName(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".yaml" || ext == ".yml" {
		return name
	}
	return name + ".yaml"
}
