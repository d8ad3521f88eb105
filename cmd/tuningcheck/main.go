package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/milk9111/metroidvania/config"
	"github.com/milk9111/metroidvania/game"
)

// tuningcheck validates the yaml specs and runs a short headless
// simulation so bad edits surface before launching the game.
func main() {
	tuningName := flag.String("tuning", "tuning.yaml", "tuning spec in config/")
	arenaName := flag.String("arena", "arena.yaml", "arena spec in config/")
	steps := flag.Int("steps", 600, "headless simulation steps to run after validation")
	flag.Parse()

	tuning, err := config.LoadTuning(*tuningName)
	if err != nil {
		log.Fatalf("tuning: %v", err)
	}
	arena, err := config.LoadArena(*arenaName)
	if err != nil {
		log.Fatalf("arena: %v", err)
	}
	if err := tuning.Validate(); err != nil {
		log.Fatalf("tuning invalid: %v", err)
	}
	if err := arena.Validate(tuning); err != nil {
		log.Fatalf("arena %s invalid: %v", arena.Name, err)
	}

	fmt.Printf("tuning ok: gravity %.0f, %d enemy kinds (%s)\n",
		tuning.World.Gravity, len(tuning.Enemies), specSource(*tuningName))
	kinds := make([]string, 0, len(tuning.Enemies))
	for kind := range tuning.Enemies {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		spec := tuning.Enemies[kind]
		arch := spec.Archetype
		if arch == "" {
			arch = kind
		}
		fmt.Printf("  %-10s archetype %-8s health %d  speed %.0f  contact %d\n",
			kind, arch, spec.Health, spec.Speed, spec.ContactDamage)
	}
	fmt.Printf("arena ok: %s (%d terrain, %d enemies, %d breakables) (%s)\n",
		arena.Name, len(arena.Terrain), len(arena.Enemies), len(arena.Breakables), specSource(*arenaName))

	world := game.NewWorld(tuning, game.Hooks{}, 1)
	if err := world.LoadArena(arena); err != nil {
		log.Fatalf("load arena: %v", err)
	}
	for i := 0; i < *steps; i++ {
		world.Update(game.Input{}, 1.0/60.0)
	}

	p := world.Player()
	pos := p.Body.Position()
	alive := 0
	for _, e := range world.Enemies() {
		if e.Alive {
			alive++
		}
	}
	fmt.Printf("after %d idle steps: player at (%.1f, %.1f) grounded=%v health=%d, %d/%d enemies alive\n",
		*steps, pos.X, pos.Y, p.Grounded(), p.Health.Value(), alive, len(arena.Enemies))
	if !p.State.Alive {
		log.Fatalf("player died while idling at spawn; contact damage reaches the spawn point")
	}
}

// specSource says which copy of a spec the game will actually read.
func specSource(name string) string {
	if mod, ok := config.ModTime(name); ok {
		return fmt.Sprintf("disk copy from %s", mod.Format(time.DateTime))
	}
	return "embedded defaults"
}
