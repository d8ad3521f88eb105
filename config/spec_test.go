package config

import (
	"errors"
	"testing"
)

func TestLoadTuningDefaults(t *testing.T) {
	tuning, err := LoadTuning("tuning.yaml")
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}

	if tuning.World.Gravity <= 0 {
		t.Fatalf("expected positive gravity, got %v", tuning.World.Gravity)
	}
	if tuning.Player.MaxHealth <= 0 {
		t.Fatalf("expected positive max health, got %d", tuning.Player.MaxHealth)
	}
	if tuning.Player.MaxAirJumps < 1 {
		t.Fatalf("expected at least one air jump, got %d", tuning.Player.MaxAirJumps)
	}

	for _, kind := range []string{"crawler", "bat", "charger"} {
		if _, ok := tuning.Enemies[kind]; !ok {
			t.Fatalf("missing enemy kind %q in defaults", kind)
		}
	}
	if !tuning.Enemies["bat"].Flying {
		t.Fatal("bat should be flying")
	}
	if tuning.Enemies["bat"].DespawnMax < tuning.Enemies["bat"].DespawnMin {
		t.Fatal("bat despawn range inverted")
	}
}

func TestTuningValidate(t *testing.T) {
	valid := func() *TuningSpec {
		tuning, err := LoadTuning("tuning.yaml")
		if err != nil {
			t.Fatalf("LoadTuning: %v", err)
		}
		return tuning
	}

	cases := []struct {
		name   string
		mutate func(*TuningSpec)
	}{
		{"zero gravity", func(s *TuningSpec) { s.World.Gravity = 0 }},
		{"stop scale above one", func(s *TuningSpec) { s.World.ContactStop.Scale = 1.5 }},
		{"zero max health", func(s *TuningSpec) { s.Player.MaxHealth = 0 }},
		{"zero walk speed", func(s *TuningSpec) { s.Player.WalkSpeed = 0 }},
		{"zero heal timer", func(s *TuningSpec) { s.Player.TimeToHeal = 0 }},
		{"dead enemy kind", func(s *TuningSpec) {
			e := s.Enemies["crawler"]
			e.Health = 0
			s.Enemies["crawler"] = e
		}},
		{"inverted despawn range", func(s *TuningSpec) {
			e := s.Enemies["bat"]
			e.DespawnMin = 20
			s.Enemies["bat"] = e
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tuning := valid()
			tc.mutate(tuning)
			if err := tuning.Validate(); !errors.Is(err, ErrBadSpec) {
				t.Fatalf("expected ErrBadSpec, got %v", err)
			}
		})
	}
}

func TestLoadArenaDefaults(t *testing.T) {
	tuning, err := LoadTuning("tuning.yaml")
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	arena, err := LoadArena("arena.yaml")
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}

	if len(arena.Terrain) == 0 {
		t.Fatal("default arena has no terrain")
	}
	if err := arena.Validate(tuning); err != nil {
		t.Fatalf("default arena should validate: %v", err)
	}

	won := false
	for _, sp := range arena.Enemies {
		if sp.WinOnDeath {
			won = true
		}
	}
	if !won {
		t.Fatal("default arena needs a win_on_death enemy")
	}
}

func TestArenaValidateUnknownKind(t *testing.T) {
	tuning, err := LoadTuning("tuning.yaml")
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}

	arena := &ArenaSpec{
		Enemies: []SpawnSpec{{Kind: "slime", X: 10, Y: 10}},
	}
	if err := arena.Validate(tuning); !errors.Is(err, ErrUnknownEnemyKind) {
		t.Fatalf("expected ErrUnknownEnemyKind, got %v", err)
	}
}
