package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultStarfallConfig(t *testing.T) {
	cfg := DefaultStarfallConfig()

	if cfg.Player.Speed <= 0 {
		t.Error("Player speed must be positive")
	}
	if cfg.Combat.FireCooldownTicks <= 0 {
		t.Error("Fire cooldown must be positive")
	}
	if cfg.Combat.HitRadius <= 0 || cfg.Combat.PlayerHitRadius <= 0 {
		t.Error("Hit radii must be positive")
	}
	if cfg.Gameplay.Lives <= 0 {
		t.Error("Lives must be positive")
	}
	if cfg.Gameplay.LevelThreshold <= 0 {
		t.Error("Level threshold must be positive")
	}
	if cfg.Spawning.BaseChance <= 0 || cfg.Spawning.BaseChance >= 1 {
		t.Errorf("Base spawn chance should be a small probability, got %f", cfg.Spawning.BaseChance)
	}
}

func TestGetDefaultYAML(t *testing.T) {
	for _, id := range []string{"starfall", "oddtile"} {
		if len(GetDefaultYAML(id)) == 0 {
			t.Errorf("Embedded default YAML for %q should not be empty", id)
		}
	}
	if GetDefaultYAML("unknown") != nil {
		t.Error("Unknown game should have no default YAML")
	}
}

func TestDefaultOddTileConfig(t *testing.T) {
	cfg := DefaultOddTileConfig()

	if cfg.Grid.MinSize < 2 {
		t.Error("Minimum grid must be at least 2x2")
	}
	if cfg.Grid.MaxSize < cfg.Grid.MinSize {
		t.Error("Max grid size must not be below min")
	}
	if cfg.Round.BaseDelta < cfg.Round.MinDelta {
		t.Error("Base delta must not be below min delta")
	}
	if cfg.Round.MinDelta < 1 {
		t.Error("Min delta below 1 would make tiles identical")
	}
	if cfg.Round.TimeLimitTicks <= 0 {
		t.Error("Round time limit must be positive")
	}
}

func TestDefaultYAMLMatchesHardcoded(t *testing.T) {
	// The embedded YAML and the hardcoded fallback must agree, otherwise
	// behavior depends on which loading path happened to win.
	sf, err := LoadStarfall("")
	if err != nil {
		t.Fatalf("LoadStarfall failed: %v", err)
	}
	if sf.Gameplay.LevelThreshold != DefaultStarfallConfig().Gameplay.LevelThreshold {
		t.Errorf("Embedded starfall threshold %d != hardcoded %d",
			sf.Gameplay.LevelThreshold, DefaultStarfallConfig().Gameplay.LevelThreshold)
	}
	if sf.Difficulty != DefaultStarfallConfig().Difficulty {
		t.Errorf("Embedded starfall difficulty %+v != hardcoded %+v",
			sf.Difficulty, DefaultStarfallConfig().Difficulty)
	}

	ot, err := LoadOddTile("")
	if err != nil {
		t.Fatalf("LoadOddTile failed: %v", err)
	}
	if ot.Round.BaseDelta != DefaultOddTileConfig().Round.BaseDelta {
		t.Errorf("Embedded oddtile base delta %d != hardcoded %d",
			ot.Round.BaseDelta, DefaultOddTileConfig().Round.BaseDelta)
	}
}

func TestLoadStarfallCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "starfall.yaml")

	yaml := `
player:
  speed: 1.25
gameplay:
  lives: 7
  level_threshold: 250
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := LoadStarfall(path)
	if err != nil {
		t.Fatalf("LoadStarfall(%q) failed: %v", path, err)
	}

	if cfg.Player.Speed != 1.25 {
		t.Errorf("Expected speed 1.25, got %f", cfg.Player.Speed)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Expected 7 lives, got %d", cfg.Gameplay.Lives)
	}
	if cfg.Gameplay.LevelThreshold != 250 {
		t.Errorf("Expected threshold 250, got %d", cfg.Gameplay.LevelThreshold)
	}
}

func TestLoadStarfallMissingCustomPath(t *testing.T) {
	_, err := LoadStarfall("/nonexistent/starfall.yaml")
	if err == nil {
		t.Error("Missing explicit config path should be an error")
	}
}

func TestLoadOddTileCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "oddtile.yaml")

	yaml := `
grid:
  min_size: 3
  max_size: 8
round:
  base_delta: 2
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := LoadOddTile(path)
	if err != nil {
		t.Fatalf("LoadOddTile(%q) failed: %v", path, err)
	}

	if cfg.Grid.MinSize != 3 || cfg.Grid.MaxSize != 8 {
		t.Errorf("Unexpected grid config: %+v", cfg.Grid)
	}
	if cfg.Round.BaseDelta != 2 {
		t.Errorf("Expected base delta 2, got %d", cfg.Round.BaseDelta)
	}
}

func TestApplyStarfallPreset(t *testing.T) {
	easy := DefaultStarfallConfig()
	ApplyStarfallPreset(&easy, DifficultyEasy)
	if easy.Gameplay.Lives != 5 {
		t.Errorf("Easy preset should grant 5 lives, got %d", easy.Gameplay.Lives)
	}

	hard := DefaultStarfallConfig()
	ApplyStarfallPreset(&hard, DifficultyHard)
	if hard.Gameplay.Lives != 2 {
		t.Errorf("Hard preset should grant 2 lives, got %d", hard.Gameplay.Lives)
	}
	if hard.Spawning.BaseChance <= easy.Spawning.BaseChance {
		t.Error("Hard preset should spawn more often than easy")
	}

	fixed := DefaultStarfallConfig()
	ApplyStarfallPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("Fixed preset should disable progression")
	}
}

func TestApplyOddTilePreset(t *testing.T) {
	hard := DefaultOddTileConfig()
	ApplyOddTilePreset(&hard, DifficultyHard)
	if hard.Gameplay.Lives != 2 {
		t.Errorf("Hard preset should grant 2 lives, got %d", hard.Gameplay.Lives)
	}
	if hard.Round.BaseDelta != 2 {
		t.Errorf("Hard preset should tighten base delta, got %d", hard.Round.BaseDelta)
	}
	if hard.Difficulty.InitialLevel != InitialLevelForPreset(DifficultyHard) {
		t.Errorf("Hard preset should set initial level %f, got %f",
			InitialLevelForPreset(DifficultyHard), hard.Difficulty.InitialLevel)
	}
}

func TestInitialLevelForPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected float64
	}{
		{DifficultyEasy, 0.0},
		{DifficultyNormal, 0.3},
		{DifficultyHard, 0.7},
		{DifficultyFixed, 0.0},
		{"", 0.0},
	}

	for _, tc := range tests {
		if got := InitialLevelForPreset(tc.preset); got != tc.expected {
			t.Errorf("InitialLevelForPreset(%q) = %f, expected %f", tc.preset, got, tc.expected)
		}
	}
}
