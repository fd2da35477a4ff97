package config

import (
	_ "embed"
)

//go:embed defaults/starfall.yaml
var defaultStarfallYAML []byte

//go:embed defaults/oddtile.yaml
var defaultOddTileYAML []byte

// DefaultStarfallConfig returns the default Starfall configuration.
func DefaultStarfallConfig() StarfallConfig {
	return StarfallConfig{
		Player: StarfallPlayer{
			Speed:              0.6,
			Margin:             1,
			InvincibilityTicks: 90,
		},
		Combat: StarfallCombat{
			FireCooldownTicks: 15,
			ProjectileSpeed:   1.0,
			HitRadius:         1.5,
			PlayerHitRadius:   2.5,
			KillReward:        100,
		},
		Spawning: StarfallSpawning{
			BaseChance:     0.02,
			ChancePerLevel: 0.01,
			SpeedBase:      0.15,
			SpeedPerLevel:  0.05,
			SpeedJitter:    0.1,
			EdgeMargin:     2,
		},
		Gameplay: StarfallGameplay{
			Lives:          3,
			LevelThreshold: 500,
			StarCount:      40,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.4,
				DeltaReduction:  0,
				TimeReduction:   0,
			},
		},
	}
}

// DefaultOddTileConfig returns the default Odd Tile configuration.
func DefaultOddTileConfig() OddTileConfig {
	return OddTileConfig{
		Grid: OddTileGrid{
			MinSize:   2,
			MaxSize:   6,
			GrowEvery: 2,
		},
		Round: OddTileRound{
			TimeLimitTicks: 600,
			BaseDelta:      3,
			MinDelta:       1,
		},
		Gameplay: OddTileGameplay{
			Lives:          3,
			PointsPerPick:  50,
			LevelThreshold: 200,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0,
				DeltaReduction:  2,
				TimeReduction:   300,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "starfall":
		return defaultStarfallYAML
	case "oddtile":
		return defaultOddTileYAML
	default:
		return nil
	}
}
