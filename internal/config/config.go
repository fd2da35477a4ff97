// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// StarfallConfig contains all configuration for the Starfall shooter.
type StarfallConfig struct {
	Player     StarfallPlayer   `yaml:"player"`
	Combat     StarfallCombat   `yaml:"combat"`
	Spawning   StarfallSpawning `yaml:"spawning"`
	Gameplay   StarfallGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// StarfallPlayer defines ship movement parameters.
type StarfallPlayer struct {
	Speed              float64 `yaml:"speed"`               // Cells moved per tick per held axis
	Margin             int     `yaml:"margin"`              // Clamp margin inside the playfield
	InvincibilityTicks int     `yaml:"invincibility_ticks"` // Immunity window after losing a life
}

// StarfallCombat defines firing and collision parameters.
type StarfallCombat struct {
	FireCooldownTicks int     `yaml:"fire_cooldown_ticks"` // Minimum ticks between shots
	ProjectileSpeed   float64 `yaml:"projectile_speed"`    // Upward cells per tick
	HitRadius         float64 `yaml:"hit_radius"`          // Projectile-enemy collision distance
	PlayerHitRadius   float64 `yaml:"player_hit_radius"`   // Enemy-player collision distance
	KillReward        int     `yaml:"kill_reward"`         // Score per destroyed enemy
}

// StarfallSpawning defines enemy spawn parameters.
type StarfallSpawning struct {
	BaseChance     float64 `yaml:"base_chance"`      // Per-tick spawn probability at level 1
	ChancePerLevel float64 `yaml:"chance_per_level"` // Probability added per level
	SpeedBase      float64 `yaml:"speed_base"`       // Enemy downward speed floor
	SpeedPerLevel  float64 `yaml:"speed_per_level"`  // Speed added per level
	SpeedJitter    float64 `yaml:"speed_jitter"`     // Max random speed bonus
	EdgeMargin     int     `yaml:"edge_margin"`      // Spawn x kept this far from both edges
}

// StarfallGameplay defines scoring and lifecycle parameters.
type StarfallGameplay struct {
	Lives          int `yaml:"lives"`
	LevelThreshold int `yaml:"level_threshold"` // level = score/threshold + 1
	StarCount      int `yaml:"star_count"`      // Background starfield population cap
}

// OddTileConfig contains all configuration for the Odd Tile color quiz.
type OddTileConfig struct {
	Grid       OddTileGrid     `yaml:"grid"`
	Round      OddTileRound    `yaml:"round"`
	Gameplay   OddTileGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// OddTileGrid defines the quiz board dimensions.
type OddTileGrid struct {
	MinSize   int `yaml:"min_size"`   // Board side length at level 1
	MaxSize   int `yaml:"max_size"`   // Board side length cap
	GrowEvery int `yaml:"grow_every"` // Levels between board growth steps
}

// OddTileRound defines per-round timing and color separation.
type OddTileRound struct {
	TimeLimitTicks int `yaml:"time_limit_ticks"` // Ticks before a round counts as a miss
	BaseDelta      int `yaml:"base_delta"`       // Color-cube channel offset at start
	MinDelta       int `yaml:"min_delta"`        // Hardest offset (1 = adjacent shades)
}

// OddTileGameplay defines scoring and lifecycle parameters.
type OddTileGameplay struct {
	Lives          int `yaml:"lives"`
	PointsPerPick  int `yaml:"points_per_pick"`
	LevelThreshold int `yaml:"level_threshold"` // level = score/threshold + 1
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speeds at max difficulty
	DeltaReduction  int     `yaml:"delta_reduction"`  // Color-delta reduction at max difficulty
	TimeReduction   int     `yaml:"time_reduction"`   // Round-time reduction (ticks) at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
