package starfall

import (
	"math/rand"

	"github.com/ykarpenko/termplay/internal/config"
)

// Ship is the player vessel. Position is the ship center in cell coordinates.
type Ship struct {
	X, Y          float64
	Speed         float64 // Cells per tick per held axis
	Invincibility int     // Ticks of immunity remaining after losing a life
}

// Enemy is a hostile ship descending from the top edge.
type Enemy struct {
	X, Y  float64
	Speed float64 // Downward cells per tick, fixed at spawn time
	hit   bool    // Marked for removal this tick
}

// Projectile is a player shot travelling straight up at a fixed speed.
type Projectile struct {
	X, Y  float64
	spent bool // Marked for removal this tick
}

// Star is a background particle scrolling down the playfield.
// The starfield keeps a fixed population: a star leaving the bottom edge
// reappears at the top.
type Star struct {
	X, Y   float64
	Speed  float64
	Bright bool
}

// EnemySpawner handles the per-tick probabilistic creation of enemies.
type EnemySpawner struct {
	rng     *rand.Rand
	cfg     config.StarfallSpawning
	screenW int
}

// NewEnemySpawner creates a spawner with the given RNG seed.
func NewEnemySpawner(seed int64, screenW int, cfg config.StarfallSpawning) *EnemySpawner {
	return &EnemySpawner{
		rng:     rand.New(rand.NewSource(seed)),
		cfg:     cfg,
		screenW: screenW,
	}
}

// Reset re-seeds the spawner RNG.
func (s *EnemySpawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// UpdateScreenSize updates the playfield width used for spawn positions.
func (s *EnemySpawner) UpdateScreenSize(screenW int) {
	s.screenW = screenW
}

// ChanceAt returns the per-tick spawn probability for the given level.
func (s *EnemySpawner) ChanceAt(level int) float64 {
	return s.cfg.BaseChance + float64(level)*s.cfg.ChancePerLevel
}

// SpeedAt returns the deterministic speed floor for the given level.
// The actual spawn speed adds a random jitter on top.
func (s *EnemySpawner) SpeedAt(level int) float64 {
	return s.cfg.SpeedBase + float64(level)*s.cfg.SpeedPerLevel
}

// MaybeSpawn rolls the spawn check for one tick. When it succeeds, the
// returned enemy sits just above the visible top edge with a horizontal
// position uniformly random inside the edge margins. speedScale multiplies
// the final speed; the game derives it from the difficulty progression.
func (s *EnemySpawner) MaybeSpawn(level int, speedScale float64) (Enemy, bool) {
	if s.rng.Float64() >= s.ChanceAt(level) {
		return Enemy{}, false
	}

	span := s.screenW - 2*s.cfg.EdgeMargin
	if span < 1 {
		span = 1
	}
	x := float64(s.cfg.EdgeMargin) + s.rng.Float64()*float64(span)

	if speedScale <= 0 {
		speedScale = 1
	}

	return Enemy{
		X:     x,
		Y:     -1, // Above the visible top edge
		Speed: (s.SpeedAt(level) + s.rng.Float64()*s.cfg.SpeedJitter) * speedScale,
	}, true
}
