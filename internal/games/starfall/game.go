// Package starfall implements a top-down space shooter.
// The player ship dodges descending enemies and shoots them down while
// the spawn rate and enemy speed scale with the score-derived level.
package starfall

import (
	"fmt"
	"math/rand"

	"github.com/ykarpenko/termplay/internal/config"
	"github.com/ykarpenko/termplay/internal/core"
	"github.com/ykarpenko/termplay/internal/registry"
)

// Visual characters for rendering
const (
	ShipChar       = '▲'
	EnemyChar      = '▼'
	ProjectileChar = '┃'
	StarChar       = '·'
	StarBrightChar = '✦'
)

// Game implements the Starfall shooter logic.
type Game struct {
	player      Ship
	enemies     []Enemy
	projectiles []Projectile
	stars       []Star

	spawner      *EnemySpawner
	fireCooldown int // Ticks until the next shot is allowed

	score    int
	lives    int
	level    int // Derived from score every tick, never counted independently
	gameOver bool
	paused   bool

	runtime   core.RuntimeConfig
	cfg       config.StarfallConfig
	diff      *config.DifficultyManager
	rng       *rand.Rand // Starfield placement
	tickCount int
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// New creates a new Starfall game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "starfall"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Starfall"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadStarfall(configPath)
	if err != nil {
		cfg = config.DefaultStarfallConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyStarfallPreset(&cfg, difficultyPreset)
	}

	if cfg.Gameplay.LevelThreshold <= 0 {
		cfg.Gameplay.LevelThreshold = config.DefaultStarfallConfig().Gameplay.LevelThreshold
	}

	g.cfg = cfg

	g.diff = config.NewDifficultyManager(cfg.Difficulty)
	if config.IsFixedPreset(difficultyPreset) {
		g.diff.SetEnabled(false)
	}
	if difficultyPreset != "" {
		g.diff.SetInitialLevel(config.InitialLevelForPreset(difficultyPreset))
	}

	g.player = Ship{
		X:     float64(runtime.ScreenW) / 2.0,
		Y:     float64(runtime.ScreenH) - 3.0,
		Speed: cfg.Player.Speed,
	}

	g.enemies = g.enemies[:0]
	g.projectiles = g.projectiles[:0]
	g.fireCooldown = 0
	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.level = 1
	g.gameOver = false
	g.paused = false
	g.tickCount = 0

	if g.spawner == nil {
		g.spawner = NewEnemySpawner(runtime.Seed, runtime.ScreenW, cfg.Spawning)
	} else {
		g.spawner.cfg = cfg.Spawning
		g.spawner.UpdateScreenSize(runtime.ScreenW)
		g.spawner.Reset(runtime.Seed)
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.seedStarfield()
}

// seedStarfield scatters the initial star population across the playfield.
func (g *Game) seedStarfield() {
	g.stars = g.stars[:0]
	for i := 0; i < g.cfg.Gameplay.StarCount; i++ {
		g.stars = append(g.stars, Star{
			X:      g.rng.Float64() * float64(g.runtime.ScreenW),
			Y:      g.rng.Float64() * float64(g.runtime.ScreenH),
			Speed:  0.05 + g.rng.Float64()*0.1,
			Bright: g.rng.Intn(5) == 0,
		})
	}
}

// Resize updates the playfield dimensions after a terminal resize.
// Entity clamping on the next step uses the new bounds; the game keeps running.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	if g.spawner != nil {
		g.spawner.UpdateScreenSize(width)
	}
	g.clampPlayer()
	for i := range g.stars {
		if g.stars[i].X >= float64(width) {
			g.stars[i].X = g.rng.Float64() * float64(width)
		}
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.updatePlayer(in)
	g.updateFiring(in)
	g.updateProjectiles()
	g.updateEnemies()
	g.updateStars()
	g.resolveCollisions()
	g.sweepRemoved()

	// Level is a pure function of score, recomputed every tick
	g.level = g.score/g.cfg.Gameplay.LevelThreshold + 1

	if g.lives <= 0 {
		g.lives = 0
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// updatePlayer applies held movement inputs and the invincibility countdown.
// Each held axis contributes its full speed; simultaneous axes are not
// normalized, so diagonal travel is faster. Preserved as a known quirk.
func (g *Game) updatePlayer(in core.InputFrame) {
	if in.Has(core.ActionUp) {
		g.player.Y -= g.player.Speed
	}
	if in.Has(core.ActionDown) {
		g.player.Y += g.player.Speed
	}
	if in.Has(core.ActionLeft) {
		g.player.X -= g.player.Speed
	}
	if in.Has(core.ActionRight) {
		g.player.X += g.player.Speed
	}
	g.clampPlayer()

	if g.player.Invincibility > 0 {
		g.player.Invincibility--
	}
}

// clampPlayer keeps the ship inside the margins of the current playfield.
func (g *Game) clampPlayer() {
	margin := float64(g.cfg.Player.Margin)
	g.player.X = core.ClampF(g.player.X, margin, float64(g.runtime.ScreenW)-margin)
	g.player.Y = core.ClampF(g.player.Y, margin, float64(g.runtime.ScreenH)-margin)
}

// updateFiring spawns a projectile while Fire is held, gated by the cooldown.
func (g *Game) updateFiring(in core.InputFrame) {
	if g.fireCooldown > 0 {
		g.fireCooldown--
	}
	if !in.Has(core.ActionFire) || g.fireCooldown > 0 {
		return
	}
	g.projectiles = append(g.projectiles, Projectile{
		X: g.player.X,
		Y: g.player.Y - 1,
	})
	g.fireCooldown = g.cfg.Combat.FireCooldownTicks
}

// updateProjectiles moves shots upward and marks the ones past the top edge.
func (g *Game) updateProjectiles() {
	for i := range g.projectiles {
		g.projectiles[i].Y -= g.cfg.Combat.ProjectileSpeed
		if g.projectiles[i].Y < 0 {
			g.projectiles[i].spent = true
		}
	}
}

// updateEnemies rolls the spawn check, moves enemies down, and marks the
// ones past the bottom edge. Leaving the playfield costs no score or life.
func (g *Game) updateEnemies() {
	speedScale := g.diff.Speed(1.0, g.score, g.tickCount)
	if enemy, ok := g.spawner.MaybeSpawn(g.level, speedScale); ok {
		g.enemies = append(g.enemies, enemy)
	}
	for i := range g.enemies {
		g.enemies[i].Y += g.enemies[i].Speed
		if g.enemies[i].Y > float64(g.runtime.ScreenH) {
			g.enemies[i].hit = true
		}
	}
}

// updateStars scrolls the starfield and recycles stars past the bottom edge.
func (g *Game) updateStars() {
	for i := range g.stars {
		g.stars[i].Y += g.stars[i].Speed
		if g.stars[i].Y > float64(g.runtime.ScreenH) {
			g.stars[i].Y = 0
			g.stars[i].X = g.rng.Float64() * float64(g.runtime.ScreenW)
		}
	}
}

// resolveCollisions detects projectile-enemy and enemy-player proximity.
// Entities are only marked here; removal happens in a single sweep afterward,
// so the collections are never mutated mid-iteration and a marked entity
// cannot match a second time within the same tick.
func (g *Game) resolveCollisions() {
	for pi := range g.projectiles {
		if g.projectiles[pi].spent {
			continue
		}
		for ei := range g.enemies {
			if g.enemies[ei].hit {
				continue
			}
			d := core.Dist(g.projectiles[pi].X, g.projectiles[pi].Y, g.enemies[ei].X, g.enemies[ei].Y)
			if d < g.cfg.Combat.HitRadius {
				g.projectiles[pi].spent = true
				g.enemies[ei].hit = true
				g.score += g.cfg.Combat.KillReward
				break // This projectile is consumed
			}
		}
	}

	for ei := range g.enemies {
		if g.enemies[ei].hit || g.player.Invincibility > 0 {
			continue
		}
		d := core.Dist(g.player.X, g.player.Y, g.enemies[ei].X, g.enemies[ei].Y)
		if d < g.cfg.Combat.PlayerHitRadius {
			g.enemies[ei].hit = true
			if g.lives > 0 {
				g.lives--
			}
			g.player.Invincibility = g.cfg.Player.InvincibilityTicks
		}
	}
}

// sweepRemoved filters out all entities marked during this tick.
func (g *Game) sweepRemoved() {
	liveEnemies := g.enemies[:0]
	for _, e := range g.enemies {
		if !e.hit {
			liveEnemies = append(liveEnemies, e)
		}
	}
	g.enemies = liveEnemies

	liveShots := g.projectiles[:0]
	for _, p := range g.projectiles {
		if !p.spent {
			liveShots = append(liveShots, p)
		}
	}
	g.projectiles = liveShots
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, s := range g.stars {
		if s.Bright {
			dst.SetColor(int(s.X), int(s.Y), StarBrightChar, core.ColorWhite)
		} else {
			dst.SetColor(int(s.X), int(s.Y), StarChar, core.ColorGray)
		}
	}

	for _, p := range g.projectiles {
		dst.SetColor(int(p.X), int(p.Y), ProjectileChar, core.ColorBrightYellow)
	}

	for _, e := range g.enemies {
		dst.SetColor(int(e.X), int(e.Y), EnemyChar, core.ColorBrightRed)
	}

	// Flicker while invincible: skip the ship on alternating ticks
	if g.player.Invincibility == 0 || g.tickCount%2 == 0 {
		dst.SetColor(int(g.player.X), int(g.player.Y), ShipChar, core.ColorBrightCyan)
	}

	// HUD
	hud := fmt.Sprintf(" Score: %d  Lives: %d  Level: %d ", g.score, g.lives, g.level)
	dst.DrawText(2, 0, hud)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.level,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("starfall", func() registry.Game {
		return New()
	})
}
