// Package oddtile implements a color discrimination quiz.
// Every round shows a grid of identically colored tiles with exactly one
// tile a slightly different shade. The player moves a cursor and picks the
// odd one out before the round timer runs down; the shade gap narrows and
// the grid grows as the score climbs.
package oddtile

import (
	"fmt"
	"math/rand"

	"github.com/ykarpenko/termplay/internal/config"
	"github.com/ykarpenko/termplay/internal/core"
	"github.com/ykarpenko/termplay/internal/registry"
)

// Tile geometry in screen cells
const (
	TileW   = 5
	TileH   = 2
	TileGap = 1
)

// Game implements the Odd Tile quiz logic.
type Game struct {
	gridSize int
	oddX     int
	oddY     int
	cursorX  int
	cursorY  int

	baseColor core.Color
	oddColor  core.Color

	delta      int // Current channel offset between base and odd shade
	roundTicks int // Ticks left before the round counts as a miss

	score    int
	lives    int
	level    int
	gameOver bool
	paused   bool

	runtime   core.RuntimeConfig
	cfg       config.OddTileConfig
	diff      *config.DifficultyManager
	rng       *rand.Rand
	tickCount int

	prev core.InputFrame // Previous frame inputs, for edge detection
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

// New creates a new Odd Tile game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "oddtile"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Odd Tile"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadOddTile(configPath)
	if err != nil {
		cfg = config.DefaultOddTileConfig()
	}

	if difficultyPreset != "" {
		config.ApplyOddTilePreset(&cfg, difficultyPreset)
	}

	if cfg.Gameplay.LevelThreshold <= 0 {
		cfg.Gameplay.LevelThreshold = config.DefaultOddTileConfig().Gameplay.LevelThreshold
	}
	if cfg.Grid.MinSize < 2 {
		cfg.Grid.MinSize = 2
	}

	g.cfg = cfg

	g.diff = config.NewDifficultyManager(cfg.Difficulty)
	if config.IsFixedPreset(difficultyPreset) {
		g.diff.SetEnabled(false)
	}
	if difficultyPreset != "" {
		g.diff.SetInitialLevel(config.InitialLevelForPreset(difficultyPreset))
	}

	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.level = 1
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
	g.prev = core.NewInputFrame()

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.newRound()
	g.cursorX = 0
	g.cursorY = 0
}

// Resize updates the playfield dimensions after a terminal resize.
// The board is re-centered from the screen buffer on every Render, so the
// run keeps its score, lives, and current round.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
}

// newRound rolls a fresh board: grid size from the current level, shade gap
// and timer from the difficulty progression, odd tile placed at random.
func (g *Game) newRound() {
	g.gridSize = g.gridSizeFor(g.level)

	g.delta = g.diff.Delta(g.cfg.Round.BaseDelta, g.cfg.Round.MinDelta, g.score, g.tickCount)
	g.roundTicks = g.diff.RoundTicks(g.cfg.Round.TimeLimitTicks, g.score, g.tickCount)

	g.baseColor, g.oddColor = rollColors(g.rng, g.delta)
	g.oddX = g.rng.Intn(g.gridSize)
	g.oddY = g.rng.Intn(g.gridSize)

	g.cursorX = core.Clamp(g.cursorX, 0, g.gridSize-1)
	g.cursorY = core.Clamp(g.cursorY, 0, g.gridSize-1)
}

// gridSizeFor returns the board side length at the given level.
func (g *Game) gridSizeFor(level int) int {
	grow := g.cfg.Grid.GrowEvery
	if grow < 1 {
		grow = 1
	}
	size := g.cfg.Grid.MinSize + (level-1)/grow
	return core.Min(size, g.cfg.Grid.MaxSize)
}

// pressed reports an action held this frame but not the previous one.
func (g *Game) pressed(in core.InputFrame, action core.Action) bool {
	return in.Has(action) && !g.prev.Has(action)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		g.prev = in.Clone()
		return core.StepResult{State: g.State()}
	}

	if g.pressed(in, core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		g.prev = in.Clone()
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.moveCursor(in)

	if g.pressed(in, core.ActionConfirm) || g.pressed(in, core.ActionFire) {
		g.pick()
	}

	g.roundTicks--
	if g.roundTicks <= 0 && !g.gameOver {
		g.miss()
	}

	g.level = g.score/g.cfg.Gameplay.LevelThreshold + 1

	g.prev = in.Clone()
	return core.StepResult{State: g.State()}
}

// moveCursor applies newly pressed direction actions, one tile per press.
func (g *Game) moveCursor(in core.InputFrame) {
	if g.pressed(in, core.ActionUp) {
		g.cursorY--
	}
	if g.pressed(in, core.ActionDown) {
		g.cursorY++
	}
	if g.pressed(in, core.ActionLeft) {
		g.cursorX--
	}
	if g.pressed(in, core.ActionRight) {
		g.cursorX++
	}
	g.cursorX = core.Clamp(g.cursorX, 0, g.gridSize-1)
	g.cursorY = core.Clamp(g.cursorY, 0, g.gridSize-1)
}

// pick resolves the tile under the cursor against the odd tile.
func (g *Game) pick() {
	if g.cursorX == g.oddX && g.cursorY == g.oddY {
		g.score += g.cfg.Gameplay.PointsPerPick
		// Level must reflect the new score before the next board is sized
		g.level = g.score/g.cfg.Gameplay.LevelThreshold + 1
		g.newRound()
		return
	}
	g.miss()
}

// miss costs a life and rolls a new round, or ends the game.
func (g *Game) miss() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.gameOver = true
		return
	}
	g.newRound()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	boardW := g.gridSize*TileW + (g.gridSize-1)*TileGap
	boardH := g.gridSize*TileH + (g.gridSize-1)*TileGap
	originX := (dst.Width() - boardW) / 2
	originY := (dst.Height() - boardH) / 2
	if originY < 2 {
		originY = 2
	}

	for ty := 0; ty < g.gridSize; ty++ {
		for tx := 0; tx < g.gridSize; tx++ {
			color := g.baseColor
			if tx == g.oddX && ty == g.oddY {
				color = g.oddColor
			}
			x := originX + tx*(TileW+TileGap)
			y := originY + ty*(TileH+TileGap)
			dst.DrawRectColor(core.NewRect(x, y, TileW, TileH), '█', color)
		}
	}

	// Cursor brackets flank the selected tile
	cx := originX + g.cursorX*(TileW+TileGap)
	cy := originY + g.cursorY*(TileH+TileGap)
	for dy := 0; dy < TileH; dy++ {
		dst.SetColor(cx-1, cy+dy, '[', core.ColorBrightWhite)
		dst.SetColor(cx+TileW, cy+dy, ']', core.ColorBrightWhite)
	}

	secondsLeft := 0
	if g.runtime.TickRate > 0 {
		secondsLeft = (g.roundTicks + g.runtime.TickRate - 1) / g.runtime.TickRate
	}
	hud := fmt.Sprintf(" Score: %d  Lives: %d  Level: %d  Time: %ds ",
		g.score, g.lives, g.level, secondsLeft)
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
	registry.Register("oddtile", func() registry.Game {
		return New()
	})
}
