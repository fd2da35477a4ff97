package starfall

import (
	"math"
	"strings"
	"testing"

	"github.com/ykarpenko/termplay/internal/config"
	"github.com/ykarpenko/termplay/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical results
	cfg := testConfig()

	inputSequence := make([]core.InputFrame, 300)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		inputSequence[i].Set(core.ActionFire)
		if i%7 == 0 {
			inputSequence[i].Set(core.ActionLeft)
		}
		if i%11 == 0 {
			inputSequence[i].Set(core.ActionRight)
		}
	}

	run := func() core.GameState {
		g := New()
		g.Reset(cfg)
		var state core.GameState
		for _, in := range inputSequence {
			result := g.Step(in)
			state = result.State
			if state.GameOver {
				break
			}
		}
		return state
	}

	state1 := run()
	state2 := run()

	if state1.Score != state2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", state1.Score, state2.Score)
	}
	if state1.Lives != state2.Lives {
		t.Errorf("Determinism failed: lives differ. Run1=%d, Run2=%d", state1.Lives, state2.Lives)
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Play a few ticks with fire held
	for i := 0; i < 50; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionFire)
		g.Step(in)
	}

	g.Reset(testConfig())

	if g.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.score)
	}
	if g.level != 1 {
		t.Errorf("Reset should set level to 1, got %d", g.level)
	}
	if len(g.enemies) != 0 || len(g.projectiles) != 0 {
		t.Errorf("Reset should clear entity collections, got %d enemies, %d projectiles",
			len(g.enemies), len(g.projectiles))
	}
	if g.gameOver {
		t.Error("Reset should clear gameOver flag")
	}
	if g.lives != g.cfg.Gameplay.Lives {
		t.Errorf("Reset should restore lives to %d, got %d", g.cfg.Gameplay.Lives, g.lives)
	}
}

func TestPlayerClampedToPlayfield(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.spawner.cfg.BaseChance = 0
	g.spawner.cfg.ChancePerLevel = 0

	// Push hard into the top-left corner for far longer than the
	// playfield is wide
	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	in.Set(core.ActionLeft)
	for i := 0; i < 500; i++ {
		g.Step(in)
	}

	margin := float64(g.cfg.Player.Margin)
	if g.player.X < margin || g.player.Y < margin {
		t.Errorf("Player escaped the margin: (%f, %f)", g.player.X, g.player.Y)
	}

	// Now the bottom-right corner
	in = core.NewInputFrame()
	in.Set(core.ActionDown)
	in.Set(core.ActionRight)
	for i := 0; i < 500; i++ {
		g.Step(in)
	}

	maxX := float64(g.runtime.ScreenW) - margin
	maxY := float64(g.runtime.ScreenH) - margin
	if g.player.X > maxX || g.player.Y > maxY {
		t.Errorf("Player escaped the far margin: (%f, %f)", g.player.X, g.player.Y)
	}
}

func TestDiagonalMovementUnnormalized(t *testing.T) {
	// Both held axes apply their full delta; diagonal travel is faster
	// than axial travel. Intentional quirk, do not "fix".
	g := New()
	g.Reset(testConfig())
	g.player.X = 40
	g.player.Y = 12

	in := core.NewInputFrame()
	in.Set(core.ActionUp)
	in.Set(core.ActionLeft)
	g.Step(in)

	if g.player.X != 40-g.player.Speed {
		t.Errorf("Diagonal X delta should be full speed, got %f", 40-g.player.X)
	}
	if g.player.Y != 12-g.player.Speed {
		t.Errorf("Diagonal Y delta should be full speed, got %f", 12-g.player.Y)
	}
}

func TestFireRateLimit(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.spawner.cfg.BaseChance = 0
	g.spawner.cfg.ChancePerLevel = 0

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)

	// First shot fires immediately
	g.Step(fire)
	if len(g.projectiles) != 1 {
		t.Fatalf("Expected 1 projectile after first shot, got %d", len(g.projectiles))
	}

	// Holding fire during the cooldown is a no-op
	for i := 0; i < g.cfg.Combat.FireCooldownTicks-1; i++ {
		g.Step(fire)
	}
	if len(g.projectiles) != 1 {
		t.Errorf("Cooldown should gate firing, got %d projectiles", len(g.projectiles))
	}

	// Exactly one more shot once the interval has elapsed
	g.Step(fire)
	if len(g.projectiles) != 2 {
		t.Errorf("Expected exactly 2 projectiles after cooldown, got %d", len(g.projectiles))
	}
}

func TestProjectileLeavesTopEdge(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.projectiles = append(g.projectiles, Projectile{X: 40, Y: 0.5})
	scoreBefore := g.score

	g.Step(core.NewInputFrame())

	if len(g.projectiles) != 0 {
		t.Errorf("Projectile past the top edge should be removed, got %d", len(g.projectiles))
	}
	if g.score != scoreBefore {
		t.Error("Projectile expiry must not change the score")
	}
}

func TestEnemyLeavesBottomEdge(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.spawner.cfg.BaseChance = 0 // No surprise spawns
	g.spawner.cfg.ChancePerLevel = 0

	g.enemies = append(g.enemies, Enemy{X: 40, Y: 23.9, Speed: 0.5})
	livesBefore := g.lives
	scoreBefore := g.score

	g.Step(core.NewInputFrame())

	if len(g.enemies) != 0 {
		t.Errorf("Enemy past the bottom edge should be removed, got %d", len(g.enemies))
	}
	if g.lives != livesBefore || g.score != scoreBefore {
		t.Error("Enemy exiting the bottom must not affect lives or score")
	}
}

func TestProjectileEnemyCollision(t *testing.T) {
	// Scenario from the drawing board: score=0, lives=3, level=1, one
	// qualifying collision awards the kill reward exactly once and
	// removes both entities.
	g := New()
	g.Reset(testConfig())
	g.spawner.cfg.BaseChance = 0
	g.spawner.cfg.ChancePerLevel = 0

	// Place pair inside the hit radius, away from the player
	g.projectiles = append(g.projectiles, Projectile{X: 40, Y: 10 + g.cfg.Combat.ProjectileSpeed})
	g.enemies = append(g.enemies, Enemy{X: 40.5, Y: 10, Speed: 0})

	g.Step(core.NewInputFrame())

	if g.score != g.cfg.Combat.KillReward {
		t.Errorf("Expected score %d after one kill, got %d", g.cfg.Combat.KillReward, g.score)
	}
	if len(g.enemies) != 0 {
		t.Errorf("Hit enemy should be removed, got %d enemies", len(g.enemies))
	}
	if len(g.projectiles) != 0 {
		t.Errorf("Consumed projectile should be removed, got %d projectiles", len(g.projectiles))
	}
	if g.lives != 3 {
		t.Errorf("Lives should be untouched by a projectile kill, got %d", g.lives)
	}
}

func TestCollisionNoDoubleCount(t *testing.T) {
	// Two projectiles overlapping one enemy: only one pair resolves,
	// the second projectile flies on.
	g := New()
	g.Reset(testConfig())
	g.spawner.cfg.BaseChance = 0
	g.spawner.cfg.ChancePerLevel = 0

	y := 10 + g.cfg.Combat.ProjectileSpeed
	g.projectiles = append(g.projectiles,
		Projectile{X: 40, Y: y},
		Projectile{X: 40.2, Y: y},
	)
	g.enemies = append(g.enemies, Enemy{X: 40, Y: 10, Speed: 0})

	g.Step(core.NewInputFrame())

	if g.score != g.cfg.Combat.KillReward {
		t.Errorf("A single enemy must only be scored once, got score %d", g.score)
	}
	if len(g.projectiles) != 1 {
		t.Errorf("Second projectile should survive, got %d projectiles", len(g.projectiles))
	}
}

func TestSimultaneousPairsEachResolve(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.spawner.cfg.BaseChance = 0
	g.spawner.cfg.ChancePerLevel = 0

	y := 10 + g.cfg.Combat.ProjectileSpeed
	g.projectiles = append(g.projectiles,
		Projectile{X: 20, Y: y},
		Projectile{X: 60, Y: y},
	)
	g.enemies = append(g.enemies,
		Enemy{X: 20, Y: 10, Speed: 0},
		Enemy{X: 60, Y: 10, Speed: 0},
	)

	g.Step(core.NewInputFrame())

	if g.score != 2*g.cfg.Combat.KillReward {
		t.Errorf("Two distinct pairs should both score, got %d", g.score)
	}
	if len(g.enemies) != 0 || len(g.projectiles) != 0 {
		t.Errorf("All four entities should be removed, got %d enemies, %d projectiles",
			len(g.enemies), len(g.projectiles))
	}
}

func TestPlayerCollisionLosesLifeAndGrantsInvincibility(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.spawner.cfg.BaseChance = 0
	g.spawner.cfg.ChancePerLevel = 0

	g.enemies = append(g.enemies, Enemy{X: g.player.X, Y: g.player.Y, Speed: 0})

	g.Step(core.NewInputFrame())

	if g.lives != g.cfg.Gameplay.Lives-1 {
		t.Errorf("Expected %d lives after hit, got %d", g.cfg.Gameplay.Lives-1, g.lives)
	}
	if len(g.enemies) != 0 {
		t.Error("Colliding enemy should be removed")
	}
	if g.player.Invincibility != g.cfg.Player.InvincibilityTicks {
		t.Errorf("Invincibility should reset to %d, got %d",
			g.cfg.Player.InvincibilityTicks, g.player.Invincibility)
	}
}

func TestInvincibilityCountdownAndImmunity(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.spawner.cfg.BaseChance = 0
	g.spawner.cfg.ChancePerLevel = 0

	g.player.Invincibility = 5
	livesBefore := g.lives

	// Countdown strictly decreases by one per frame toward zero, and an
	// overlapping enemy cannot take a life while it is positive.
	for expected := 4; expected >= 0; expected-- {
		g.enemies = append(g.enemies[:0], Enemy{X: g.player.X, Y: g.player.Y, Speed: 0})
		g.Step(core.NewInputFrame())
		if g.player.Invincibility != expected && expected > 0 {
			t.Fatalf("Expected countdown %d, got %d", expected, g.player.Invincibility)
		}
		if expected > 0 && g.lives != livesBefore {
			t.Fatalf("Life lost while invincible (countdown %d)", expected)
		}
	}

	// Countdown reached zero mid-loop, so the final overlap took a life
	// and re-armed the countdown.
	if g.lives != livesBefore-1 {
		t.Errorf("Expected exactly one life lost after immunity lapsed, got %d -> %d",
			livesBefore, g.lives)
	}
}

func TestLivesDepletionEndsGame(t *testing.T) {
	// Scenario: lives=1, no invincibility, enemy within the hit radius.
	g := New()
	g.Reset(testConfig())
	g.spawner.cfg.BaseChance = 0
	g.spawner.cfg.ChancePerLevel = 0

	g.lives = 1
	g.enemies = append(g.enemies, Enemy{X: g.player.X, Y: g.player.Y, Speed: 0})

	result := g.Step(core.NewInputFrame())

	if result.State.Lives != 0 {
		t.Errorf("Expected 0 lives, got %d", result.State.Lives)
	}
	if !result.State.GameOver {
		t.Error("Game should be over when lives reach zero")
	}

	// Further steps are no-ops until restart
	tickBefore := g.tickCount
	g.Step(core.NewInputFrame())
	if g.tickCount != tickBefore {
		t.Error("Simulation should halt after game over")
	}

	// Lives never go negative
	if g.lives < 0 {
		t.Errorf("Lives went negative: %d", g.lives)
	}
}

func TestLevelDerivedFromScore(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.spawner.cfg.BaseChance = 0
	g.spawner.cfg.ChancePerLevel = 0

	threshold := g.cfg.Gameplay.LevelThreshold

	tests := []struct {
		score int
		level int
	}{
		{0, 1},
		{threshold - 1, 1},
		{threshold, 2},
		{threshold*4 + 1, 5},
	}

	for _, tc := range tests {
		g.score = tc.score
		g.Step(core.NewInputFrame())
		if g.level != tc.level {
			t.Errorf("score=%d: expected level %d, got %d", tc.score, tc.level, g.level)
		}
	}
}

func TestEnemySpeedScalesWithLevel(t *testing.T) {
	s := NewEnemySpawner(1, 80, config.DefaultStarfallConfig().Spawning)

	speed1 := s.SpeedAt(1)
	speed5 := s.SpeedAt(5)

	if speed5 <= speed1 {
		t.Errorf("Level 5 enemy speed (%f) should exceed level 1 (%f)", speed5, speed1)
	}

	// Strictly increasing across the whole range
	for level := 1; level < 20; level++ {
		if s.SpeedAt(level+1) <= s.SpeedAt(level) {
			t.Fatalf("Speed not strictly increasing at level %d", level)
		}
	}
}

func TestEnemySpawnPosition(t *testing.T) {
	cfg := testConfig()
	s := NewEnemySpawner(cfg.Seed, cfg.ScreenW, config.DefaultStarfallConfig().Spawning)
	s.cfg.BaseChance = 1.0 // Always spawn

	for i := 0; i < 200; i++ {
		enemy, ok := s.MaybeSpawn(1, 1.0)
		if !ok {
			t.Fatal("Spawn with probability 1.0 should always succeed")
		}
		if enemy.Y >= 0 {
			t.Errorf("Enemy should spawn above the visible top edge, got y=%f", enemy.Y)
		}
		if enemy.X < float64(s.cfg.EdgeMargin) || enemy.X > float64(cfg.ScreenW-s.cfg.EdgeMargin) {
			t.Errorf("Enemy x=%f outside spawn margins", enemy.X)
		}
	}
}

func TestDifficultyScalesEnemySpeed(t *testing.T) {
	cfg := testConfig()

	// Spawn one enemy at the given score with the level pinned to 1, so any
	// speed change comes from the difficulty progression alone.
	spawnAt := func(score int) float64 {
		g := New()
		g.Reset(cfg)
		g.cfg.Gameplay.LevelThreshold = 1 << 30
		g.cfg.Difficulty = config.DifficultyConfig{
			Enabled:     true,
			Progression: config.ProgressionConfig{Type: "score", MaxAt: 2000},
			Scaling:     config.ScalingConfig{SpeedMultiplier: 0.5},
		}
		g.diff = config.NewDifficultyManager(g.cfg.Difficulty)
		g.spawner.cfg.BaseChance = 1.0
		g.spawner.cfg.SpeedJitter = 0
		g.score = score

		g.Step(core.NewInputFrame())
		if len(g.enemies) == 0 {
			t.Fatal("Spawn with probability 1.0 should always succeed")
		}
		return g.enemies[0].Speed
	}

	base := spawnAt(0)
	capped := spawnAt(2000)

	if capped <= base {
		t.Fatalf("Enemy speed at max difficulty (%f) should exceed base (%f)", capped, base)
	}
	if math.Abs(capped-base*1.5) > 1e-9 {
		t.Errorf("Enemy speed at max difficulty should be base*1.5, got %f (base %f)", capped, base)
	}
}

func TestResizeReclampsToNewBounds(t *testing.T) {
	cfg := testConfig()
	cfg.ScreenW = 120
	cfg.ScreenH = 40
	g := New()
	g.Reset(cfg)
	g.spawner.cfg.BaseChance = 0
	g.spawner.cfg.ChancePerLevel = 0

	g.player.X = 119
	g.player.Y = 39

	g.Resize(60, 20)

	margin := float64(g.cfg.Player.Margin)
	if g.player.X != 60-margin || g.player.Y != 20-margin {
		t.Errorf("Player should be re-clamped to the new bounds, got (%f, %f)", g.player.X, g.player.Y)
	}

	// Movement after the resize clamps against the new bounds, not cached ones
	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	in.Set(core.ActionDown)
	for i := 0; i < 50; i++ {
		g.Step(in)
	}
	if g.player.X != 60-margin || g.player.Y != 20-margin {
		t.Errorf("Player escaped the resized playfield, got (%f, %f)", g.player.X, g.player.Y)
	}
	if g.State().GameOver {
		t.Error("Resize should not end the game")
	}

	// Spawn positions respect the new width
	g.spawner.cfg.BaseChance = 1.0
	for i := 0; i < 100; i++ {
		enemy, ok := g.spawner.MaybeSpawn(1, 1.0)
		if !ok {
			t.Fatal("Spawn with probability 1.0 should always succeed")
		}
		if enemy.X > float64(60-g.spawner.cfg.EdgeMargin) {
			t.Fatalf("Enemy x=%f outside the resized spawn margins", enemy.X)
		}
	}
}

func TestGameRender(t *testing.T) {
	cfg := testConfig()
	g := New()
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	// The ship is drawn at its position
	if screen.Get(int(g.player.X), int(g.player.Y)) != ShipChar {
		t.Errorf("Ship should be drawn at (%d, %d)", int(g.player.X), int(g.player.Y))
	}

	// HUD is present
	row := screen.Row(0)
	if !strings.Contains(row, "Score:") {
		t.Errorf("HUD should show the score, row was %q", row)
	}
}
