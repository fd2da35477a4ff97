package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ykarpenko/termplay/internal/core"
	"github.com/ykarpenko/termplay/internal/games/oddtile"
	"github.com/ykarpenko/termplay/internal/games/starfall"
	"github.com/ykarpenko/termplay/internal/platform/tui"
	"github.com/ykarpenko/termplay/internal/registry"
	"github.com/ykarpenko/termplay/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD - Move
  Space       - Fire / Select
  Enter       - Confirm
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  termplay play starfall
  termplay play oddtile --difficulty easy
  termplay play starfall --difficulty hard --seed 7
  termplay play starfall --config ./my-starfall.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameOptions forwards the config path and difficulty preset to the
// selected game package before the game instance is created.
func applyGameOptions(gameID string) {
	switch gameID {
	case "starfall":
		starfall.SetConfigPath(flagConfig)
		starfall.SetDifficultyPreset(flagDifficulty)
	case "oddtile":
		oddtile.SetConfigPath(flagConfig)
		oddtile.SetDifficultyPreset(flagDifficulty)
	}
}

// terminalSize returns the current terminal dimensions, with sane fallbacks.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'termplay list' to see available games.")
		os.Exit(1)
	}

	width, height := terminalSize()

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	applyGameOptions(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
