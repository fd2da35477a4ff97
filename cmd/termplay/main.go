// termplay is a terminal gaming platform with a small set of casual games.
//
// Usage:
//
//	termplay list              - List available games
//	termplay play <game>       - Play a game
//	termplay menu              - Start menu to pick games interactively
//	termplay serve             - Start SSH server for remote play
//	termplay scores <game>     - Show high scores for a game
//	termplay config <game>     - Print a game's default configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.termplay/termplay.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ykarpenko/termplay/internal/storage"

	// Import games to register them
	_ "github.com/ykarpenko/termplay/internal/games/oddtile"
	_ "github.com/ykarpenko/termplay/internal/games/starfall"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termplay",
	Short: "Termplay - Casual games in your terminal",
	Long: `Termplay is a terminal-based gaming platform with a small set of
casual games played directly in your terminal.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print a game's default configuration

Examples:
  termplay list
  termplay play starfall
  termplay menu
  termplay serve --ssh :2222
  termplay scores oddtile`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
