package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ykarpenko/termplay/internal/config"
	"github.com/ykarpenko/termplay/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print the default configuration for a game",
	Long: `Print the default YAML configuration for the specified game.

Redirect the output to a file, edit it, and pass it back with --config
to play with custom settings.

Examples:
  termplay config starfall
  termplay config starfall > my-starfall.yaml
  termplay play starfall --config my-starfall.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'termplay list' to see available games.")
		os.Exit(1)
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: no default configuration for %q\n", gameID)
		os.Exit(1)
	}

	os.Stdout.Write(data)
}
