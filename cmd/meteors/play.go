package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadelab/tui-meteors/internal/core"
	"github.com/arcadelab/tui-meteors/internal/games/meteors"
	"github.com/arcadelab/tui-meteors/internal/platform/tui"
	"github.com/arcadelab/tui-meteors/internal/registry"
	"github.com/arcadelab/tui-meteors/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a game mode",
	Long: `Start playing the specified mode.

Controls:
  Left/Right or A/D  - Turn
  Up/Down or W/S     - Thrust forward/back
  Space              - Shoot
  Enter              - Start / next level
  P                  - Pause
  R                  - Restart
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Base meteor speed and count
  normal - Moderately faster, denser field
  hard   - Fastest meteors, densest field

Examples:
  meteors play meteors
  meteors play meteors --difficulty hard
  meteors play meteors-practice
  meteors play meteors --config ./my-meteors.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'meteors list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Apply CLI overrides before the factory loads its config
	meteors.SetConfigPath(flagConfig)
	meteors.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
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
