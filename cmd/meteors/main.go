// meteors is an asteroids-style shooter played in the terminal.
//
// Usage:
//
//	meteors list             - List available game modes
//	meteors play <mode>      - Play a mode
//	meteors menu             - Start menu to pick modes interactively
//	meteors serve            - Start SSH server for remote play
//	meteors scores <mode>    - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.meteors/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/arcadelab/tui-meteors/internal/games/meteors"
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
	Use:   "meteors",
	Short: "Meteors - an asteroids shooter in your terminal",
	Long: `Meteors is a terminal rendition of the classic asteroids shooter:
turn and thrust through a wrapping field of tumbling meteors, shoot
them apart and survive as they split into smaller, faster pieces.

Available commands:
  list     - Show all available game modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  meteors list
  meteors play meteors
  meteors menu
  meteors serve --ssh :2222
  meteors scores meteors`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.meteors/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
