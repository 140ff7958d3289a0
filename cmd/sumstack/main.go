// sumstack is a terminal puzzle game about picking blocks that add up
// to a target sum.
//
// Usage:
//
//	sumstack modes             - List available game modes
//	sumstack play [mode]       - Play a mode (default: classic)
//	sumstack menu              - Start menu to pick modes interactively
//	sumstack serve             - Start SSH server for remote play
//	sumstack scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.sumstack/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register its modes
	_ "github.com/ovoronin/sumstack/internal/games/sumstack"
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
	Use:   "sumstack",
	Short: "Sumstack - a sum puzzle in your terminal",
	Long: `Sumstack is a terminal puzzle game. Pick blocks from the grid so
their values add up to the target sum before the stack overflows.

Available commands:
  modes    - Show all available game modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  sumstack modes
  sumstack play classic
  sumstack play time --difficulty hard
  sumstack menu
  sumstack serve --ssh :2222
  sumstack scores classic`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sumstack/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
