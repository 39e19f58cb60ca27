// pixelmines is a pixel-rendered minesweeper for the terminal.
//
// Usage:
//
//	pixelmines play          - Play a game
//	pixelmines scores        - Show the fastest wins
//	pixelmines serve         - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible bomb layouts
//	--db <path>     - Set database path (default: ~/.pixelmines/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "pixelmines",
	Short: "Pixelmines - minesweeper rendered pixel by pixel in your terminal",
	Long: `Pixelmines draws a classic minesweeper onto a pixel framebuffer and
blits it into your terminal with half-block characters.

Available commands:
  play     - Play a game
  scores   - View the fastest wins
  serve    - Start SSH server for remote play

Examples:
  pixelmines play
  pixelmines play --difficulty hard
  pixelmines scores
  pixelmines serve --ssh :2222`,
	Args: cobra.NoArgs,
	// Bare invocation starts a game
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pixelmines/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
