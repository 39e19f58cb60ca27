package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mgrankin/pixelmines/internal/config"
	"github.com/mgrankin/pixelmines/internal/core"
	"github.com/mgrankin/pixelmines/internal/platform/tui"
	"github.com/mgrankin/pixelmines/internal/storage"
	"github.com/mgrankin/pixelmines/internal/sweeper"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of minesweeper.

Controls:
  W/A/S/D or arrows - Move the selection
  T/Enter/Space     - Reveal the selected tile
  F                 - Flag or unflag the selected tile
  Q/Esc/Ctrl+C      - Quit

Difficulty presets:
  easy   - 9x9 board, 10 bombs
  normal - 12x12 board, 50 bombs
  hard   - 16x16 board, 99 bombs

Examples:
  pixelmines play
  pixelmines play --difficulty easy
  pixelmines play --config ./my-board.yaml
  pixelmines play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load board configuration
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&gameCfg, config.DifficultyPreset(flagDifficulty))
	if err := gameCfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The display device must exist before anything is drawn
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: stdout is not a terminal")
		os.Exit(1)
	}

	// Get terminal size for the framebuffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// One terminal row shows two pixel rows
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height * 2,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	g := gameCfg.Grid
	game := sweeper.New(g.Rows, g.Cols, g.Bombs)

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
