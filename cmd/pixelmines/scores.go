package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mgrankin/pixelmines/internal/platform/tui"
	"github.com/mgrankin/pixelmines/internal/storage"
)

var flagScoresPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the fastest wins",
	Long: `Display the fastest recorded wins.

By default an interactive table is shown. Use --plain for
script-friendly text output.

Examples:
  pixelmines scores
  pixelmines scores --plain`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print results as plain text")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresPlain {
		printScores(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunResults(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing results: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store) {
	entries, err := store.BestTimes(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Times")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pixelmines play' to set the first time!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "Rank", "Time", "Board", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "----", "----", "-----", "----")

	for i, entry := range entries {
		board := fmt.Sprintf("%dx%d/%d", entry.Rows, entry.Cols, entry.Bombs)
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %d:%02d      %-12s  %s\n",
			i+1, entry.DurationSecs/60, entry.DurationSecs%60, board, dateStr)
	}

	if stats, err := store.GetStats(); err == nil && stats.Played > 0 {
		fmt.Println()
		fmt.Printf("Played %d, won %d, lost %d\n", stats.Played, stats.Won, stats.Lost)
	}
}
