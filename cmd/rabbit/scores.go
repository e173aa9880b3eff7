package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tipsy-rabbit/internal/games/rabbit"
	"github.com/vovakirdan/tipsy-rabbit/internal/platform/tui"
	"github.com/vovakirdan/tipsy-rabbit/internal/report"
	"github.com/vovakirdan/tipsy-rabbit/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs and a summary of every run played.

Examples:
  rabbit scores
  rabbit scores --limit 25
  rabbit scores --clear     # delete every recorded run`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse the interactive scoreboard",
	Args:  cobra.NoArgs,
	RunE:  runBoard,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		return clearScores(os.Stdout, store)
	}
	return writeScores(os.Stdout, store, flagLimit)
}

// clearScores deletes every run and reports how many were removed.
func clearScores(w io.Writer, store *storage.Store) error {
	stats, err := store.GetGameStats(rabbit.ID)
	if err != nil {
		return err
	}
	if err := store.ClearScores(rabbit.ID); err != nil {
		return err
	}
	fmt.Fprintf(w, "Deleted %d runs.\n", stats.GamesCount)
	return nil
}

// writeScores prints the top runs, store totals and the score summary.
func writeScores(w io.Writer, store *storage.Store, limit int) error {
	scores, err := store.TopScores(rabbit.ID, limit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintln(w, "High Scores - Tipsy Rabbit")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'rabbit play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-12s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-12s  %-10s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-12s  %-10d  %s\n", i+1, player, entry.Score, dateStr)
	}

	stats, err := store.GetGameStats(rabbit.ID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	all, err := store.AllScores(rabbit.ID)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}
	values := make([]int, len(all))
	for i, e := range all {
		values[i] = e.Score
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Games: %d  Players: %d  Last played: %s\n",
		stats.GamesCount, stats.Players, stats.LastPlayed.Format("2006-01-02 15:04"))
	fmt.Fprintln(w, report.Summarize(values))
	return nil
}

func runBoard(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return tui.RunScoreboard(store, width, height)
}
