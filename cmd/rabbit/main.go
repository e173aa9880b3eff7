// rabbit is a side-scrolling arcade game for the terminal: keep a tipsy
// rabbit in the air, dodge the walls and grab whatever floats by.
//
// Usage:
//
//	rabbit play              - Play in this terminal
//	rabbit scores            - Print the best runs and a summary
//	rabbit board             - Interactive scoreboard
//	rabbit export            - Export all runs as CSV
//	rabbit import <file>     - Import runs from a CSV export
//	rabbit serve             - Start SSH server for remote play
//	rabbit config            - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.rabbit/scores.db)
//	--log <path>    - Write a debug log to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tipsy-rabbit/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rabbit",
	Short: "Tipsy Rabbit - a side-scroller in your terminal",
	Long: `Tipsy Rabbit is a terminal side-scroller. Jump through the gaps,
collect coins, shields, brews and spare lives, and survive the storm.

Available commands:
  play     - Play in this terminal
  scores   - Print the best runs
  board    - Interactive scoreboard
  export   - Export runs as CSV
  import   - Import runs from a CSV export
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  rabbit play
  rabbit play --difficulty hard --name alice
  rabbit scores
  rabbit export -o runs.csv
  rabbit serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write a debug log to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns a logger writing to --log, or a discarding logger when
// the flag is unset. The returned closer must be called on exit.
func newLogger(prefix string) (*log.Logger, io.Closer, error) {
	if flagLogPath == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}

// openStore opens the scores database named by --db.
func openStore() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening scores database: %w", err)
	}
	return store, nil
}
