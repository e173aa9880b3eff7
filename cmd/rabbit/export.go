package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tipsy-rabbit/internal/games/rabbit"
	"github.com/vovakirdan/tipsy-rabbit/internal/report"
	"github.com/vovakirdan/tipsy-rabbit/internal/storage"
)

var (
	flagOutput   string
	flagNoHeader bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every run as CSV",
	Long: `Write all recorded runs, oldest first, as CSV.

Examples:
  rabbit export
  rabbit export -o runs.csv
  rabbit export --no-header >> all-runs.csv`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import runs from a CSV export",
	Long: `Add the runs of a file written by 'rabbit export' to the database,
keeping their players, scores and play times. The file needs a header line.

Examples:
  rabbit import runs.csv
  rabbit import --db ./other.db runs.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file (default: stdout)")
	exportCmd.Flags().BoolVar(&flagNoHeader, "no-header", false, "Omit the CSV header line")
}

func runExport(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if flagOutput == "" {
		return exportRuns(os.Stdout, store, !flagNoHeader)
	}
	return exportFile(flagOutput, store, !flagNoHeader)
}

// exportFile writes the CSV to path. A failed close is reported since it
// can leave the file truncated.
func exportFile(path string, store *storage.Store, header bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := exportRuns(f, store, header); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func exportRuns(w io.Writer, store *storage.Store, header bool) error {
	entries, err := store.AllScores(rabbit.ID)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}
	return report.WriteCSV(w, entries, header)
}

func runImport(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := importRuns(store, f)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d runs.\n", n)
	return nil
}

// importRuns stores every row of an exported CSV and returns how many were
// added. Run IDs from the file are not kept.
func importRuns(store *storage.Store, r io.Reader) (int, error) {
	rows, err := report.ReadCSV(r)
	if err != nil {
		return 0, err
	}
	for i, row := range rows {
		if _, err := store.ImportScore(rabbit.ID, row.Player, row.Score, row.PlayedAt); err != nil {
			return i, err
		}
	}
	return len(rows), nil
}
