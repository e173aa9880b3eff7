// Package report exports finished runs as CSV and summarizes score
// distributions.
package report

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/tipsy-rabbit/internal/storage"
)

// Row is one exported run.
type Row struct {
	Run      int64     `csv:"run"`
	Player   string    `csv:"player"`
	Score    int       `csv:"score"`
	PlayedAt time.Time `csv:"played_at"`
}

// Rows converts stored entries to export rows, preserving order.
func Rows(entries []storage.ScoreEntry) []Row {
	rows := make([]Row, len(entries))
	for i, e := range entries {
		rows[i] = Row{
			Run:      e.ID,
			Player:   e.Player,
			Score:    e.Score,
			PlayedAt: e.CreatedAt.UTC(),
		}
	}
	return rows
}

// WriteCSV writes entries to w. The header row is written only when header
// is true so callers can append to an existing file.
func WriteCSV(w io.Writer, entries []storage.ScoreEntry, header bool) error {
	rows := Rows(entries)
	if len(rows) == 0 && !header {
		return nil
	}

	var err error
	if header {
		err = gocsv.Marshal(rows, w)
	} else {
		err = gocsv.MarshalWithoutHeaders(rows, w)
	}
	if err != nil {
		return fmt.Errorf("report: writing csv: %w", err)
	}
	return nil
}

// ReadCSV parses rows previously written by WriteCSV.
func ReadCSV(r io.Reader) ([]Row, error) {
	var rows []Row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("report: reading csv: %w", err)
	}
	return rows, nil
}

// Summary describes a score distribution.
type Summary struct {
	Runs   int
	Best   int
	Worst  int
	Mean   float64
	StdDev float64
	Median float64
	P90    float64
}

// Summarize computes distribution statistics for scores.
// An empty input yields the zero Summary.
func Summarize(scores []int) Summary {
	if len(scores) == 0 {
		return Summary{}
	}

	xs := make([]float64, len(scores))
	for i, s := range scores {
		xs[i] = float64(s)
	}
	slices.Sort(xs)

	s := Summary{
		Runs:  len(xs),
		Worst: int(xs[0]),
		Best:  int(xs[len(xs)-1]),
	}
	s.Mean, s.StdDev = stat.MeanStdDev(xs, nil)
	if len(xs) < 2 {
		s.StdDev = 0
	}
	s.Median = stat.Quantile(0.5, stat.Empirical, xs, nil)
	s.P90 = stat.Quantile(0.9, stat.Empirical, xs, nil)
	return s
}

// String formats the summary on one line.
func (s Summary) String() string {
	if s.Runs == 0 {
		return "no runs"
	}
	return fmt.Sprintf("runs=%d best=%d worst=%d mean=%.1f sd=%.1f median=%.0f p90=%.0f",
		s.Runs, s.Best, s.Worst, s.Mean, s.StdDev, s.Median, s.P90)
}
