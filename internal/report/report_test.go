package report

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tipsy-rabbit/internal/storage"
)

func TestWriteCSVRoundTrip(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := []storage.ScoreEntry{
		{ID: 1, GameID: "rabbit", Player: "ann", Score: 1200, CreatedAt: at},
		{ID: 2, GameID: "rabbit", Player: "bob", Score: -150, CreatedAt: at.Add(time.Minute)},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, entries, true); err != nil {
		t.Fatalf("WriteCSV() failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, expected header + 2", len(lines))
	}
	if lines[0] != "run,player,score,played_at" {
		t.Errorf("header = %q", lines[0])
	}

	rows, err := ReadCSV(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ReadCSV() failed: %v", err)
	}
	if len(rows) != 2 || rows[1].Player != "bob" || rows[1].Score != -150 {
		t.Errorf("rows = %+v", rows)
	}
	if !rows[0].PlayedAt.Equal(at) {
		t.Errorf("PlayedAt = %v, expected %v", rows[0].PlayedAt, at)
	}
}

func TestWriteCSVAppend(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil, false); err != nil {
		t.Fatalf("WriteCSV() failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty append wrote %q", buf.String())
	}

	entries := []storage.ScoreEntry{{ID: 7, Player: "cat", Score: 3}}
	if err := WriteCSV(&buf, entries, false); err != nil {
		t.Fatalf("WriteCSV() failed: %v", err)
	}
	if strings.HasPrefix(buf.String(), "run,") {
		t.Errorf("append should not write a header: %q", buf.String())
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   Summary
	}{
		{"empty", nil, Summary{}},
		{"single", []int{500}, Summary{Runs: 1, Best: 500, Worst: 500, Mean: 500, Median: 500, P90: 500}},
		{"spread", []int{40, 10, 30, 20}, Summary{Runs: 4, Best: 40, Worst: 10, Mean: 25, Median: 20, P90: 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.scores)
			if got.Runs != tt.want.Runs || got.Best != tt.want.Best || got.Worst != tt.want.Worst {
				t.Errorf("Summarize() = %+v, expected %+v", got, tt.want)
			}
			if got.Mean != tt.want.Mean || got.Median != tt.want.Median || got.P90 != tt.want.P90 {
				t.Errorf("Summarize() = %+v, expected %+v", got, tt.want)
			}
		})
	}

	// Sample standard deviation of 10,20,30,40
	sd := Summarize([]int{10, 20, 30, 40}).StdDev
	if math.Abs(sd-12.909944) > 1e-5 {
		t.Errorf("StdDev = %v, expected ~12.91", sd)
	}
}

func TestSummaryString(t *testing.T) {
	if s := (Summary{}).String(); s != "no runs" {
		t.Errorf("String() = %q", s)
	}
	s := Summarize([]int{100, 300}).String()
	if !strings.Contains(s, "best=300") || !strings.Contains(s, "runs=2") {
		t.Errorf("String() = %q", s)
	}
}
