package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		game   string
		player string
		score  int
	}{
		{"rabbit", "ann", 100},
		{"rabbit", "bob", 50},
		{"rabbit", "ann", 200},
		{"other", "ann", 500},
	}
	for _, r := range runs {
		if _, err := store.SaveScore(r.game, r.player, r.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("rabbit", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}
	if scores[2].Player != "bob" {
		t.Errorf("scores[2].Player = %q, expected bob", scores[2].Player)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", "p", (i+1)*100) //nolint:errcheck
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreRecentScores(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 12; i++ {
		store.SaveScore("rabbit", "p", i) //nolint:errcheck
	}

	recent, err := store.RecentScores("rabbit", 10)
	if err != nil {
		t.Fatalf("RecentScores() failed: %v", err)
	}
	if len(recent) != 10 {
		t.Fatalf("Expected 10 recent scores, got %d", len(recent))
	}
	// Oldest first, the two earliest runs dropped
	for i, e := range recent {
		if e.Score != i+3 {
			t.Errorf("recent[%d] = %d, expected %d", i, e.Score, i+3)
		}
	}
}

func TestStoreBestPerPlayer(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("rabbit", "ann", 100) //nolint:errcheck
	store.SaveScore("rabbit", "bob", 300) //nolint:errcheck
	store.SaveScore("rabbit", "ann", 250) //nolint:errcheck
	store.SaveScore("rabbit", "cat", 50)  //nolint:errcheck

	best, err := store.BestPerPlayer("rabbit", 10)
	if err != nil {
		t.Fatalf("BestPerPlayer() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("Expected 3 players, got %d", len(best))
	}
	if best[0].Player != "bob" || best[1].Player != "ann" || best[1].Score != 250 {
		t.Errorf("unexpected board: %+v", best)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("rabbit")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("rabbit", "p", 100) //nolint:errcheck
	store.SaveScore("rabbit", "p", 300) //nolint:errcheck
	store.SaveScore("rabbit", "p", -50) //nolint:errcheck

	high, err = store.HighScore("rabbit")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("rabbit", "p", 100) //nolint:errcheck
	store.SaveScore("rabbit", "p", 200) //nolint:errcheck
	store.SaveScore("other", "p", 300)  //nolint:errcheck

	if err := store.ClearScores("rabbit"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("rabbit", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("Other games should not be affected by clearing rabbit")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", "p", (20-i)*10) //nolint:errcheck
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Fatalf("Expected 20 scores, got %d", len(scores))
	}
	// Play order, not score order
	if scores[0].Score != 200 || scores[19].Score != 10 {
		t.Errorf("AllScores() not in play order: first=%d last=%d", scores[0].Score, scores[19].Score)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("rabbit")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("rabbit", "ann", 100) //nolint:errcheck
	store.SaveScore("rabbit", "bob", 300) //nolint:errcheck

	stats, err = store.GetGameStats("rabbit")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.Players != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreImportScore(t *testing.T) {
	store := openTestStore(t)

	playedAt := time.Date(2024, 3, 9, 18, 30, 5, 0, time.UTC)
	if _, err := store.ImportScore("rabbit", "ann", 420, playedAt); err != nil {
		t.Fatalf("ImportScore() failed: %v", err)
	}
	// Zero time falls back to now
	if _, err := store.ImportScore("rabbit", "bob", 10, time.Time{}); err != nil {
		t.Fatalf("ImportScore() failed: %v", err)
	}

	all, err := store.AllScores("rabbit")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(all))
	}
	if all[0].Player != "ann" || all[0].Score != 420 {
		t.Errorf("imported run = %+v", all[0])
	}
	if !all[0].CreatedAt.Equal(playedAt) {
		t.Errorf("CreatedAt = %v, expected %v", all[0].CreatedAt, playedAt)
	}
	if all[1].CreatedAt.Before(playedAt) {
		t.Errorf("zero time should be stored as now, got %v", all[1].CreatedAt)
	}
}
