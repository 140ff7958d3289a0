package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("classic", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different mode
	if _, err := store.SaveScore("time", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("TopScores() returned %d entries, want 3", len(scores))
	}

	// Ordered by score descending
	want := []int{200, 100, 50}
	for i, entry := range scores {
		if entry.Score != want[i] {
			t.Errorf("scores[%d].Score = %d, want %d", i, entry.Score, want[i])
		}
		if entry.ModeID != "classic" {
			t.Errorf("scores[%d].ModeID = %q, want %q", i, entry.ModeID, "classic")
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveScore("classic", i*10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("classic", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("TopScores(5) returned %d entries", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("TopScores()[0].Score = %d, want 190", scores[0].Score)
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty store = %d, want 0", high)
	}
}

func TestStoreHighScoreCombinesSources(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("classic", 120); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if err := store.SaveHighScore("classic", 90); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	// History beats the live table
	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 120 {
		t.Errorf("HighScore() = %d, want 120", high)
	}

	// Live table beats history
	if err := store.SaveHighScore("classic", 300); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	high, err = store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("HighScore() = %d, want 300", high)
	}
}

func TestStoreSaveHighScoreMonotone(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveHighScore("time", 200); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	// Lower value must not overwrite the stored best
	if err := store.SaveHighScore("time", 50); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	high, err := store.LoadHighScore("time")
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if high != 200 {
		t.Errorf("LoadHighScore() = %d, want 200", high)
	}
}

func TestStoreModesIsolated(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveHighScore("classic", 100); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if err := store.SaveHighScore("time", 400); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 100 {
		t.Errorf("HighScore(classic) = %d, want 100", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("classic", 100); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if err := store.SaveHighScore("classic", 100); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if _, err := store.SaveScore("time", 250); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() after clear = %d, want 0", high)
	}

	// Other mode untouched
	high, err = store.HighScore("time")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 250 {
		t.Errorf("HighScore(time) = %d, want 250", high)
	}
}

func TestStoreModeStats(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 200, 300} {
		if _, err := store.SaveScore("classic", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	stats, err := store.GetModeStats("classic")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, want 3", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.TotalScore != 600 {
		t.Errorf("TotalScore = %d, want 600", stats.TotalScore)
	}
}

func TestStoreModeStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetModeStats("classic")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 {
		t.Errorf("empty stats = %+v, want zeros", stats)
	}
}
