package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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
	store := openTemp(t)

	for _, rec := range []struct {
		score, level int
	}{
		{100, 2},
		{50, 1},
		{200, 3},
	} {
		if _, err := store.SaveScore("meteors", rec.score, rec.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different game mode
	if _, err := store.SaveScore("meteors-practice", 500, 5); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("meteors", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %d, %d, %d",
			scores[0].Score, scores[1].Score, scores[2].Score)
	}
	if scores[0].Level != 3 {
		t.Errorf("Expected level 3 on top entry, got %d", scores[0].Level)
	}

	practice, err := store.TopScores("meteors-practice", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(practice) != 1 || practice[0].Score != 500 {
		t.Errorf("Practice scores wrong: %+v", practice)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveScore("meteors", i*10, 1); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("meteors", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}

	// Non-positive limit falls back to the default of 10
	scores, err = store.TopScores("meteors", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected 10 scores with default limit, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTemp(t)

	// No scores yet
	high, err := store.HighScore("meteors")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 high score, got %d", high)
	}

	store.SaveScore("meteors", 75, 1)
	store.SaveScore("meteors", 300, 4)
	store.SaveScore("meteors", 150, 2)

	high, err = store.HighScore("meteors")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTemp(t)

	store.SaveScore("meteors", 100, 1)
	store.SaveScore("meteors-practice", 200, 2)

	if err := store.ClearScores("meteors"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.AllScores("meteors")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}

	// Other games untouched
	practice, err := store.AllScores("meteors-practice")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(practice) != 1 {
		t.Errorf("Expected practice scores to survive, got %d", len(practice))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTemp(t)

	store.SaveScore("meteors", 100, 2)
	store.SaveScore("meteors", 300, 5)
	store.SaveScore("meteors", 200, 3)

	stats, err := store.GetGameStats("meteors")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("Expected 3 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.BestLevel != 5 {
		t.Errorf("Expected best level 5, got %d", stats.BestLevel)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected avg score 200, got %v", stats.AvgScore)
	}
	if stats.TotalScore != 600 {
		t.Errorf("Expected total score 600, got %d", stats.TotalScore)
	}
}

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}
