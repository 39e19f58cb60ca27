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

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndBestTimes(t *testing.T) {
	store := openTestStore(t)

	wins := []int{120, 45, 300}
	for _, d := range wins {
		_, err := store.SaveResult(ResultEntry{
			Outcome: OutcomeWon, DurationSecs: d, Rows: 12, Cols: 12, Bombs: 50,
		})
		if err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}
	// Losses must never appear on the best-times board.
	_, err := store.SaveResult(ResultEntry{
		Outcome: OutcomeLost, DurationSecs: 5, Rows: 12, Cols: 12, Bombs: 50,
	})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	best, err := store.BestTimes(10)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}

	if len(best) != 3 {
		t.Fatalf("Expected 3 wins, got %d", len(best))
	}

	// Should be sorted by duration ascending
	if best[0].DurationSecs != 45 {
		t.Errorf("Expected fastest win to be 45s, got %d", best[0].DurationSecs)
	}
	if best[1].DurationSecs != 120 {
		t.Errorf("Expected second win to be 120s, got %d", best[1].DurationSecs)
	}
	if best[2].DurationSecs != 300 {
		t.Errorf("Expected third win to be 300s, got %d", best[2].DurationSecs)
	}
	for _, e := range best {
		if e.Outcome != OutcomeWon {
			t.Errorf("BestTimes returned a %q entry", e.Outcome)
		}
	}
}

func TestStoreBestTimesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult(ResultEntry{
			Outcome: OutcomeWon, DurationSecs: (i + 1) * 60, Rows: 9, Cols: 9, Bombs: 10,
		})
	}

	best, err := store.BestTimes(3)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}

	if len(best) != 3 {
		t.Errorf("Expected 3 entries with limit, got %d", len(best))
	}

	if best[0].DurationSecs != 60 || best[1].DurationSecs != 120 || best[2].DurationSecs != 180 {
		t.Errorf("Entries not in expected order: %v", best)
	}
}

func TestStoreRecent(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(ResultEntry{Outcome: OutcomeLost, DurationSecs: 10, Rows: 12, Cols: 12, Bombs: 50})
	store.SaveResult(ResultEntry{Outcome: OutcomeWon, DurationSecs: 90, Rows: 12, Cols: 12, Bombs: 50})

	recent, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}

	if len(recent) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(recent))
	}

	// Newest first
	if recent[0].Outcome != OutcomeWon {
		t.Errorf("Expected most recent entry to be the win, got %q", recent[0].Outcome)
	}
	if recent[0].Rows != 12 || recent[0].Cols != 12 || recent[0].Bombs != 50 {
		t.Errorf("Board shape not round-tripped: %+v", recent[0])
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	// Empty database
	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Played != 0 || stats.BestDuration != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveResult(ResultEntry{Outcome: OutcomeWon, DurationSecs: 200, Rows: 12, Cols: 12, Bombs: 50})
	store.SaveResult(ResultEntry{Outcome: OutcomeWon, DurationSecs: 80, Rows: 12, Cols: 12, Bombs: 50})
	store.SaveResult(ResultEntry{Outcome: OutcomeLost, DurationSecs: 15, Rows: 12, Cols: 12, Bombs: 50})

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}

	if stats.Played != 3 {
		t.Errorf("Expected 3 played, got %d", stats.Played)
	}
	if stats.Won != 2 || stats.Lost != 1 {
		t.Errorf("Expected 2 won / 1 lost, got %d / %d", stats.Won, stats.Lost)
	}
	// Best duration only considers wins
	if stats.BestDuration != 80 {
		t.Errorf("Expected best duration 80, got %d", stats.BestDuration)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(ResultEntry{Outcome: OutcomeWon, DurationSecs: 60, Rows: 12, Cols: 12, Bombs: 50})
	store.SaveResult(ResultEntry{Outcome: OutcomeLost, DurationSecs: 5, Rows: 12, Cols: 12, Bombs: 50})

	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	recent, _ := store.Recent(10)
	if len(recent) != 0 {
		t.Errorf("Expected 0 entries after clear, got %d", len(recent))
	}
}
