package storage

import (
	"os"
	"path/filepath"
	"testing"
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "defender", Player: "ana", Score: 100, Level: 0, Destroyed: 10, Energy: 0},
		{GameID: "defender", Player: "bo", Score: 540, Level: 2, Destroyed: 3, Energy: 40, Success: true, Difficulty: "hard", Seed: 7, DurationSecs: 150},
		{GameID: "defender", Player: "cy", Score: 220, Level: 1, Destroyed: 4, Energy: 20},
		{GameID: "other", Score: 999},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("defender", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	if top[0].Score != 540 || top[1].Score != 220 || top[2].Score != 100 {
		t.Errorf("Runs not in expected order: %+v", top)
	}

	best := top[0]
	if best.Player != "bo" || best.Level != 2 || best.Destroyed != 3 || best.Energy != 40 {
		t.Errorf("Fields did not round-trip: %+v", best)
	}
	if !best.Success || best.Difficulty != "hard" || best.Seed != 7 || best.DurationSecs != 150 {
		t.Errorf("Fields did not round-trip: %+v", best)
	}
	if top[1].Success {
		t.Error("Failed run should load with Success=false")
	}
	if best.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{GameID: "defender", Score: (i + 1) * 100})
	}

	top, err := store.TopRuns("defender", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %+v", top)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 4; i++ {
		store.SaveRun(Run{GameID: "defender", Score: i})
	}

	recent, err := store.RecentRuns("defender", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 3 || recent[1].Score != 2 {
		t.Errorf("RecentRuns() = %+v, expected the last two runs newest first", recent)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("defender")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRun(Run{GameID: "defender", Score: 100})
	store.SaveRun(Run{GameID: "defender", Score: 300})
	store.SaveRun(Run{GameID: "defender", Score: 200})

	high, err = store.HighScore("defender")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "defender", Score: 100})
	store.SaveRun(Run{GameID: "other", Score: 300})

	if err := store.ClearRuns("defender"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns("defender", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	other, _ := store.TopRuns("other", 10)
	if len(other) != 1 {
		t.Error("Other games should not be affected by clearing")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("defender")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveRun(Run{GameID: "defender", Score: 100, Level: 1})
	store.SaveRun(Run{GameID: "defender", Score: 300, Level: 3, Success: true})

	stats, err := store.GetGameStats("defender")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.Successes != 1 {
		t.Errorf("RunsCount=%d Successes=%d, expected 2 and 1", stats.RunsCount, stats.Successes)
	}
	if stats.HighScore != 300 || stats.BestLevel != 3 || stats.TotalScore != 400 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, expected 200", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
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
