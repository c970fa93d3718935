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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "asteroids", Score: 100, Kills: 10, DurationMS: 30000},
		{GameID: "asteroids", Score: 50, Kills: 5, Preset: "easy"},
		{GameID: "asteroids", Score: 200, Kills: 15, Preset: "hard", DurationMS: 61000},
		{GameID: "other", Score: 500},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("asteroids", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	expected := []int{200, 100, 50}
	for i, score := range expected {
		if top[i].Score != score {
			t.Errorf("top[%d].Score = %d, expected %d", i, top[i].Score, score)
		}
	}
	if top[0].Preset != "hard" || top[0].Kills != 15 || top[0].Duration() != 61*time.Second {
		t.Errorf("top[0] = %+v, fields not preserved", top[0])
	}
}

func TestStoreTopRunsLimitAndTies(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("asteroids", (i+1)*100)
	}
	firstTie, _ := store.SaveScore("asteroids", 500)

	top, err := store.TopRuns("asteroids", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 500 || top[2].Score != 400 {
		t.Errorf("Runs not in expected order: %v", top)
	}
	if top[1].ID != firstTie {
		t.Errorf("later tie ranked first: %v", top)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("asteroids")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("asteroids", 100)
	store.SaveScore("asteroids", 300)
	store.SaveScore("asteroids", 200)

	high, err = store.HighScore("asteroids")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("asteroids", 100)
	store.SaveScore("asteroids", 200)
	store.SaveScore("other", 300)

	if err := store.ClearRuns("asteroids"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.TopRuns("asteroids", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("other", 10); len(runs) != 1 {
		t.Error("Other game runs should not be affected")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("asteroids")
	if err != nil {
		t.Fatalf("GetGameStats() on empty failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(Run{GameID: "asteroids", Score: 100, Kills: 10, DurationMS: 5000})
	store.SaveRun(Run{GameID: "asteroids", Score: 300, Kills: 25, DurationMS: 9000})

	stats, err := store.GetGameStats("asteroids")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TotalKills != 35 || stats.LongestMS != 9000 {
		t.Errorf("TotalKills = %d, LongestMS = %d", stats.TotalKills, stats.LongestMS)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}
