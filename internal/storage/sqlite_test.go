package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade", "scores.db")); err != nil {
		t.Errorf("expected database under home: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTemp(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("tetris", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("shooter", 12); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
		if scores[i].GameID != "tetris" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
		if scores[i].CreatedAt.IsZero() {
			t.Errorf("scores[%d] has no timestamp", i)
		}
	}

	other, err := store.TopScores("shooter", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 shooter score, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
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

	all, err := store.TopScores("test", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("default limit should return all 5, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTemp(t)

	high, err := store.HighScore("empty")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for no scores, got %d", high)
	}

	store.SaveScore("test", 100)
	store.SaveScore("test", 300)
	store.SaveScore("test", 200)

	high, err = store.HighScore("test")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestShotStats(t *testing.T) {
	store := openTemp(t)

	if err := store.SaveShotStats("shooter", 10, 4); err != nil {
		t.Fatalf("SaveShotStats() failed: %v", err)
	}
	if err := store.SaveShotStats("shooter", 6, 6); err != nil {
		t.Fatalf("SaveShotStats() failed: %v", err)
	}
	if err := store.SaveShotStats("shooter", 0, 0); err != nil {
		t.Fatalf("empty session should be skipped, got %v", err)
	}
	if err := store.SaveShotStats("shooter", 2, 3); err == nil {
		t.Error("more hits than shots should fail")
	}

	totals, err := store.ShotTotals("shooter")
	if err != nil {
		t.Fatalf("ShotTotals() failed: %v", err)
	}
	if totals != (ShotTotals{Sessions: 2, Shots: 16, Hits: 10}) {
		t.Errorf("totals = %+v", totals)
	}
	if got := totals.Accuracy(); got != 62.5 {
		t.Errorf("Accuracy() = %v, want 62.5", got)
	}

	empty, err := store.ShotTotals("tetris")
	if err != nil {
		t.Fatalf("ShotTotals() failed: %v", err)
	}
	if empty.Sessions != 0 || empty.Accuracy() != 0 {
		t.Errorf("empty totals = %+v", empty)
	}
}

func TestClearScores(t *testing.T) {
	store := openTemp(t)

	store.SaveScore("shooter", 5)
	store.SaveScore("tetris", 500)
	store.SaveShotStats("shooter", 8, 5)

	if err := store.ClearScores("shooter"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if high, _ := store.HighScore("shooter"); high != 0 {
		t.Errorf("shooter scores should be gone, high = %d", high)
	}
	if totals, _ := store.ShotTotals("shooter"); totals.Sessions != 0 {
		t.Errorf("shooter stats should be gone: %+v", totals)
	}
	if high, _ := store.HighScore("tetris"); high != 500 {
		t.Errorf("other games untouched, tetris high = %d", high)
	}
}
