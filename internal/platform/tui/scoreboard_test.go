package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Yanthir84/PawRun/internal/storage"

	// Register the game so the scoreboard has something to list
	_ "github.com/Yanthir84/PawRun/internal/game/runner"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreboardShowsSavedRuns(t *testing.T) {
	store := openTestStore(t)
	saved := []struct {
		score    int
		distance float64
	}{
		{150, 320},
		{400, 810},
		{90, 140},
	}
	for _, r := range saved {
		if _, err := store.SaveRun("run", r.score, r.distance); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)

	rows := m.table.Rows()
	if len(rows) != len(saved) {
		t.Fatalf("%d rows, want %d", len(rows), len(saved))
	}
	if rows[0][0] != "#1" || rows[0][1] != "400" || rows[0][2] != "810m" {
		t.Fatalf("top row = %v, want rank #1 score 400 distance 810m", rows[0])
	}

	view := m.View()
	if !strings.Contains(view, "BEST RUNS - Paw Run") {
		t.Fatal("scoreboard title missing from view")
	}
	if !strings.Contains(view, "400") {
		t.Fatal("top score missing from view")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 24)

	if len(m.table.Rows()) != 0 {
		t.Fatalf("expected no rows without a store, got %d", len(m.table.Rows()))
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Fatal("empty-state message missing from view")
	}
}

func TestScoreboardEmptyGame(t *testing.T) {
	store := openTestStore(t)

	m := NewScoreboardModel(store, 100, 30)
	if len(m.table.Rows()) != 0 {
		t.Fatalf("expected no rows for a game with no runs, got %d", len(m.table.Rows()))
	}
}
