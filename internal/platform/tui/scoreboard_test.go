package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-dash/internal/storage"
)

func openBoardStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, s := range []int{9, 5} {
		if _, err := store.SaveScore("stub", s); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}
	if _, err := store.SaveBestScore("stub", 9); err != nil {
		t.Fatalf("SaveBestScore: %v", err)
	}
	return store
}

func TestScoreboardShowsBestAndStats(t *testing.T) {
	m := NewScoreboardModel(openBoardStore(t), 80, 30)
	view := m.View()

	for _, want := range []string{"SCOREBOARD - Stub", "Best: 9", "2 games, avg 7.0", "#1"} {
		if !strings.Contains(view, want) {
			t.Errorf("scoreboard view missing %q", want)
		}
	}

	rows := m.table.Rows()
	if len(rows) != 2 || rows[0][1] != "9" {
		t.Fatalf("top rows = %v, want 9 first", rows)
	}
}

func TestScoreboardToggleRecent(t *testing.T) {
	m := NewScoreboardModel(openBoardStore(t), 80, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = next.(ScoreboardModel)

	if !m.recent {
		t.Fatal("r did not switch to recent sessions")
	}
	rows := m.table.Rows()
	if len(rows) != 2 || rows[0][1] != "5" || rows[0][0] != "-" {
		t.Fatalf("recent rows = %v, want latest session first", rows)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	view := m.View()

	if !strings.Contains(view, "No scores recorded yet.") || !strings.Contains(view, "Best: 0") {
		t.Errorf("empty scoreboard view = %q", view)
	}
}

func TestScoreboardBack(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 30)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	board := next.(ScoreboardModel)

	if !board.IsGoingBack() || board.IsQuitting() || cmd == nil {
		t.Fatal("esc should leave for the menu")
	}
	if board.View() != "" {
		t.Error("view should be empty after leaving")
	}
}
