package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-dash/internal/core"
	"github.com/vovakirdan/flappy-dash/internal/registry"
	"github.com/vovakirdan/flappy-dash/internal/storage"
)

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{} })
}

func TestMenuListsGamesWithBest(t *testing.T) {
	scores := storage.NewMemory()
	scores.SaveBestScore("stub", 12)

	m := NewMenuModel(scores, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	view := m.View()

	for _, want := range []string{"Stub", "[test]", "best 12"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	menu := next.(MenuModel)
	if cmd == nil || menu.Selected() == nil {
		t.Fatal("enter did not select a game")
	}
	if menu.Selected().GameID != "stub" {
		t.Errorf("selected %q, want stub", menu.Selected().GameID)
	}
}

func TestMenuScoreboard(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab did not request the scoreboard")
	}
}

func TestCenterTextIgnoresStyling(t *testing.T) {
	got := centerText(menuTitleStyle.Render("ab"), 6)
	if !strings.HasPrefix(got, "  ") {
		t.Errorf("centerText() = %q, want two spaces of padding", got)
	}
}
