package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/greedy-snake/internal/core"
)

func TestSessionMenuToGameAndBack(t *testing.T) {
	s := NewSessionModel(Deps{Logger: log.New(io.Discard)}, core.RuntimeConfig{ScreenW: 100, ScreenH: 30})

	if len(s.menu.items) == 0 {
		t.Fatal("no modes registered")
	}

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.view != viewGame {
		t.Fatalf("view = %v, want game", s.view)
	}
	if s.game.game.ID() != s.menu.items[0].ID {
		t.Errorf("started %q, want %q", s.game.game.ID(), s.menu.items[0].ID)
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.view != viewMenu {
		t.Errorf("view = %v, want menu after esc", s.view)
	}
}

func TestSessionScoreboardWithoutHistory(t *testing.T) {
	s := NewSessionModel(Deps{}, core.RuntimeConfig{ScreenW: 100, ScreenH: 30})

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if s.view != viewScoreboard {
		t.Fatalf("view = %v, want scoreboard", s.view)
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.view != viewMenu {
		t.Errorf("view = %v, want menu", s.view)
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	s := NewSessionModel(Deps{}, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	s = next.(SessionModel)
	if !s.quitting || cmd == nil {
		t.Error("q in the menu should quit")
	}
}
