package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/greedy-snake/internal/core"
	"github.com/vovakirdan/greedy-snake/internal/registry"
	"github.com/vovakirdan/greedy-snake/internal/scores"
)

// view is the screen a SessionModel is showing.
type view int

const (
	viewMenu view = iota
	viewGame
	viewScoreboard
)

// SessionModel manages the full flow: menu -> game or scoreboard -> menu.
// It is the top-level model for menu-driven local play and SSH sessions.
type SessionModel struct {
	deps     Deps
	config   core.RuntimeConfig
	view     view
	menu     MenuModel
	game     Model
	board    ScoreboardModel
	quitting bool
}

// NewSessionModel creates a new session model starting at the menu.
func NewSessionModel(deps Deps, cfg core.RuntimeConfig) SessionModel {
	deps = deps.withDefaults()
	m := SessionModel{
		deps:   deps,
		config: cfg,
	}
	m.menu = NewMenuModel(m.topScores(), cfg.ScreenW, cfg.ScreenH)
	return m
}

func (m SessionModel) topScores() []int {
	if m.deps.Scores == nil {
		return scores.Normalize(nil)
	}
	return m.deps.Scores.Load()
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.board = NewScoreboardModel(m.deps.History, m.config.ScreenW, m.config.ScreenH)
		m.view = viewScoreboard
		return m, m.board.Init()

	case m.menu.Selected() != nil:
		game, err := registry.Create(m.menu.Selected().ID)
		if err != nil {
			m.deps.Logger.Error("could not create game", "err", err)
			m.menu = NewMenuModel(m.topScores(), m.config.ScreenW, m.config.ScreenH)
			return m, nil
		}
		m.game = NewModel(game, m.deps, m.config)
		m.view = viewGame
		return m, m.game.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(Model)

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	m.board = next.(ScoreboardModel)

	switch {
	case m.board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.board.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.topScores(), m.config.ScreenW, m.config.ScreenH)
	m.view = viewMenu
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScoreboard:
		return m.board.View()
	default:
		return m.menu.View()
	}
}

// Close releases the active game's resources.
func (m SessionModel) Close() {
	if m.view == viewGame {
		m.game.Close()
	}
}

// RunSession runs the menu-driven flow until the user quits.
func RunSession(deps Deps, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(NewSessionModel(deps, cfg), tea.WithAltScreen())
	final, err := p.Run()
	if m, ok := final.(SessionModel); ok {
		m.Close()
	}
	return err
}
