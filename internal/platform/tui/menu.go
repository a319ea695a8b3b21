package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/greedy-snake/internal/registry"
)

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	items          []registry.ModeInfo
	top            []int
	cursor         int
	width          int
	height         int
	quitting       bool
	selected       *registry.ModeInfo
	openScoreboard bool
}

// NewMenuModel creates a new menu model. top is shown under the list.
func NewMenuModel(top []int, width, height int) MenuModel {
	return MenuModel{
		items:  registry.List(),
		top:    top,
		width:  width,
		height: height,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
	}
	return m, nil
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var list strings.Builder
	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuSelectedStyle.Render("> " + item.Title)
		}
		list.WriteString(line)
		list.WriteString("\n")
	}

	best := "Best: -"
	if len(m.top) > 0 {
		parts := make([]string, len(m.top))
		for i, s := range m.top {
			parts[i] = fmt.Sprintf("%d. %d", i+1, s)
		}
		best = strings.Join(parts, "   ")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		menuTitleStyle.Render("G R E E D Y   S N A K E"),
		"",
		"Select a mode",
		"",
		list.String(),
		textStyle.Render(best),
		"",
		helpStyle.Render("↑/↓: navigate  enter: play  tab: scores  q: quit"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Selected returns the chosen mode, or nil.
func (m MenuModel) Selected() *registry.ModeInfo {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}
