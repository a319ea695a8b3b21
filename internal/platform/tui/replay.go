package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/greedy-snake/internal/core"
	"github.com/vovakirdan/greedy-snake/internal/games/snake"
	"github.com/vovakirdan/greedy-snake/internal/recorder"
)

// maxReplayGap caps the pause between two frames, so that a long pause in
// the recorded session does not stall playback.
const maxReplayGap = time.Second

// replayMsg advances the replay by one frame.
type replayMsg struct {
	Owner uint64
}

// ReplayModel plays back a recorded session at its recorded pace.
type ReplayModel struct {
	frames   []recorder.Frame
	pos      int
	screen   *core.Screen
	owner    uint64
	paused   bool
	done     bool
	quitting bool
}

// NewReplayModel creates a replay of the given frames.
func NewReplayModel(frames []recorder.Frame, width, height int) ReplayModel {
	return ReplayModel{
		frames: frames,
		screen: core.NewScreen(width, height),
		owner:  newOwner(),
	}
}

// Init schedules the first frame.
func (m ReplayModel) Init() tea.Cmd {
	return m.next()
}

// next schedules the frame after pos.
func (m ReplayModel) next() tea.Cmd {
	if m.pos+1 >= len(m.frames) {
		return nil
	}
	gap := m.frames[m.pos+1].At.Sub(m.frames[m.pos].At)
	if gap <= 0 || gap > maxReplayGap {
		gap = time.Second / time.Duration(max(m.frames[m.pos].State.Speed, 1))
	}
	owner := m.owner
	return tea.Tick(gap, func(time.Time) tea.Msg {
		return replayMsg{Owner: owner}
	})
}

// Update handles messages.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
			if !m.paused {
				// A fresh owner drops the tick scheduled before pausing.
				m.owner = newOwner()
				return m, m.next()
			}
		case "r":
			m.pos, m.done, m.paused = 0, false, false
			m.owner = newOwner()
			return m, m.next()
		}

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)

	case replayMsg:
		if msg.Owner != m.owner || m.paused {
			return m, nil
		}
		m.pos++
		if m.pos >= len(m.frames)-1 {
			m.pos = max(len(m.frames)-1, 0)
			m.done = true
			return m, nil
		}
		return m, m.next()
	}
	return m, nil
}

// View renders the current frame and a progress bar.
func (m ReplayModel) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	if len(m.frames) == 0 {
		m.screen.DrawTextCentered(m.screen.Height()/2, "Recording is empty", core.ColorGray)
		return RenderScreen(m.screen)
	}

	f := m.frames[m.pos]
	st := f.State
	snake.Draw(m.screen, &st)

	y := m.screen.Height() - 1
	status := fmt.Sprintf(" %s  tick %d/%d ", f.Mode, f.Tick, m.frames[len(m.frames)-1].Tick)
	switch {
	case m.done:
		status += " [end: r replay, q quit]"
	case m.paused:
		status += " [paused: space resume]"
	}
	barW := core.Max(m.screen.Width()-len(status)-1, 0)
	filled := 0
	if len(m.frames) > 1 {
		filled = barW * m.pos / (len(m.frames) - 1)
	}
	m.screen.DrawHLine(0, y, barW, '░', core.ColorGray)
	m.screen.DrawHLine(0, y, filled, '█', core.ColorGreen)
	m.screen.DrawTextColored(barW+1, y, status, core.ColorWhite)
	return RenderScreen(m.screen)
}

// Position returns the index of the frame on screen.
func (m ReplayModel) Position() int {
	return m.pos
}

// RunReplay plays a recording until the user quits.
func RunReplay(frames []recorder.Frame, width, height int) error {
	_, err := tea.NewProgram(NewReplayModel(frames, width, height), tea.WithAltScreen()).Run()
	return err
}
