package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/greedy-snake/internal/audio"
	"github.com/vovakirdan/greedy-snake/internal/core"
	"github.com/vovakirdan/greedy-snake/internal/games/snake"
	"github.com/vovakirdan/greedy-snake/internal/recorder"
	"github.com/vovakirdan/greedy-snake/internal/registry"
	"github.com/vovakirdan/greedy-snake/internal/scores"
	"github.com/vovakirdan/greedy-snake/internal/storage"
)

// Deps are the collaborators shared by every game model. Any of them may
// be nil except Logger, which defaults to a discarding logger.
type Deps struct {
	Scores    *scores.Store
	History   *storage.Store
	Audio     audio.Player
	RecordDir string // Empty disables recording
	Logger    *log.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Audio == nil {
		d.Audio = audio.Nop{}
	}
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	return d
}

// phase is where the model is in the start / play / game over flow.
// Pausing is owned by the game itself.
type phase int

const (
	phaseStart phase = iota
	phasePlaying
	phaseGameOver
)

// sizer is implemented by games that know their minimum screen size.
type sizer interface {
	RequiredSize() (width, height int)
}

// snapshotter is implemented by games whose state can be recorded.
type snapshotter interface {
	Snapshot() snake.State
}

// Model is the Bubble Tea model for one game mode.
type Model struct {
	game       registry.Game
	deps       Deps
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	owner      uint64
	phase      phase
	blink      bool
	width      int
	height     int
	inputFrame core.InputFrame
	gameState  core.GameState
	top        []int

	sessionID string
	startedAt time.Time
	rec       *recorder.Recorder
	lastTick  uint64
	submitted bool // Final score stored for the current session

	quitting   bool
	backToMenu bool
	quitOnBack bool // Set when there is no menu to return to
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, deps Deps, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	deps = deps.withDefaults()

	m := Model{
		game:       game,
		deps:       deps,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		owner:      newOwner(),
		blink:      true,
		inputFrame: core.NewInputFrame(),
		top:        scores.Normalize(nil),
	}
	if deps.Scores != nil {
		m.top = deps.Scores.Load()
	}
	m.layout(cfg.ScreenW, cfg.ScreenH)
	return m
}

// Init starts the blinking start prompt.
func (m Model) Init() tea.Cmd {
	return blinkCmd(m.owner)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.layout(msg.Width, msg.Height)
		return m, nil

	case blinkMsg:
		if msg.Owner != m.owner || m.phase != phaseStart {
			return m, nil
		}
		m.blink = !m.blink
		return m, blinkCmd(m.owner)

	case TickMsg:
		if msg.Owner != m.owner {
			return m, nil
		}
		return m.handleTick(msg.At)
	}
	return m, nil
}

// layout sizes the game screen, leaving room for the help line and, when
// the terminal is wide enough, the top scores panel.
func (m *Model) layout(width, height int) {
	m.width, m.height = width, height
	m.config.ScreenW, m.config.ScreenH = width, height
	m.help.Width = width

	gameW := width
	if m.showPanel() {
		gameW -= panelWidth
	}
	gameH := core.Max(height-1, 0)
	if m.screen == nil {
		m.screen = core.NewScreen(gameW, gameH)
	} else {
		m.screen.Resize(gameW, gameH)
	}
	m.game.Resize(gameW, gameH)
}

func (m Model) showPanel() bool {
	s, ok := m.game.(sizer)
	if !ok {
		return false
	}
	w, _ := s.RequiredSize()
	return m.width >= w+panelWidth
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	if m.phase == phaseStart {
		switch {
		case msg.String() == "ctrl+c", action == core.ActionQuit:
			m.quitting = true
			return m, tea.Quit
		case action == core.ActionBack:
			return m.back()
		}
		return m.start()
	}

	switch action {
	case core.ActionQuit:
		m.finishRecording()
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.finishRecording()
		return m.back()
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// back leaves the game for the menu, or exits when there is none.
func (m Model) back() (tea.Model, tea.Cmd) {
	if m.quitOnBack {
		m.quitting = true
		return m, tea.Quit
	}
	m.backToMenu = true
	return m, nil
}

// start leaves the start screen and begins the first session.
func (m Model) start() (tea.Model, tea.Cmd) {
	m.game.Reset(m.config)
	m.game.Resize(m.screen.Width(), m.screen.Height())
	m.gameState = m.game.State()
	m.phase = phasePlaying
	m.beginSession()
	return m, tickCmd(m.owner, m.tickRate())
}

// beginSession assigns a new session id and opens a recording if enabled.
func (m *Model) beginSession() {
	m.sessionID = uuid.NewString()
	m.startedAt = time.Now()
	m.submitted = false
	m.lastTick = 0

	if m.deps.RecordDir == "" {
		return
	}
	if _, ok := m.game.(snapshotter); !ok {
		return
	}
	rec, err := recorder.New(m.deps.RecordDir, m.sessionID, m.deps.Logger)
	if err != nil {
		m.deps.Logger.Error("could not start recording", "err", err)
		return
	}
	m.rec = rec
	m.deps.Logger.Info("recording session", "path", rec.Path())
}

// handleTick processes simulation ticks.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	if wasOver && !result.State.GameOver {
		m.beginSession()
	}

	for _, cue := range audio.CuesFor(result.Events) {
		m.deps.Audio.Play(cue)
	}
	m.record(at, result.Events)

	if result.State.GameOver {
		m.phase = phaseGameOver
		if !m.submitted {
			m.submit()
		}
	} else {
		m.phase = phasePlaying
	}
	return m, tickCmd(m.owner, m.tickRate())
}

// tickRate returns the current ticks per second.
func (m Model) tickRate() int {
	if m.gameState.Paused || m.gameState.GameOver || m.gameState.Speed <= 0 {
		return idleRate
	}
	return m.gameState.Speed
}

// record writes a frame for every tick the game advanced.
func (m *Model) record(at time.Time, events []core.Event) {
	if m.rec == nil {
		return
	}
	st := m.game.(snapshotter).Snapshot()
	if st.Ticks == m.lastTick {
		return
	}
	m.lastTick = st.Ticks

	names := make([]string, 0, len(events))
	for _, e := range events {
		names = append(names, e.Kind.String())
	}
	m.rec.Record(recorder.Frame{
		Tick:   st.Ticks,
		At:     at,
		Mode:   m.game.ID(),
		Events: names,
		State:  st,
	})
}

// submit stores the final score once per session.
func (m *Model) submit() {
	m.submitted = true
	score := m.gameState.Score
	duration := time.Since(m.startedAt)

	if m.deps.Scores != nil {
		m.top = m.deps.Scores.Update(score)
	}
	if m.deps.History != nil {
		_, err := m.deps.History.SaveSession(storage.Session{
			SessionID: m.sessionID,
			Mode:      m.game.ID(),
			Score:     score,
			Level:     m.gameState.Level,
			Duration:  duration,
		})
		if err != nil {
			m.deps.Logger.Error("could not save session", "err", err)
		}
	}
	m.deps.Logger.Info("session finished",
		"session", m.sessionID,
		"mode", m.game.ID(),
		"score", score,
		"level", m.gameState.Level,
		"duration", duration.Round(time.Second),
	)
	m.finishRecording()
}

// finishRecording flushes and closes the current recording, if any.
func (m *Model) finishRecording() {
	if m.rec == nil {
		return
	}
	if err := m.rec.Close(); err != nil {
		m.deps.Logger.Error("could not close recording", "err", err)
	}
	m.rec = nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	if m.phase == phaseStart {
		return m.startView()
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	view := RenderScreen(m.screen)
	if m.showPanel() {
		view = lipgloss.JoinHorizontal(lipgloss.Top, view, renderTopPanel(m.top))
	}
	return view + "\n" + helpStyle.Render(m.help.View(m.keys))
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// startView renders the title screen.
func (m Model) startView() string {
	hint := "esc: menu  q: quit"
	if m.quitOnBack {
		hint = "esc/q: quit"
	}
	prompt := " "
	if m.blink {
		prompt = promptStyle.Render("Press any key to start")
	}
	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(m.game.Title()),
		"",
		textStyle.Render("Use the arrow keys to control the snake"),
		textStyle.Render("Eat food to grow longer and increase score"),
		"",
		prompt,
		"",
		helpStyle.Render(hint),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// IsQuitting returns true if the user asked to exit the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the mode menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Close releases the recording of an unfinished session.
func (m Model) Close() {
	m.finishRecording()
}

// Run plays a single mode until the user quits.
func Run(game registry.Game, deps Deps, cfg core.RuntimeConfig) error {
	model := NewModel(game, deps, cfg)
	model.quitOnBack = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.Close()
	}
	return err
}
