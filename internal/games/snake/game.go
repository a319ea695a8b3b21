package snake

import (
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/greedy-snake/internal/config"
	"github.com/vovakirdan/greedy-snake/internal/core"
	"github.com/vovakirdan/greedy-snake/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic" // Edges wrap around
	ModeWalled  Mode = "walled"  // Edges are walls
)

// maxQueuedTurns bounds how many typed turns are buffered between moves.
const maxQueuedTurns = 3

// Game implements registry.Game on top of State and Advance.
type Game struct {
	mode  Mode
	rules Rules
	rng   *rand.Rand
	now   func() time.Time
	state State
	queue []Direction // Turns typed but not yet applied, oldest first

	screenW  int
	screenH  int
	tooSmall bool
}

var (
	rulesMu     sync.RWMutex
	activeRules = DefaultRules()
)

// Configure sets the rules used by games created afterwards.
// The wall policy is decided by each game's mode.
func Configure(cfg config.SnakeConfig) {
	rulesMu.Lock()
	defer rulesMu.Unlock()
	activeRules = RulesFromConfig(cfg)
}

// RulesFromConfig converts a loaded config into session rules.
func RulesFromConfig(cfg config.SnakeConfig) Rules {
	return Rules{
		Grid:              Grid{Cols: cfg.Grid.Cols, Rows: cfg.Grid.Rows},
		Walls:             WallsWrap,
		InitialSpeed:      cfg.Speed.Initial,
		MinSpeed:          cfg.Speed.Min,
		FoodSpeedBonus:    cfg.Speed.FoodBonus,
		LevelSpeedBonus:   cfg.Speed.LevelBonus,
		SpecialSpeedDelta: cfg.Speed.SpecialDelta,
		InitialLives:      cfg.Lives.Initial,
		PointsPerLevel:    cfg.Levels.PointsPerLevel,
		SpecialChance:     cfg.Special.Chance,
		SpecialTTL:        cfg.Special.TTL,
	}
}

// New creates a game in the given mode using the configured rules.
func New(mode Mode) *Game {
	rulesMu.RLock()
	rules := activeRules
	rulesMu.RUnlock()
	return NewWithRules(mode, rules)
}

// NewWithRules creates a game with explicit rules.
func NewWithRules(mode Mode, rules Rules) *Game {
	rules.Walls = WallsWrap
	if mode == ModeWalled {
		rules.Walls = WallsSolid
	}
	return &Game{
		mode:  mode,
		rules: rules,
		now:   time.Now,
	}
}

func init() {
	registry.Register(string(ModeClassic), func() registry.Game {
		return New(ModeClassic)
	})
	registry.Register(string(ModeWalled), func() registry.Game {
		return New(ModeWalled)
	})
}

// SetClock overrides the time source used for special food expiry.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeWalled {
		return "Snake (Walled)"
	}
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.state = NewState(g.rules, g.rng)
	g.queue = g.queue[:0]
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts to a new screen size without touching the session.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	w, h := RequiredSize(g.rules.Grid)
	g.tooSmall = width < w || height < h
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	// Handle restart
	if input.Has(core.ActionRestart) && g.state.Over {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.state.Over && !g.tooSmall {
		g.state.Paused = !g.state.Paused
	}

	// Don't process if game over, paused or too small
	if g.state.Over || g.state.Paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range input.Sequence() {
		g.enqueue(directionFor(a))
	}

	events := Advance(&g.state, g.dequeue(), g.now(), g.rng)
	if core.HasEvent(events, core.EventCollision) {
		// Buffered turns belonged to the snake that just crashed
		g.queue = g.queue[:0]
	}
	return core.StepResult{State: g.State(), Events: events}
}

// enqueue buffers a turn if it is valid relative to the last buffered one.
func (g *Game) enqueue(d Direction) {
	if d == DirNone || len(g.queue) >= maxQueuedTurns {
		return
	}
	last := g.state.Dir
	if n := len(g.queue); n > 0 {
		last = g.queue[n-1]
	}
	if last.Turnable(d) {
		g.queue = append(g.queue, d)
	}
}

// dequeue pops the oldest buffered turn.
func (g *Game) dequeue() Direction {
	if len(g.queue) == 0 {
		return DirNone
	}
	d := g.queue[0]
	g.queue = append(g.queue[:0], g.queue[1:]...)
	return d
}

// directionFor maps an input action to a direction.
func directionFor(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	case core.ActionRight:
		return DirRight
	default:
		return DirNone
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Level:    g.state.Level,
		Lives:    g.state.Lives,
		Speed:    g.state.Speed,
		GameOver: g.state.Over,
		Paused:   g.state.Paused,
	}
}
