package snake

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/greedy-snake/internal/config"
	"github.com/vovakirdan/greedy-snake/internal/core"
	"github.com/vovakirdan/greedy-snake/internal/registry"
)

func newTestGame(t *testing.T, mode Mode) *Game {
	t.Helper()
	rules := DefaultRules()
	rules.SpecialChance = 0
	g := NewWithRules(mode, rules)
	clock := t0
	g.SetClock(func() time.Time {
		clock = clock.Add(time.Second / 8)
		return clock
	})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: 12345})
	// Keep the path ahead clear for movement assertions.
	g.state.Obstacles = nil
	g.state.Food = Position{X: 0, Y: 0}
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{"classic", "walled"} {
		if !registry.Exists(id) {
			t.Errorf("mode %q not registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID = %q, want %q", g.ID(), id)
		}
	}
}

func TestWalledModeUsesSolidWalls(t *testing.T) {
	if g := NewWithRules(ModeWalled, DefaultRules()); g.rules.Walls != WallsSolid {
		t.Error("walled mode does not use solid walls")
	}
	if g := NewWithRules(ModeClassic, DefaultRules()); g.rules.Walls != WallsWrap {
		t.Error("classic mode does not wrap")
	}
}

func TestStepQueuesTurns(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	start := g.state.Head()

	g.Step(frame(core.ActionUp, core.ActionLeft))
	if g.state.Dir != DirUp {
		t.Fatalf("Dir after first step = %v, want up", g.state.Dir)
	}
	if got := g.state.Head(); got != (Position{X: start.X, Y: start.Y - 1}) {
		t.Errorf("head = %v, want one up from %v", got, start)
	}

	g.Step(frame())
	if g.state.Dir != DirLeft {
		t.Errorf("Dir after second step = %v, want left", g.state.Dir)
	}
}

func TestStepQueuesRepeatedDirection(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	g.state.Obstacles = nil

	g.Step(frame(core.ActionUp, core.ActionLeft, core.ActionUp))
	want := []Direction{DirUp, DirLeft, DirUp}
	for i, d := range want {
		if i > 0 {
			g.Step(frame())
		}
		if g.state.Dir != d {
			t.Fatalf("Dir after step %d = %v, want %v", i+1, g.state.Dir, d)
		}
	}
}

func TestStepDropsReversal(t *testing.T) {
	g := newTestGame(t, ModeClassic)

	g.Step(frame(core.ActionLeft))
	if g.state.Dir != DirRight {
		t.Errorf("Dir = %v, want right", g.state.Dir)
	}
	if len(g.queue) != 0 {
		t.Errorf("reversal was queued: %v", g.queue)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, ModeClassic)

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused || g.Phase() != PhasePaused {
		t.Fatal("game did not pause")
	}
	ticks := g.state.Ticks
	g.Step(frame(core.ActionUp))
	if g.state.Ticks != ticks || g.state.Dir != DirRight {
		t.Error("paused game advanced")
	}

	res = g.Step(frame(core.ActionPause))
	if res.State.Paused {
		t.Error("game did not resume")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t, ModeWalled)
	g.state.Lives = 1
	g.state.Snake = []Position{{X: 29, Y: 3}}

	res := g.Step(frame())
	if !res.State.GameOver || g.Phase() != PhaseGameOver {
		t.Fatal("expected game over after hitting the wall with one life")
	}

	// Restart is honoured once the session is over.
	res = g.Step(frame(core.ActionRestart))
	if res.State.GameOver {
		t.Fatal("restart did not start a new session")
	}
	if res.State.Lives != 3 || res.State.Score != 0 || res.State.Level != 1 {
		t.Errorf("restarted state = %+v", res.State)
	}
}

func TestTooSmallScreenPauses(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	g.Resize(20, 10)

	if g.Phase() != PhaseTooSmall {
		t.Fatalf("Phase = %v, want too small", g.Phase())
	}
	ticks := g.state.Ticks
	g.Step(frame())
	if g.state.Ticks != ticks {
		t.Error("game advanced while the screen is too small")
	}

	scr := core.NewScreen(20, 10)
	g.Render(scr)
	if !strings.Contains(scr.String(), "too small") {
		t.Errorf("too small message not rendered:\n%s", scr.String())
	}

	g.Resize(80, 30)
	g.Step(frame())
	if g.state.Ticks != ticks+1 {
		t.Error("game did not resume after resize")
	}
}

func TestRenderHUDAndBoard(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	scr := core.NewScreen(80, 30)
	g.Render(scr)

	out := scr.String()
	if !strings.Contains(out, "Score: 0  Level: 1  Lives: 3  Speed: 8") {
		t.Errorf("HUD missing:\n%s", out)
	}
	if !strings.Contains(out, "██") || !strings.Contains(out, "()") {
		t.Errorf("snake or food missing:\n%s", out)
	}

	head := g.state.Head()
	board := boardRect(scr, g.rules.Grid)
	cell := scr.GetCell(board.X+1+head.X*blockWidth, board.Y+1+head.Y)
	if cell.Rune != '█' || cell.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v", cell)
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	g.state.Over = true
	g.state.Score = 17

	scr := core.NewScreen(80, 30)
	g.Render(scr)
	out := scr.String()
	for _, want := range []string{"Game Over!", "Final Score: 17", "R: Restart"} {
		if !strings.Contains(out, want) {
			t.Errorf("overlay missing %q", want)
		}
	}
}

func TestRulesFromConfig(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Grid.Cols = 12
	cfg.Lives.Initial = 5

	r := RulesFromConfig(cfg)
	if r.Grid.Cols != 12 || r.InitialLives != 5 {
		t.Errorf("rules = %+v", r)
	}
	if r.SpecialTTL != cfg.Special.TTL || r.MinSpeed != cfg.Speed.Min {
		t.Errorf("rules = %+v", r)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	g := newTestGame(t, ModeClassic)
	snap := g.Snapshot()
	g.Step(frame())

	if snap.Ticks == g.state.Ticks || snap.Head() == g.state.Head() {
		t.Error("snapshot tracks the live state")
	}
}
