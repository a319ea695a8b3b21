// Package tui runs the snake game in a terminal with Bubble Tea: the mode
// menu, the play loop, the scoreboard, replays and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// idleRate is the tick rate while paused or on the game over screen, so
// that restart and resume are still picked up.
const idleRate = 10

// blinkRate is how often the start prompt toggles per second.
const blinkRate = 3

// TickMsg is sent to trigger a game simulation tick. Owner identifies the
// model that scheduled it so that stale chains are ignored.
type TickMsg struct {
	Owner uint64
	At    time.Time
}

// blinkMsg toggles the start prompt.
type blinkMsg struct {
	Owner uint64
}

var nextOwner atomic.Uint64

// newOwner returns a process-unique tick owner id.
func newOwner() uint64 {
	return nextOwner.Add(1)
}

// tickCmd returns a command that sends one tick after 1/rate seconds.
func tickCmd(owner uint64, rate int) tea.Cmd {
	if rate <= 0 {
		rate = idleRate
	}
	interval := time.Second / time.Duration(rate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Owner: owner, At: t}
	})
}

func blinkCmd(owner uint64) tea.Cmd {
	return tea.Tick(time.Second/blinkRate, func(time.Time) tea.Msg {
		return blinkMsg{Owner: owner}
	})
}
