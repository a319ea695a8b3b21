package snake

// Phase summarizes what the game is doing, for overlays and recordings.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhasePaused   Phase = "paused"
	PhaseGameOver Phase = "game_over"
	PhaseTooSmall Phase = "paused_small_window"
)

// Snapshot returns a deep copy of the session state for recording and
// determinism checks.
func (g *Game) Snapshot() State {
	return g.state.Clone()
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	switch {
	case g.tooSmall:
		return PhaseTooSmall
	case g.state.Over:
		return PhaseGameOver
	case g.state.Paused:
		return PhasePaused
	default:
		return PhasePlaying
	}
}
