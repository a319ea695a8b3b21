package core

import "testing"

func TestInputFrameSequence(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionPause)
	f.Set(ActionLeft)
	f.Set(ActionPause) // repeated non-direction keeps its first position
	f.Set(ActionUp)    // repeated direction is kept

	seq := f.Sequence()
	want := []Action{ActionUp, ActionPause, ActionLeft, ActionUp}
	if len(seq) != len(want) {
		t.Fatalf("Sequence() = %v, expected %v", seq, want)
	}
	for i := range want {
		if seq[i] != want[i] {
			t.Errorf("Sequence()[%d] = %v, expected %v", i, seq[i], want[i])
		}
	}
	if !f.Has(ActionLeft) {
		t.Error("Has(Left) should be true")
	}

	f.Clear()
	if f.Has(ActionUp) || len(f.Sequence()) != 0 {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("Zero frame should have no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionIsDirection(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsDirection() {
			t.Errorf("%v should be a direction", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionPause, ActionRestart, ActionQuit} {
		if a.IsDirection() {
			t.Errorf("%v should not be a direction", a)
		}
	}
}

func TestHasEvent(t *testing.T) {
	events := []Event{{Kind: EventAteFood}, {Kind: EventLevelUp}}
	if !HasEvent(events, EventLevelUp) {
		t.Error("HasEvent should find level_up")
	}
	if HasEvent(events, EventGameOver) {
		t.Error("HasEvent should not find game_over")
	}
	if EventGameOver.String() != "game_over" {
		t.Errorf("EventGameOver.String() = %q", EventGameOver.String())
	}
}
