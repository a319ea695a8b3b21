package recorder

import (
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/greedy-snake/internal/games/snake"
)

func TestRecordAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "records")
	r, err := New(dir, "abc", log.New(io.Discard))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if filepath.Base(r.Path()) != "session_abc.jsonl" {
		t.Errorf("Path = %s", r.Path())
	}

	rules := snake.DefaultRules()
	rules.SpecialChance = 0.5
	rng := rand.New(rand.NewSource(3))
	st := snake.NewState(rules, rng)
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var want []snake.State
	for i := 0; i < 20; i++ {
		at = at.Add(125 * time.Millisecond)
		snake.Advance(&st, snake.DirNone, at, rng)
		want = append(want, st.Clone())
		r.Record(Frame{Tick: st.Ticks, At: at, Mode: "classic", State: st.Clone()})
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	frames, err := Load(r.Path())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(frames) != len(want) {
		t.Fatalf("got %d frames, want %d", len(frames), len(want))
	}
	for i, f := range frames {
		w := want[i]
		if f.Tick != w.Ticks || f.State.Head() != w.Head() || f.State.Score != w.Score {
			t.Errorf("frame %d: tick=%d head=%v", i, f.Tick, f.State.Head())
		}
		if len(f.State.Snake) != len(w.Snake) || f.State.Dir != w.Dir {
			t.Errorf("frame %d: snake %v dir %v, want %v %v", i, f.State.Snake, f.State.Dir, w.Snake, w.Dir)
		}
		if (f.State.Special == nil) != (w.Special == nil) {
			t.Errorf("frame %d: special mismatch", i)
		} else if w.Special != nil && f.State.Special.Kind != w.Special.Kind {
			t.Errorf("frame %d: special kind %v, want %v", i, f.State.Special.Kind, w.Special.Kind)
		}
		if f.State.Rules.SpecialTTL != rules.SpecialTTL {
			t.Errorf("frame %d: rules not preserved", i)
		}
	}
}

func TestRecordAfterCloseIsIgnored(t *testing.T) {
	r, err := New(t.TempDir(), "closed", log.New(io.Discard))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	r.Record(Frame{Tick: 1})
	if err := r.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	frames, err := Load(r.Path())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(frames) != 0 {
		t.Errorf("got %d frames after close, want 0", len(frames))
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.jsonl")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.jsonl")
	data := "{\"tick\":1}\n\n{broken\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed line")
	}
}
