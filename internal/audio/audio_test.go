package audio

import (
	"io"
	"math"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/greedy-snake/internal/core"
)

func TestNewDisabledIsNop(t *testing.T) {
	p := New(Options{Enabled: false}, log.New(io.Discard))
	if _, ok := p.(Nop); !ok {
		t.Fatalf("New(disabled) = %T, want Nop", p)
	}
	// Must be safe to call in any order.
	p.StartMusic()
	p.Play(CueEat)
	p.StopMusic()
	p.Close()
	p.Play(CueGameOver)
}

func TestCuesFor(t *testing.T) {
	tests := []struct {
		name   string
		events []core.Event
		want   []Cue
	}{
		{"nothing", nil, nil},
		{"food", []core.Event{{Kind: core.EventAteFood}}, []Cue{CueEat}},
		{
			"level up",
			[]core.Event{{Kind: core.EventAteFood}, {Kind: core.EventLevelUp}},
			[]Cue{CueEat, CueLevelUp},
		},
		{
			"collision",
			[]core.Event{{Kind: core.EventCollision, Detail: "wall"}, {Kind: core.EventLifeLost}},
			[]Cue{CueLifeLost},
		},
		{
			"game over",
			[]core.Event{{Kind: core.EventCollision}, {Kind: core.EventLifeLost}, {Kind: core.EventGameOver}},
			[]Cue{CueGameOver},
		},
		{
			"special",
			[]core.Event{{Kind: core.EventSpecialSpawned}, {Kind: core.EventAteSpecial, Detail: "add_life"}},
			[]Cue{CueSpecial},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CuesFor(tt.events); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CuesFor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGeneratedCues(t *testing.T) {
	for _, c := range []Cue{CueEat, CueSpecial, CueLevelUp, CueLifeLost, CueGameOver} {
		buf := generate(c)
		if len(buf) == 0 || len(buf)%8 != 0 {
			t.Errorf("%v: buffer length %d is not whole stereo frames", c, len(buf))
			continue
		}
		for i := 0; i < len(buf); i += 4 {
			bits := uint32(buf[i]) | uint32(buf[i+1])<<8 | uint32(buf[i+2])<<16 | uint32(buf[i+3])<<24
			v := math.Float32frombits(bits)
			if v < -1 || v > 1 || math.IsNaN(float64(v)) {
				t.Fatalf("%v: sample %d = %v out of range", c, i/4, v)
			}
		}
	}
}

func TestSoundReaderEOF(t *testing.T) {
	r := &soundReader{data: make([]byte, 20)}
	p := make([]byte, 16)

	if n, err := r.Read(p); n != 16 || err != nil {
		t.Fatalf("first Read = %d, %v", n, err)
	}
	if n, err := r.Read(p); n != 4 || err != nil {
		t.Fatalf("second Read = %d, %v", n, err)
	}
	if _, err := r.Read(p); err != io.EOF {
		t.Fatalf("third Read err = %v, want EOF", err)
	}
}

func TestMusicReaderNeverEnds(t *testing.T) {
	m := newMusicReader()
	p := make([]byte, 8*1024+3)
	for i := 0; i < 50; i++ {
		n, err := m.Read(p)
		if err != nil || n != 8*1024 {
			t.Fatalf("Read #%d = %d, %v", i, n, err)
		}
	}
	if m.frame != 50*1024 {
		t.Errorf("frame = %d, want %d", m.frame, 50*1024)
	}
}
