package snake

import (
	"testing"
	"time"

	"github.com/vovakirdan/greedy-snake/internal/core"
)

func TestSpecialSpawnsOnFreeCell(t *testing.T) {
	s := testState(Position{X: 10, Y: 10}, DirRight)
	s.Rules.SpecialChance = 1
	s.Obstacles = []Position{{X: 3, Y: 3}}

	events := Advance(&s, DirNone, t0, newRNG())

	if s.Special == nil {
		t.Fatal("special did not spawn with chance 1")
	}
	if !core.HasEvent(events, core.EventSpecialSpawned) {
		t.Error("missing EventSpecialSpawned")
	}
	p := s.Special.Pos
	if contains(s.Snake, p) || contains(s.Obstacles, p) || p == s.Food {
		t.Errorf("special spawned on an occupied cell %v", p)
	}
	if !s.Special.SpawnedAt.Equal(t0) {
		t.Errorf("SpawnedAt = %v, want %v", s.Special.SpawnedAt, t0)
	}
}

func TestSpecialNeverSpawnsWithZeroChance(t *testing.T) {
	s := testState(Position{X: 10, Y: 10}, DirRight)
	rng := newRNG()
	for i := 0; i < 200; i++ {
		Advance(&s, DirNone, t0, rng)
		if s.Special != nil {
			t.Fatal("special spawned with chance 0")
		}
	}
}

func TestSpecialExpiresAfterTTL(t *testing.T) {
	s := testState(Position{X: 10, Y: 10}, DirRight)
	s.Special = &SpecialFood{Pos: Position{X: 0, Y: 19}, Kind: SpeedUp, SpawnedAt: t0}

	Advance(&s, DirNone, t0.Add(s.Rules.SpecialTTL), newRNG())
	if s.Special == nil {
		t.Fatal("special expired at exactly the TTL")
	}

	events := Advance(&s, DirNone, t0.Add(s.Rules.SpecialTTL+time.Millisecond), newRNG())
	if s.Special != nil {
		t.Fatal("special still present after the TTL")
	}
	if !core.HasEvent(events, core.EventSpecialExpired) {
		t.Error("missing EventSpecialExpired")
	}
}

func TestSpecialEffects(t *testing.T) {
	tests := []struct {
		name      string
		kind      FoodKind
		speed     int
		lives     int
		wantSpeed int
		wantLives int
		wantOver  bool
	}{
		{"speed up", SpeedUp, 8, 3, 13, 3, false},
		{"slow down", SlowDown, 12, 3, 7, 3, false},
		{"slow down clamps", SlowDown, 8, 3, 5, 3, false},
		{"add life", AddLife, 8, 3, 8, 4, false},
		{"remove life", RemoveLife, 8, 3, 8, 2, false},
		{"remove last life", RemoveLife, 8, 1, 8, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testState(Position{X: 10, Y: 10}, DirRight)
			s.Speed = tt.speed
			s.Lives = tt.lives
			s.Special = &SpecialFood{Pos: Position{X: 11, Y: 10}, Kind: tt.kind, SpawnedAt: t0}

			events := Advance(&s, DirNone, t0, newRNG())

			if s.Special != nil {
				t.Error("special not consumed")
			}
			if s.Speed != tt.wantSpeed {
				t.Errorf("Speed = %d, want %d", s.Speed, tt.wantSpeed)
			}
			if s.Lives != tt.wantLives {
				t.Errorf("Lives = %d, want %d", s.Lives, tt.wantLives)
			}
			if s.Over != tt.wantOver {
				t.Errorf("Over = %v, want %v", s.Over, tt.wantOver)
			}
			if core.HasEvent(events, core.EventGameOver) != tt.wantOver {
				t.Errorf("EventGameOver presence mismatch: %v", events)
			}
			if s.Score != 0 || len(s.Snake) != 1 {
				t.Errorf("special changed score or length: score=%d len=%d", s.Score, len(s.Snake))
			}
		})
	}
}
