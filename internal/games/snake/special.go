package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/greedy-snake/internal/core"
)

// updateSpecial spawns a special food when none is active, or removes the
// active one once it has outlived the TTL.
func (s *State) updateSpecial(now time.Time, rng *rand.Rand, events []core.Event) []core.Event {
	if s.Special == nil {
		if rng.Float64() >= s.Rules.SpecialChance {
			return events
		}
		kind := specialKinds[rng.Intn(len(specialKinds))]
		pos, ok := randomFreeCell(s.Rules.Grid, rng, s.blockedForSpecial)
		if !ok {
			return events
		}
		s.Special = &SpecialFood{Pos: pos, Kind: kind, SpawnedAt: now}
		return append(events, core.Event{Kind: core.EventSpecialSpawned, Detail: kind.String()})
	}

	if now.Sub(s.Special.SpawnedAt) > s.Rules.SpecialTTL {
		kind := s.Special.Kind
		s.Special = nil
		return append(events, core.Event{Kind: core.EventSpecialExpired, Detail: kind.String()})
	}
	return events
}

// eatSpecial applies the effect of the special food under the head.
func (s *State) eatSpecial(events []core.Event) []core.Event {
	kind := s.Special.Kind
	s.Special = nil
	events = append(events, core.Event{Kind: core.EventAteSpecial, Detail: kind.String()})

	switch kind {
	case SpeedUp:
		s.Speed += s.Rules.SpecialSpeedDelta
	case SlowDown:
		s.Speed = max(s.Speed-s.Rules.SpecialSpeedDelta, s.Rules.MinSpeed)
	case AddLife:
		s.Lives++
	case RemoveLife:
		s.Lives--
		events = append(events, core.Event{Kind: core.EventLifeLost})
		if s.Lives <= 0 {
			events = s.endSession(events)
		}
	}
	return events
}

// blockedForSpecial reports cells where a special food must not appear.
func (s *State) blockedForSpecial(p Position) bool {
	return p == s.Food || contains(s.Snake, p) || contains(s.Obstacles, p)
}
