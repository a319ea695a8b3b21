package core

// EventKind identifies a side effect produced by a simulation tick.
type EventKind int

const (
	EventAteFood EventKind = iota + 1
	EventAteSpecial
	EventSpecialSpawned
	EventSpecialExpired
	EventCollision
	EventLifeLost
	EventLevelUp
	EventGameOver
)

// String returns a stable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventAteFood:
		return "ate_food"
	case EventAteSpecial:
		return "ate_special"
	case EventSpecialSpawned:
		return "special_spawned"
	case EventSpecialExpired:
		return "special_expired"
	case EventCollision:
		return "collision"
	case EventLifeLost:
		return "life_lost"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a side effect of a tick. Detail carries a kind-specific
// qualifier such as the collision cause or the special food type.
type Event struct {
	Kind   EventKind
	Detail string
}

// HasEvent reports whether events contains an event of the given kind.
func HasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
