package snake

import (
	"fmt"
	"time"
)

// Position is a grid cell. One cell is one block of the playfield.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// delta returns the one-block offset for the direction.
func (d Direction) delta() Position {
	switch d {
	case DirUp:
		return Position{Y: -1}
	case DirDown:
		return Position{Y: 1}
	case DirLeft:
		return Position{X: -1}
	case DirRight:
		return Position{X: 1}
	default:
		return Position{}
	}
}

// horizontal reports whether the direction moves along the X axis.
func (d Direction) horizontal() bool {
	return d == DirLeft || d == DirRight
}

// Turnable reports whether the snake moving in d may switch to next.
// Only perpendicular turns are allowed: no reversal, no same-axis command.
func (d Direction) Turnable(next Direction) bool {
	if next == DirNone || d == DirNone {
		return next != DirNone
	}
	return d.horizontal() != next.horizontal()
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// MarshalText encodes the direction by name for recordings.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction name.
func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "up":
		*d = DirUp
	case "down":
		*d = DirDown
	case "left":
		*d = DirLeft
	case "right":
		*d = DirRight
	case "none", "":
		*d = DirNone
	default:
		return fmt.Errorf("snake: unknown direction %q", text)
	}
	return nil
}

// FoodKind identifies the effect of a special food.
type FoodKind int

const (
	SpeedUp FoodKind = iota + 1
	SlowDown
	AddLife
	RemoveLife
)

// specialKinds lists the special foods in spawn-choice order.
var specialKinds = []FoodKind{SpeedUp, SlowDown, AddLife, RemoveLife}

func (k FoodKind) String() string {
	switch k {
	case SpeedUp:
		return "speed_up"
	case SlowDown:
		return "slow_down"
	case AddLife:
		return "add_life"
	case RemoveLife:
		return "remove_life"
	default:
		return "normal"
	}
}

// MarshalText encodes the food kind by name for recordings.
func (k FoodKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a food kind name.
func (k *FoodKind) UnmarshalText(text []byte) error {
	for _, kind := range specialKinds {
		if kind.String() == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("snake: unknown food kind %q", text)
}

// SpecialFood is a transient food item with a non-scoring effect.
type SpecialFood struct {
	Pos       Position  `json:"pos"`
	Kind      FoodKind  `json:"kind"`
	SpawnedAt time.Time `json:"spawned_at"`
}

// WallPolicy decides what happens when the head leaves the grid.
type WallPolicy int

const (
	WallsWrap  WallPolicy = iota // Head re-enters from the opposite edge
	WallsSolid                   // Leaving the grid is a collision
)

func (w WallPolicy) String() string {
	if w == WallsSolid {
		return "solid"
	}
	return "wrap"
}

// Collision causes reported in EventCollision details.
const (
	CauseWall     = "wall"
	CauseSelf     = "self"
	CauseObstacle = "obstacle"
)

// Rules are the fixed parameters of a session.
type Rules struct {
	Grid              Grid          `json:"grid"`
	Walls             WallPolicy    `json:"walls"`
	InitialSpeed      int           `json:"initial_speed"`
	MinSpeed          int           `json:"min_speed"`
	FoodSpeedBonus    int           `json:"food_speed_bonus"`
	LevelSpeedBonus   int           `json:"level_speed_bonus"`
	SpecialSpeedDelta int           `json:"special_speed_delta"`
	InitialLives      int           `json:"initial_lives"`
	PointsPerLevel    int           `json:"points_per_level"`
	SpecialChance     float64       `json:"special_chance"`
	SpecialTTL        time.Duration `json:"special_ttl"`
}

// DefaultRules returns the classic arcade rules on a 30x20 grid.
func DefaultRules() Rules {
	return Rules{
		Grid:              Grid{Cols: 30, Rows: 20},
		Walls:             WallsWrap,
		InitialSpeed:      8,
		MinSpeed:          5,
		FoodSpeedBonus:    1,
		LevelSpeedBonus:   2,
		SpecialSpeedDelta: 5,
		InitialLives:      3,
		PointsPerLevel:    5,
		SpecialChance:     0.02,
		SpecialTTL:        8 * time.Second,
	}
}

// State is the complete state of one session. Snake[len-1] is the head.
type State struct {
	Rules     Rules        `json:"rules"`
	Snake     []Position   `json:"snake"`
	Dir       Direction    `json:"dir"`
	TargetLen int          `json:"target_len"`
	Food      Position     `json:"food"`
	Special   *SpecialFood `json:"special,omitempty"`
	Obstacles []Position   `json:"obstacles"`
	Score     int          `json:"score"`
	Level     int          `json:"level"`
	Lives     int          `json:"lives"`
	Speed     int          `json:"speed"`
	Ticks     uint64       `json:"ticks"`
	Over      bool         `json:"over"`
	Paused    bool         `json:"paused"`
}

// Head returns the head position.
func (s *State) Head() Position {
	if len(s.Snake) == 0 {
		return s.Rules.Grid.Center()
	}
	return s.Snake[len(s.Snake)-1]
}

// Clone returns a deep copy of the state.
func (s *State) Clone() State {
	c := *s
	c.Snake = append([]Position(nil), s.Snake...)
	c.Obstacles = append([]Position(nil), s.Obstacles...)
	if s.Special != nil {
		sp := *s.Special
		c.Special = &sp
	}
	return c
}
