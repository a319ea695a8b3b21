package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/greedy-snake/internal/core"
)

// NewState creates the state for a fresh session: a one-block snake at the
// center moving right, food on a free cell and level 1 obstacles.
func NewState(rules Rules, rng *rand.Rand) State {
	s := State{
		Rules: rules,
		Level: 1,
		Lives: rules.InitialLives,
		Speed: rules.InitialSpeed,
	}
	s.placeSnake()
	s.Food, _ = randomFreeCell(rules.Grid, rng, s.occupiedBySnake)
	s.Obstacles = GenerateObstacles(s.Level, s.Snake, s.Food, rules.Grid, rng)
	return s
}

// Advance runs one tick of the game on s and returns the events it produced.
// cmd is the steering command for this tick (DirNone keeps the current
// direction); now is used for special food expiry. A paused or finished
// state is left untouched.
func Advance(s *State, cmd Direction, now time.Time, rng *rand.Rand) []core.Event {
	if s.Over || s.Paused {
		return nil
	}
	s.Ticks++

	if s.Dir.Turnable(cmd) {
		s.Dir = cmd
	}

	head, inside := s.nextHead()
	if !inside {
		return s.collide(CauseWall, rng)
	}
	if contains(s.Obstacles, head) {
		return s.collide(CauseObstacle, rng)
	}
	growing := head == s.Food
	if s.hitsBody(head, growing) {
		return s.collide(CauseSelf, rng)
	}

	s.Snake = append(s.Snake, head)

	var events []core.Event
	events = s.updateSpecial(now, rng, events)

	if growing {
		events = s.eatFood(rng, events)
	}
	if s.Special != nil && head == s.Special.Pos {
		events = s.eatSpecial(events)
	}

	if over := len(s.Snake) - s.TargetLen; over > 0 {
		s.Snake = append(s.Snake[:0], s.Snake[over:]...)
	}
	return events
}

// nextHead returns the head position after one move. inside is false when
// the move leaves the grid under solid walls.
func (s *State) nextHead() (head Position, inside bool) {
	d := s.Dir.delta()
	cur := s.Head()
	head = Position{X: cur.X + d.X, Y: cur.Y + d.Y}
	if s.Rules.Grid.Contains(head) {
		return head, true
	}
	if s.Rules.Walls == WallsSolid {
		return head, false
	}
	return s.Rules.Grid.Wrap(head), true
}

// hitsBody reports whether head lands on a segment that is still part of
// the body after the tail moves this tick.
func (s *State) hitsBody(head Position, growing bool) bool {
	target := s.TargetLen
	if growing {
		target++
	}
	body := s.Snake
	if drop := len(body) + 1 - target; drop > 0 {
		body = body[min(drop, len(body)):]
	}
	return contains(body, head)
}

// collide applies a wall, self or obstacle collision.
func (s *State) collide(cause string, rng *rand.Rand) []core.Event {
	s.Lives--
	events := []core.Event{
		{Kind: core.EventCollision, Detail: cause},
		{Kind: core.EventLifeLost},
	}
	if s.Lives <= 0 {
		return s.endSession(events)
	}

	s.placeSnake()
	s.Speed = s.Rules.InitialSpeed
	s.regenerateObstacles(rng)
	return events
}

// endSession marks the state finished.
func (s *State) endSession(events []core.Event) []core.Event {
	s.Lives = 0
	s.Over = true
	return append(events, core.Event{Kind: core.EventGameOver})
}

// placeSnake resets the snake to a single block at the grid center.
func (s *State) placeSnake() {
	s.Snake = []Position{s.Rules.Grid.Center()}
	s.TargetLen = 1
	s.Dir = DirRight
}

// eatFood applies normal food consumption and the level check.
func (s *State) eatFood(rng *rand.Rand, events []core.Event) []core.Event {
	s.TargetLen++
	s.Score++
	s.Speed += s.Rules.FoodSpeedBonus
	s.Food, _ = randomFreeCell(s.Rules.Grid, rng, s.blockedForFood)
	events = append(events, core.Event{Kind: core.EventAteFood})

	if s.Score%s.Rules.PointsPerLevel == 0 {
		s.Level++
		s.regenerateObstacles(rng)
		s.Speed += s.Rules.LevelSpeedBonus
		events = append(events, core.Event{Kind: core.EventLevelUp})
	}
	return events
}

// regenerateObstacles replaces the obstacles for the current level, keeping
// clear of the snake, the food and an active special.
func (s *State) regenerateObstacles(rng *rand.Rand) {
	var avoid []Position
	if s.Special != nil {
		avoid = append(avoid, s.Special.Pos)
	}
	s.Obstacles = GenerateObstacles(s.Level, s.Snake, s.Food, s.Rules.Grid, rng, avoid...)
}

func (s *State) occupiedBySnake(p Position) bool {
	return contains(s.Snake, p)
}

// blockedForFood reports cells where new food must not appear.
func (s *State) blockedForFood(p Position) bool {
	if contains(s.Snake, p) || contains(s.Obstacles, p) {
		return true
	}
	return s.Special != nil && s.Special.Pos == p
}
