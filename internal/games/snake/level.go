package snake

import "math/rand"

// ObstacleCount returns how many obstacles a level has.
func ObstacleCount(level int) int {
	return max(level, 1)
}

// GenerateObstacles places ObstacleCount(level) distinct obstacles on free
// cells of the grid. A cell is free if it is not on the snake, the food or
// any of the avoid cells. When fewer free cells exist than requested, all of
// them are used.
func GenerateObstacles(level int, snake []Position, food Position, grid Grid, rng *rand.Rand, avoid ...Position) []Position {
	free := freeCells(grid, func(p Position) bool {
		return p == food || contains(snake, p) || contains(avoid, p)
	})

	n := min(ObstacleCount(level), len(free))
	// Partial Fisher-Yates: the first n entries become the sample
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(free)-i)
		free[i], free[j] = free[j], free[i]
	}
	return append([]Position(nil), free[:n]...)
}

// freeCells lists grid cells in row-major order that are not blocked.
func freeCells(grid Grid, blocked func(Position) bool) []Position {
	cells := make([]Position, 0, grid.Cells())
	for y := 0; y < grid.Rows; y++ {
		for x := 0; x < grid.Cols; x++ {
			p := Position{X: x, Y: y}
			if !blocked(p) {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

// randomFreeCell picks a random unblocked cell. ok is false if the grid is full.
func randomFreeCell(grid Grid, rng *rand.Rand, blocked func(Position) bool) (p Position, ok bool) {
	cells := freeCells(grid, blocked)
	if len(cells) == 0 {
		return Position{X: -1, Y: -1}, false
	}
	return cells[rng.Intn(len(cells))], true
}
