package snake

// Grid is the playfield size in blocks.
type Grid struct {
	Cols int `json:"cols"`
	Rows int `json:"rows"`
}

// Contains reports whether p lies on the grid.
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.Cols && p.Y >= 0 && p.Y < g.Rows
}

// Center returns the cell the snake respawns on.
func (g Grid) Center() Position {
	return Position{X: g.Cols / 2, Y: g.Rows / 2}
}

// Wrap maps an out-of-bounds position onto the opposite edge.
func (g Grid) Wrap(p Position) Position {
	p.X = ((p.X % g.Cols) + g.Cols) % g.Cols
	p.Y = ((p.Y % g.Rows) + g.Rows) % g.Rows
	return p
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Cols * g.Rows
}

// contains reports whether p is one of cells.
func contains(cells []Position, p Position) bool {
	for _, c := range cells {
		if c == p {
			return true
		}
	}
	return false
}
