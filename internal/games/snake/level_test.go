package snake

import (
	"math/rand"
	"testing"
)

func TestObstacleCount(t *testing.T) {
	tests := []struct {
		level, want int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{7, 7},
	}
	for _, tt := range tests {
		if got := ObstacleCount(tt.level); got != tt.want {
			t.Errorf("ObstacleCount(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestGenerateObstaclesAvoidsSnakeAndFood(t *testing.T) {
	grid := Grid{Cols: 6, Rows: 5}
	snake := []Position{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}}
	food := Position{X: 4, Y: 4}

	for seed := int64(0); seed < 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		obs := GenerateObstacles(8, snake, food, grid, rng)

		if len(obs) != 8 {
			t.Fatalf("seed %d: got %d obstacles, want 8", seed, len(obs))
		}
		seen := make(map[Position]bool)
		for _, o := range obs {
			if !grid.Contains(o) {
				t.Fatalf("seed %d: obstacle %v off the grid", seed, o)
			}
			if contains(snake, o) || o == food {
				t.Fatalf("seed %d: obstacle %v on snake or food", seed, o)
			}
			if seen[o] {
				t.Fatalf("seed %d: duplicate obstacle %v", seed, o)
			}
			seen[o] = true
		}
	}
}

func TestGenerateObstaclesCrowdedGrid(t *testing.T) {
	grid := Grid{Cols: 2, Rows: 2}
	snake := []Position{{X: 0, Y: 0}, {X: 1, Y: 0}}
	food := Position{X: 0, Y: 1}

	obs := GenerateObstacles(5, snake, food, grid, rand.New(rand.NewSource(1)))

	if len(obs) != 1 || obs[0] != (Position{X: 1, Y: 1}) {
		t.Errorf("obstacles = %v, want only the one free cell", obs)
	}
}

func TestGenerateObstaclesAvoidCells(t *testing.T) {
	grid := Grid{Cols: 2, Rows: 2}
	snake := []Position{{X: 0, Y: 0}}
	food := Position{X: 0, Y: 1}
	special := Position{X: 1, Y: 1}

	obs := GenerateObstacles(3, snake, food, grid, rand.New(rand.NewSource(1)), special)

	if len(obs) != 1 || obs[0] != (Position{X: 1, Y: 0}) {
		t.Errorf("obstacles = %v, want only (1,0)", obs)
	}
}

func TestGridWrap(t *testing.T) {
	g := Grid{Cols: 10, Rows: 8}
	tests := []struct {
		in, want Position
	}{
		{Position{X: -1, Y: 3}, Position{X: 9, Y: 3}},
		{Position{X: 10, Y: 3}, Position{X: 0, Y: 3}},
		{Position{X: 4, Y: -1}, Position{X: 4, Y: 7}},
		{Position{X: 4, Y: 8}, Position{X: 4, Y: 0}},
		{Position{X: 4, Y: 4}, Position{X: 4, Y: 4}},
	}
	for _, tt := range tests {
		if got := g.Wrap(tt.in); got != tt.want {
			t.Errorf("Wrap(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
