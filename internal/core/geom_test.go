package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 4, 10, 6)
	if r.Right() != 13 {
		t.Errorf("Right() = %d, expected 13", r.Right())
	}
	if r.Bottom() != 10 {
		t.Errorf("Bottom() = %d, expected 10", r.Bottom())
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 80, 24)
	inner := outer.Centered(20, 4)

	if inner.X != 30 || inner.Y != 10 {
		t.Errorf("Centered() origin = (%d, %d), expected (30, 10)", inner.X, inner.Y)
	}
	if inner.W != 20 || inner.H != 4 {
		t.Errorf("Centered() size = %dx%d, expected 20x4", inner.W, inner.H)
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 5) != 3 || Min(5, 3) != 3 {
		t.Error("Min should return the smaller value")
	}
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Error("Max should return the larger value")
	}
}
