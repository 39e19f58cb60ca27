package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if r.Right() != 6 {
		t.Errorf("Right: got %d, want 6", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom: got %d, want 8", r.Bottom())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(1, 1, 3, 3)

	if !r.Contains(1, 1) {
		t.Error("Top-left corner should be inside")
	}
	if !r.Contains(3, 3) {
		t.Error("(3, 3) should be inside")
	}
	if r.Contains(4, 1) {
		t.Error("Right edge is exclusive")
	}
	if r.Contains(0, 2) {
		t.Error("(0, 2) is outside")
	}
}

func TestRectCenter(t *testing.T) {
	cx, cy := NewRect(0, 0, 10, 10).Center()
	if cx != 5 || cy != 5 {
		t.Errorf("Center: got (%d, %d), want (5, 5)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10): got %d", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3, 0, 10): got %d", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp(15, 0, 10): got %d", got)
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min is wrong")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max is wrong")
	}
	if Abs(-4) != 4 || Abs(4) != 4 {
		t.Error("Abs is wrong")
	}
}

func TestPointAdd(t *testing.T) {
	if got := P(1, 2).Add(P(3, -1)); got != P(4, 1) {
		t.Errorf("Add: got %v, want (4, 1)", got)
	}
}
