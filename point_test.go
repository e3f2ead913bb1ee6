package biarc

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(0, 0).Midpoint(Pt(4, -2)), Pt(2, -1))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestCrossProduct(t *testing.T) {
	// Counterclockwise in a y-up system.
	if c := CrossProduct(Pt(0, 0), Pt(1, 0), Pt(0, 1)); c != 1 {
		t.Errorf("got %v, want 1", c)
	}
	if c := CrossProduct(Pt(0, 0), Pt(0, 1), Pt(1, 0)); c != -1 {
		t.Errorf("got %v, want -1", c)
	}
	if c := CrossProduct(Pt(0, 0), Pt(1, 1), Pt(2, 2)); c != 0 {
		t.Errorf("got %v for collinear points, want 0", c)
	}
}

func TestVecTurnRight(t *testing.T) {
	diff(t, Vec(1, 0).TurnRight(), Vec(0, -1))
	diff(t, Vec(0, 2).TurnRight(), Vec(2, 0))
}
