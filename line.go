package biarc

import (
	"fmt"
	"math"
)

// parallelEpsilon is the largest sine of the angle between two lines for
// which they are still considered parallel.
const parallelEpsilon = 1e-9

// Line represents a line segment. When used for intersections it stands for
// the infinite line through its two points.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross.
//
// It returns [ErrDegenerateGeometry] if the lines are parallel or coincident,
// or if either of them has zero length and thus doesn't define a direction.
func (l Line) CrossingPoint(o Line) (Point, error) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if !(math.Abs(pcd) > parallelEpsilon*ab.Hypot()*cd.Hypot()) {
		return Point{}, fmt.Errorf("%w: lines %v–%v and %v–%v don't cross",
			ErrDegenerateGeometry, l.P0, l.P1, o.P0, o.P1)
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), nil
}

// Nearest returns the squared distance from pt to the segment and the
// parameter of the nearest point on it.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

func (l Line) Seg() PathSegment {
	return PathSegment{Kind: LineKind, P0: l.P0, P1: l.P1}
}
