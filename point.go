package biarc

import (
	"fmt"
	"math"
)

// Point is a position in the plane. Curves, arc centers and junctions are
// all expressed in the caller's coordinate system; the package doesn't care
// whether y points up or down.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate moves pt by v.
func (pt Point) Translate(v Vec2) Point { return Point{pt.X + v.X, pt.Y + v.Y} }

// Sub returns the vector from o to pt.
func (pt Point) Sub(o Point) Vec2 { return Vec2{pt.X - o.X, pt.Y - o.Y} }

// Lerp returns the point a fraction t of the way from pt to o.
func (pt Point) Lerp(o Point, t float64) Point {
	return pt.Translate(o.Sub(pt).Mul(t))
}

func (pt Point) Midpoint(o Point) Point {
	return Point{(pt.X + o.X) / 2, (pt.Y + o.Y) / 2}
}

func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

func (pt Point) DistanceSquared(o Point) float64 {
	return pt.Sub(o).Hypot2()
}

func (pt Point) IsInf() bool { return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) }
func (pt Point) IsNaN() bool { return math.IsNaN(pt.X) || math.IsNaN(pt.Y) }

// CrossProduct returns the cross product of the vectors p0p1 and p0p2, that
// is (p1−p0)×(p2−p0). It is positive when p2 lies to the left of the directed
// line p0p1 (in a y-up coordinate system) and zero when the points are
// colinear.
func CrossProduct(p0, p1, p2 Point) float64 {
	return p1.Sub(p0).Cross(p2.Sub(p0))
}
