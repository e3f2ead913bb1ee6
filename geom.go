package biarc

import (
	"fmt"
	"math"
)

const (
	// geomEpsilon is the distance below which two points are considered
	// coincident.
	geomEpsilon = 1e-9
	// collinearEpsilon bounds the area of a triangle, relative to its squared
	// perimeter, below which it is considered flat.
	collinearEpsilon = 1e-14
)

// Incenter returns the incenter of the triangle (p1, p2, p3), the point
// equidistant from its three sides.
//
// It is the average of the vertices weighted by the lengths of the opposite
// sides. It returns [ErrDegenerateGeometry] if the triangle has no area.
func Incenter(p1, p2, p3 Point) (Point, error) {
	a := p2.Distance(p3)
	b := p1.Distance(p3)
	c := p1.Distance(p2)
	perimeter := a + b + c
	if !(perimeter > geomEpsilon) ||
		math.Abs(CrossProduct(p1, p2, p3)) <= collinearEpsilon*perimeter*perimeter {
		return Point{}, fmt.Errorf("%w: triangle %v, %v, %v is flat", ErrDegenerateGeometry, p1, p2, p3)
	}
	return Point{
		X: (a*p1.X + b*p2.X + c*p3.X) / perimeter,
		Y: (a*p1.Y + b*p2.Y + c*p3.Y) / perimeter,
	}, nil
}

// UnitTangentOnCircle returns the unit tangent of a circle at pt.
//
// The tangent is the radius vector from center to pt turned by −90°, so it
// points clockwise in a y-up coordinate system. It returns
// [ErrDegenerateGeometry] if pt coincides with the center.
func UnitTangentOnCircle(center, pt Point) (Vec2, error) {
	radius := pt.Sub(center)
	r := radius.Hypot()
	if !(r > geomEpsilon) {
		return Vec2{}, fmt.Errorf("%w: point %v is the center of the circle", ErrDegenerateGeometry, pt)
	}
	return radius.TurnRight().Div(r), nil
}

// AngleAround returns the angle of pt as seen from center, in the range
// [−π, π].
func AngleAround(center, pt Point) float64 {
	return pt.Sub(center).Angle()
}

// arcCenter finds the center O of the circle through a and g whose radius Oa
// is perpendicular to the line av.
//
// The first equation places O on the normal of av through a, the second on
// the perpendicular bisector of ag.
func arcCenter(a, v, g Point) (Point, error) {
	a11 := v.X - a.X
	a12 := v.Y - a.Y
	b1 := a.X*a11 + a.Y*a12

	a21 := g.X - a.X
	a22 := g.Y - a.Y
	b2 := (g.X+a.X)/2*a21 + (g.Y+a.Y)/2*a22

	x, y, err := Solve2x2(a11, a12, b1, a21, a22, b2)
	if err != nil {
		return Point{}, err
	}
	return Pt(x, y), nil
}
