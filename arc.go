package biarc

import (
	"fmt"
	"iter"
	"math"
)

// Arc is a circular arc.
//
// StartAngle lies in [−π, π] and EndAngle in [StartAngle−π, StartAngle+π], so
// an arc never spans more than half a circle. Angles are measured from the
// positive x axis towards the positive y axis. Clockwise is true iff
// StartAngle > EndAngle; in a y-up coordinate system that is the clockwise
// direction, in a y-down one it is counterclockwise.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Clockwise  bool
}

// NewArc returns the arc around center that runs from start to end the short
// way round.
//
// The radius is the distance from center to end; start is assumed to lie on
// the same circle.
func NewArc(center, start, end Point) Arc {
	startAngle := AngleAround(center, start)
	endAngle := AngleAround(center, end)
	for endAngle < startAngle-math.Pi {
		endAngle += 2 * math.Pi
	}
	for endAngle > startAngle+math.Pi {
		endAngle -= 2 * math.Pi
	}
	return Arc{
		Center:     center,
		Radius:     center.Distance(end),
		StartAngle: startAngle,
		EndAngle:   endAngle,
		Clockwise:  startAngle > endAngle,
	}
}

func (a Arc) String() string {
	dir := "ccw"
	if a.Clockwise {
		dir = "cw"
	}
	return fmt.Sprintf("Arc(center=%s, r=%g, %g → %g, %s)", a.Center, a.Radius, a.StartAngle, a.EndAngle, dir)
}

// Start returns the arc's start point.
func (a Arc) Start() Point {
	return pointOnCircle(a.Center, a.Radius, a.StartAngle)
}

// End returns the arc's end point.
func (a Arc) End() Point {
	return pointOnCircle(a.Center, a.Radius, a.EndAngle)
}

// Sweep returns the signed angle swept by the arc. It is negative for
// clockwise arcs.
func (a Arc) Sweep() float64 {
	return a.EndAngle - a.StartAngle
}

// Length returns the length of the arc.
func (a Arc) Length() float64 {
	return math.Abs(a.Sweep()) * a.Radius
}

// CenterOffset returns the offset from the arc's start point to its center.
// Machine formats that use incremental I/J arc centers expect this value.
func (a Arc) CenterOffset() Vec2 {
	return a.Center.Sub(a.Start())
}

func (a Arc) IsInf() bool {
	return a.Center.IsInf() ||
		math.IsInf(a.Radius, 0) ||
		math.IsInf(a.StartAngle, 0) ||
		math.IsInf(a.EndAngle, 0)
}

func (a Arc) IsNaN() bool {
	return a.Center.IsNaN() ||
		math.IsNaN(a.Radius) ||
		math.IsNaN(a.StartAngle) ||
		math.IsNaN(a.EndAngle)
}

// PathElements approximates the arc with cubic Béziers. The first element
// moves to the arc's start point.
func (a Arc) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if !yield(MoveTo(a.Start())) {
			return
		}

		scaledError := a.Radius / tolerance
		// Number of subdivisions per circle based on error tolerance.
		// Note: this may slightly underestimate the error for quadrants.
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := max(math.Ceil(nError*math.Abs(a.Sweep())*(1.0/(2.0*math.Pi))), 1)
		angleStep := a.Sweep() / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), angleStep)
		angle0 := a.StartAngle
		p0 := VecFromAngle(angle0).Mul(a.Radius)

		for range int(n) {
			angle1 := angle0 + angleStep
			p1 := p0.Add(VecFromAngle(angle0 + math.Pi/2).Mul(a.Radius * armLen))
			p3 := VecFromAngle(angle1).Mul(a.Radius)
			p2 := p3.Sub(VecFromAngle(angle1 + math.Pi/2).Mul(a.Radius * armLen))

			angle0 = angle1
			p0 = p3

			if !yield(CubicTo(
				a.Center.Translate(p1),
				a.Center.Translate(p2),
				a.Center.Translate(p3),
			)) {
				break
			}
		}
	}
}

func pointOnCircle(center Point, radius float64, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return center.Translate(
		Vec2{
			X: cos * radius,
			Y: sin * radius,
		})
}
