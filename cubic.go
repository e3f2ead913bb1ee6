package biarc

import (
	"fmt"
	"math"
	"slices"
)

const (
	// turnSamples is the number of intervals at which the tangent direction
	// is sampled by [CubicBez.TurningAngle].
	turnSamples = 64
	// turnEpsilon is the slack allowed below a half turn before a curve is
	// rejected by [CubicBez.Validate].
	turnEpsilon = 1e-9
)

type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (c CubicBez) String() string {
	return fmt.Sprintf("CubicBez(%s, %s, %s, %s)", c.P0, c.P1, c.P2, c.P3)
}

// Eval evaluates the curve at t, which must be in [0, 1]:
//
//	Q(t) = P0(1−t)³ + 3P1·t(1−t)² + 3P2·t²(1−t) + P3·t³
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Differentiate returns the derivative of the curve, which is a quadratic
// Bézier.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

// Deriv returns the derivative Q'(t).
func (c CubicBez) Deriv(t float64) Vec2 {
	return Vec2(c.Differentiate().Eval(t))
}

// UnitTangent returns the normalized derivative at t.
//
// Where dx/dt vanishes the tangent is taken to be vertical, ⟨0, 1⟩ or
// ⟨0, −1⟩ depending on the sign of dy/dt, so that a tangent is defined even
// where the derivative is zero.
func (c CubicBez) UnitTangent(t float64) Vec2 {
	d := c.Deriv(t)
	if math.Abs(d.X) <= geomEpsilon {
		if d.Y >= 0 {
			return Vec(0, 1)
		}
		return Vec(0, -1)
	}
	return d.Normalize()
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// Subsegment returns the part of the curve between t0 and t1.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(Vec2(d.Eval(t0)).Mul(scale))
	p2 := p3.Translate(Vec2(d.Eval(t1)).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

// Inflections returns the inflection points.
//
// The function returns up to two inflection points in the first return
// parameter, with the second parameter specifying the number of points
// returned.
func (c CubicBez) Inflections() ([2]float64, int) {
	a := c.P1.Sub(c.P0)
	b := c.P2.Sub(c.P1).Sub(a)
	cc := c.P3.Sub(c.P0).Sub(c.P2.Sub(c.P1).Mul(3))
	nums, n := SolveQuadratic(a.Cross(b), a.Cross(cc), b.Cross(cc))
	var out [2]float64
	var outN int
	for _, num := range nums[:n] {
		if num >= 0 && num <= 1 {
			out[outN] = num
			outN++
		}
	}
	return out, outN
}

// TurningAngle returns the angle spanned by the curve's tangent directions
// over [0, 1], in radians.
//
// The tangent is sampled at regular intervals and at the inflection points,
// where the direction reaches its extremes. Parameters where the derivative
// vanishes are skipped. A cusp shows up as a half turn.
func (c CubicBez) TurningAngle() float64 {
	ts := make([]float64, 0, turnSamples+3)
	for i := range turnSamples + 1 {
		ts = append(ts, float64(i)/turnSamples)
	}
	infl, n := c.Inflections()
	ts = append(ts, infl[:n]...)
	slices.Sort(ts)

	q := c.Differentiate()
	var prev Vec2
	var cum, lo, hi float64
	for _, t := range ts {
		d := Vec2(q.Eval(t))
		if d.Hypot2() == 0 {
			continue
		}
		if prev != (Vec2{}) {
			cum += math.Atan2(prev.Cross(d), prev.Dot(d))
			lo = min(lo, cum)
			hi = max(hi, cum)
		}
		prev = d
	}
	return hi - lo
}

// Validate checks the precondition of biarc fitting: finite control points
// and a tangent direction that turns by less than 180° over the curve. It
// returns an error wrapping [ErrInvalidCurveGeometry] otherwise.
func (c CubicBez) Validate() error {
	if c.IsNaN() || c.IsInf() {
		return fmt.Errorf("%w: %v has non-finite control points", ErrInvalidCurveGeometry, c)
	}
	if turn := c.TurningAngle(); turn >= math.Pi-turnEpsilon {
		return fmt.Errorf("%w: tangent of %v turns by %.2f°",
			ErrInvalidCurveGeometry, c, turn*180/math.Pi)
	}
	return nil
}

// flatness returns the largest distance of the inner control points from the
// chord. By the convex hull property the curve deviates from its chord by no
// more than that.
func (c CubicBez) flatness() float64 {
	chord := Line{c.P0, c.P3}
	d1, _ := chord.Nearest(c.P1)
	d2, _ := chord.Nearest(c.P2)
	return math.Sqrt(max(d1, d2))
}

func (c CubicBez) Seg() PathSegment {
	return PathSegment{Kind: CubicKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3}
}
