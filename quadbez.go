package biarc

// QuadBez is a quadratic Bézier segment. In this package it mostly shows up as
// the derivative (hodograph) of a [CubicBez].
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Raise returns the cubic Bézier that traces exactly the same curve.
func (q QuadBez) Raise() CubicBez {
	const k = 2.0 / 3.0
	return CubicBez{q.P0, q.P0.Lerp(q.P1, k), q.P2.Lerp(q.P1, k), q.P2}
}

// Eval evaluates the curve at t:
//
//	Q(t) = P0(1−t)² + 2P1·t(1−t) + P2·t²
func (q QuadBez) Eval(t float64) Point {
	mt := 1 - t
	return Point(Vec2(q.P0).Mul(mt * mt).
		Add(Vec2(q.P1).Mul(2 * mt * t)).
		Add(Vec2(q.P2).Mul(t * t)))
}

func (q QuadBez) Seg() PathSegment {
	return PathSegment{Kind: QuadKind, P0: q.P0, P1: q.P1, P2: q.P2}
}
