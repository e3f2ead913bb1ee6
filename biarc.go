package biarc

import (
	"context"
	"fmt"
	"log/slog"
	"math"
)

const (
	// DefaultRootTolerance is the default value of
	// [FitOptions.RootTolerance].
	DefaultRootTolerance = 0.001
	// DefaultMaxIterations is the default value of
	// [FitOptions.MaxIterations].
	DefaultMaxIterations = 50
	// DefaultMaxDepth is the default value of [FitOptions.MaxDepth].
	DefaultMaxDepth = 20

	// derivEpsilon is the magnitude below which the derivative of the root
	// function counts as zero.
	derivEpsilon = 1e-12
)

// FitOptions specifies optional settings for [FitBiarcs]. The zero value
// selects the defaults.
type FitOptions struct {
	// RootTolerance is the largest residual |(Q(t)−G)·H| accepted when
	// locating the curve point that corresponds to a biarc's junction. It is
	// in the units of the curve's coordinates.
	RootTolerance float64
	// MaxIterations caps the Newton–Raphson iterations per junction.
	MaxIterations int
	// MaxDepth caps the subdivision depth. A curve yields at most
	// 2^(MaxDepth+1) arcs.
	MaxDepth int
}

func (opts FitOptions) withDefaults() FitOptions {
	if !(opts.RootTolerance > 0) {
		opts.RootTolerance = DefaultRootTolerance
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return opts
}

// Biarc is a pair of circular arcs that meet tangentially at a junction and
// together approximate part of a curve.
type Biarc struct {
	First  Arc
	Second Arc
	// Junction is the point where the two arcs meet, the incenter of the
	// triangle formed by the chord and the two end tangents.
	Junction Point
	// T is the parameter of the curve point matched to the junction.
	T float64
	// Deviation is the distance between the junction and the curve point at
	// T, the error estimate that was compared against the allowable error.
	Deviation float64
}

// FitArcs approximates a cubic Bézier with a chain of circular arcs, using
// the default [FitOptions]. See [FitBiarcs] for details.
func FitArcs(c CubicBez, allowableError float64) ([]Arc, error) {
	bs, err := FitBiarcs(context.Background(), c, allowableError, FitOptions{})
	if err != nil {
		return nil, err
	}
	return Arcs(bs), nil
}

// Arcs flattens biarcs into their arcs, in order.
func Arcs(bs []Biarc) []Arc {
	out := make([]Arc, 0, 2*len(bs))
	for _, b := range bs {
		out = append(out, b.First, b.Second)
	}
	return out
}

// FitBiarcs approximates a cubic Bézier with a chain of biarcs, such that the
// estimated deviation of each biarc from the curve is at most allowableError.
//
// This implements the method of D. J. Walton and D. S. Meek, "Approximation of
// a planar cubic Bézier spiral by circular arcs". For the parameter range at
// hand, the tangent lines at its ends meet at a point V. The incenter G of
// the triangle formed by the chord and V becomes the junction of two arcs
// that are tangent to the curve at the range's ends. The curve point Q(t)
// with (Q(t)−G)·H = 0, H being the arcs' tangent at G, is found using
// Newton–Raphson iteration, and |Q(t)−G| serves as the error estimate. If it
// exceeds allowableError, the range is split at t and both halves are fitted
// recursively.
//
// The curve's tangent must turn by less than 180°; such curves are rejected
// with [ErrInvalidCurveGeometry]. Straight curves cannot be fitted and yield
// [ErrDegenerateGeometry]. When the depth budget runs out, the result is
// [ErrToleranceUnreachable]. If ctx is canceled, its error is returned.
//
// An infinite allowableError always yields a single biarc.
func FitBiarcs(ctx context.Context, c CubicBez, allowableError float64, opts FitOptions) ([]Biarc, error) {
	if !(allowableError > 0) {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidTolerance, allowableError)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	f := &biarcFitter{
		ctx:      ctx,
		c:        c,
		accuracy: allowableError,
		opts:     opts.withDefaults(),
		log:      Logger(),
	}
	return f.fit(0, 1, 0, nil)
}

type biarcFitter struct {
	ctx      context.Context
	c        CubicBez
	accuracy float64
	opts     FitOptions
	log      *slog.Logger
}

// fit appends the biarcs approximating the curve over [t0, t1] to out.
func (f *biarcFitter) fit(t0, t1 float64, depth int, out []Biarc) ([]Biarc, error) {
	if err := f.ctx.Err(); err != nil {
		return nil, err
	}

	b, err := f.biarc(t0, t1)
	if err != nil {
		return nil, fmt.Errorf("fitting [%g, %g]: %w", t0, t1, err)
	}
	if b.Deviation <= f.accuracy {
		f.log.Debug("biarc accepted",
			"depth", depth, "t0", t0, "t1", t1, "deviation", b.Deviation)
		return append(out, b), nil
	}

	if depth >= f.opts.MaxDepth {
		return nil, fmt.Errorf("%w: deviation %g over [%g, %g] after %d subdivisions",
			ErrToleranceUnreachable, b.Deviation, t0, t1, depth)
	}
	if !(b.T > t0 && b.T < t1) {
		return nil, fmt.Errorf("%w: split parameter %g doesn't divide [%g, %g]",
			ErrToleranceUnreachable, b.T, t0, t1)
	}
	f.log.Debug("biarc subdivided",
		"depth", depth, "t0", t0, "t1", t1, "t", b.T, "deviation", b.Deviation)

	out, err = f.fit(t0, b.T, depth+1, out)
	if err != nil {
		return nil, err
	}
	return f.fit(b.T, t1, depth+1, out)
}

// biarc constructs the biarc for the curve over [t0, t1].
func (f *biarcFitter) biarc(t0, t1 float64) (Biarc, error) {
	a0 := f.c.Eval(t0)
	a1 := f.c.Eval(t1)

	v, err := f.tangentIntersection(a0, a1, t0, t1)
	if err != nil {
		return Biarc{}, err
	}
	g, err := Incenter(a0, v, a1)
	if err != nil {
		return Biarc{}, err
	}
	center1, err := arcCenter(a0, v, g)
	if err != nil {
		return Biarc{}, err
	}
	center2, err := arcCenter(a1, v, g)
	if err != nil {
		return Biarc{}, err
	}
	h, err := UnitTangentOnCircle(center1, g)
	if err != nil {
		return Biarc{}, err
	}
	t, err := f.junctionParam(g, h, t0, t1)
	if err != nil {
		return Biarc{}, err
	}

	return Biarc{
		First:     NewArc(center1, a0, g),
		Second:    NewArc(center2, g, a1),
		Junction:  g,
		T:         t,
		Deviation: f.c.Eval(t).Distance(g),
	}, nil
}

// tangentIntersection returns the point V where the curve's tangent lines at
// a0 = Q(t0) and a1 = Q(t1) meet.
func (f *biarcFitter) tangentIntersection(a0, a1 Point, t0, t1 float64) (Point, error) {
	l0 := Line{a0, a0.Translate(f.c.UnitTangent(t0))}
	l1 := Line{a1.Translate(f.c.UnitTangent(t1)), a1}
	return l0.CrossingPoint(l1)
}

// junctionParam solves (Q(t)−G)·H = 0 for t in [t0, t1] with Newton–Raphson
// iteration, starting at the middle of the range.
//
// The function is monotone over the range as long as the curve's tangent
// turns by less than 180° there. Iterates that leave the range are moved
// halfway from the current estimate towards the bound they crossed.
func (f *biarcFitter) junctionParam(g Point, h Vec2, t0, t1 float64) (float64, error) {
	residual := func(t float64) float64 {
		return f.c.Eval(t).Sub(g).Dot(h)
	}

	t := t0 + (t1-t0)/2
	fn := residual(t)
	for i := 0; ; i++ {
		if math.IsNaN(fn) {
			return 0, fmt.Errorf("%w: residual is NaN at t=%g", ErrRootFindingDiverged, t)
		}
		if math.Abs(fn) <= f.opts.RootTolerance {
			return t, nil
		}
		if i >= f.opts.MaxIterations {
			return 0, fmt.Errorf("%w: residual %g at t=%g after %d iterations",
				ErrRootFindingDiverged, fn, t, i)
		}
		dfn := f.c.Deriv(t).Dot(h)
		if !(math.Abs(dfn) > derivEpsilon) {
			return 0, fmt.Errorf("%w: zero derivative at t=%g", ErrRootFindingDiverged, t)
		}
		next := t - fn/dfn
		if next < t0 {
			next = (t + t0) / 2
		} else if next > t1 {
			next = (t + t1) / 2
		}
		t = next
		fn = residual(t)
	}
}
