package biarc

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

const (
	// maxPieceTurn is the largest tangent turn of a piece of a cubic that
	// ConvertPath fits in one go. Pieces that turn further are halved.
	maxPieceTurn = math.Pi / 2
	// maxTurnSplits bounds the number of times a piece is halved.
	maxTurnSplits = 6
	// splitEpsilon keeps inflection splits away from the ends of a curve.
	splitEpsilon = 1e-9
)

type SegmentKind int

const (
	// A straight line.
	StraightSegment SegmentKind = iota + 1
	// A circular arc.
	ArcSegment
)

// Segment is a segment of an [ArcPath], either a straight line or a circular
// arc, depending on Kind.
type Segment struct {
	Kind SegmentKind
	// Line is only valid when Kind == StraightSegment.
	Line Line
	// Arc is only valid when Kind == ArcSegment.
	Arc Arc
}

func (s Segment) String() string {
	switch s.Kind {
	case StraightSegment:
		return fmt.Sprintf("Line(%s, %s)", s.Line.P0, s.Line.P1)
	case ArcSegment:
		return s.Arc.String()
	default:
		return "InvalidSegment"
	}
}

func (s Segment) Start() Point {
	switch s.Kind {
	case StraightSegment:
		return s.Line.P0
	case ArcSegment:
		return s.Arc.Start()
	default:
		return Point{}
	}
}

func (s Segment) End() Point {
	switch s.Kind {
	case StraightSegment:
		return s.Line.P1
	case ArcSegment:
		return s.Arc.End()
	default:
		return Point{}
	}
}

// ArcPath is a path made of straight lines and circular arcs, the output of
// [ConvertPath]. Segments carry their own start points; a new subpath starts
// wherever a segment doesn't begin where the previous one ended.
type ArcPath []Segment

// BezPath converts the path back to a Bézier path, approximating arcs with
// cubic Béziers to the given tolerance.
func (p ArcPath) BezPath(tolerance float64) BezPath {
	var out BezPath
	var last Point
	for i, s := range p {
		if start := s.Start(); i == 0 || start.DistanceSquared(last) > geomEpsilon*geomEpsilon {
			out.MoveTo(start)
		}
		switch s.Kind {
		case StraightSegment:
			out.LineTo(s.Line.P1)
		case ArcSegment:
			for el := range s.Arc.PathElements(tolerance) {
				if el.Kind != MoveToKind {
					out.Push(el)
				}
			}
		}
		last = s.End()
	}
	return out
}

// PathOptions specifies optional settings for [ConvertPath].
type PathOptions struct {
	// Fit holds the options used for fitting each curve.
	Fit FitOptions
	// Concurrency is the number of segments converted in parallel. Zero
	// means runtime.GOMAXPROCS(0).
	Concurrency int
}

// ConvertPath converts a Bézier path to straight lines and circular arcs that
// deviate from it by no more than allowableError.
//
// Lines are copied. Quadratic Béziers are raised to cubics. A cubic whose
// control points all lie within allowableError of its chord is replaced by
// the chord; zero-length chords are dropped. Other cubics are split at their
// inflection points and halved until every piece turns by at most 90°, and
// each piece is fitted with biarcs as by [FitBiarcs].
//
// Segments are converted concurrently. A segment that cannot be converted is
// left out of the result and reported as a [*SegmentError]; the errors of all
// failed segments are joined. The remaining segments are still returned, in
// order. Only cancellation of ctx aborts the whole conversion.
func ConvertPath(ctx context.Context, p BezPath, allowableError float64, opts PathOptions) (ArcPath, error) {
	if !(allowableError > 0) {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidTolerance, allowableError)
	}
	segs := slices.Collect(p.Segments())
	results := make([]ArcPath, len(segs))
	errs := make([]error, len(segs))

	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, seg := range segs {
		g.Go(func() error {
			out, err := convertSegment(gctx, seg, allowableError, opts.Fit)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				Logger().Warn("segment not converted", "index", i, "segment", seg.String(), "error", err)
				errs[i] = &SegmentError{Index: i, Segment: seg, Err: err}
				return nil
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out ArcPath
	for _, r := range results {
		out = append(out, r...)
	}
	Logger().Debug("path converted", "segments", len(segs), "output", len(out))
	return out, errors.Join(errs...)
}

func convertSegment(ctx context.Context, seg PathSegment, accuracy float64, opts FitOptions) (ArcPath, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch seg.Kind {
	case LineKind:
		if seg.IsNaN() || seg.IsInf() {
			return nil, fmt.Errorf("%w: line has non-finite end points", ErrInvalidCurveGeometry)
		}
		return ArcPath{{Kind: StraightSegment, Line: seg.Line()}}, nil
	case QuadKind, CubicKind:
		return convertCubic(ctx, seg.Cubic(), accuracy, opts)
	default:
		return nil, fmt.Errorf("unhandled segment kind %v", seg.Kind)
	}
}

func convertCubic(ctx context.Context, c CubicBez, accuracy float64, opts FitOptions) (ArcPath, error) {
	if c.IsNaN() || c.IsInf() {
		return nil, c.Validate()
	}
	if c.flatness() <= accuracy {
		return appendChord(nil, c), nil
	}
	c, shift := separateEndControls(c, accuracy/4)
	accuracy -= shift
	var out ArcPath
	for _, piece := range fittablePieces(c) {
		if piece.flatness() <= accuracy {
			out = appendChord(out, piece)
			continue
		}
		bs, err := FitBiarcs(ctx, piece, accuracy, opts)
		if err != nil {
			return nil, err
		}
		for _, a := range Arcs(bs) {
			out = append(out, Segment{Kind: ArcSegment, Arc: a})
		}
	}
	return out, nil
}

// separateEndControls moves an inner control point that coincides with its
// end point up to d along the direction in which the curve leaves that end.
// The derivative vanishes at such an end, which would leave the end tangent
// undefined. It returns the moved curve and a bound on how far any of its
// points moved.
//
// Some control point must differ from each end point.
func separateEndControls(c CubicBez, d float64) (CubicBez, float64) {
	out := c
	var shift float64
	if c.P1.Sub(c.P0).Hypot() <= geomEpsilon {
		v := endDirection(c.P0, c.P2, c.P3)
		out.P1 = c.P0.Translate(v.Normalize().Mul(min(d, v.Hypot()/3)))
		shift += 4.0 / 9.0 * out.P1.Distance(c.P1)
	}
	if c.P2.Sub(c.P3).Hypot() <= geomEpsilon {
		v := endDirection(c.P3, c.P1, c.P0)
		out.P2 = c.P3.Translate(v.Normalize().Mul(min(d, v.Hypot()/3)))
		shift += 4.0 / 9.0 * out.P2.Distance(c.P2)
	}
	return out, shift
}

// endDirection returns the vector from end towards next, or towards far if
// next coincides with end.
func endDirection(end, next, far Point) Vec2 {
	if v := next.Sub(end); v.Hypot() > geomEpsilon {
		return v
	}
	return far.Sub(end)
}

// appendChord appends the chord of c to out, unless it has zero length.
func appendChord(out ArcPath, c CubicBez) ArcPath {
	if c.P0 == c.P3 {
		return out
	}
	return append(out, Segment{Kind: StraightSegment, Line: Line{c.P0, c.P3}})
}

// fittablePieces splits c at its inflection points, then halves the pieces
// until none turns by more than maxPieceTurn or the split budget is used up.
func fittablePieces(c CubicBez) []CubicBez {
	ts := []float64{0}
	infl, n := c.Inflections()
	for _, t := range infl[:n] {
		if t > splitEpsilon && t < 1-splitEpsilon {
			ts = append(ts, t)
		}
	}
	ts = append(ts, 1)

	var out []CubicBez
	for i := range len(ts) - 1 {
		piece := c
		if ts[i] != 0 || ts[i+1] != 1 {
			piece = c.Subsegment(ts[i], ts[i+1])
		}
		out = appendHalved(out, piece, maxTurnSplits)
	}
	return out
}

func appendHalved(out []CubicBez, c CubicBez, budget int) []CubicBez {
	if budget == 0 || c.TurningAngle() <= maxPieceTurn+turnEpsilon {
		return append(out, c)
	}
	l, r := c.Subdivide()
	out = appendHalved(out, l, budget-1)
	return appendHalved(out, r, budget-1)
}
