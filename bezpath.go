package biarc

import (
	"fmt"
	"iter"
	"slices"
)

type PathElementKind int

const (
	MoveToKind PathElementKind = iota + 1
	LineToKind
	QuadToKind
	CubicToKind
	ClosePathKind
)

var pathElementNames = [...]string{
	MoveToKind:    "MoveTo",
	LineToKind:    "LineTo",
	QuadToKind:    "QuadTo",
	CubicToKind:   "CubicTo",
	ClosePathKind: "ClosePath",
}

func (k PathElementKind) String() string {
	if k < MoveToKind || k > ClosePathKind {
		return fmt.Sprintf("PathElementKind(%d)", int(k))
	}
	return pathElementNames[k]
}

// PathElement is one drawing command of a [BezPath]. The points it uses
// depend on Kind: MoveTo and LineTo use P0, QuadTo uses P0 (control) and P1
// (end), CubicTo uses P0 and P1 (controls) and P2 (end). ClosePath uses
// none.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	return fmt.Sprintf("%s(%s, %s, %s)", el.Kind, el.P0, el.P1, el.P2)
}

func MoveTo(pt Point) PathElement { return PathElement{Kind: MoveToKind, P0: pt} }
func LineTo(pt Point) PathElement { return PathElement{Kind: LineToKind, P0: pt} }
func ClosePath() PathElement      { return PathElement{Kind: ClosePathKind} }

func QuadTo(p1, p2 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p1, P1: p2}
}

func CubicTo(p1, p2, p3 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p1, P1: p2, P2: p3}
}

type PathSegmentKind int

const (
	LineKind PathSegmentKind = iota + 1
	QuadKind
	CubicKind
)

// PathSegment is a single drawn piece of a [BezPath] with its start point
// made explicit: a line (P0, P1), a quadratic Bézier (P0, P1, P2) or a cubic
// Bézier (P0, P1, P2, P3), depending on Kind.
type PathSegment struct {
	Kind PathSegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

func (seg PathSegment) String() string {
	switch seg.Kind {
	case LineKind:
		return fmt.Sprintf("Line(%s, %s)", seg.P0, seg.P1)
	case QuadKind:
		return fmt.Sprintf("QuadBez(%s, %s, %s)", seg.P0, seg.P1, seg.P2)
	case CubicKind:
		return seg.Cubic().String()
	default:
		return "InvalidPathSegment"
	}
}

// Line returns the segment as a line. Only meaningful for LineKind.
func (seg PathSegment) Line() Line { return Line{seg.P0, seg.P1} }

// Cubic returns the segment as a cubic Bézier, raising lines and quadratic
// Béziers as needed.
func (seg PathSegment) Cubic() CubicBez {
	switch seg.Kind {
	case LineKind:
		return CubicBez{seg.P0, seg.P0, seg.P1, seg.P1}
	case QuadKind:
		return QuadBez{seg.P0, seg.P1, seg.P2}.Raise()
	case CubicKind:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		return CubicBez{}
	}
}

func (seg PathSegment) IsInf() bool {
	return seg.P0.IsInf() || seg.P1.IsInf() || seg.P2.IsInf() || seg.P3.IsInf()
}

func (seg PathSegment) IsNaN() bool {
	return seg.P0.IsNaN() || seg.P1.IsNaN() || seg.P2.IsNaN() || seg.P3.IsNaN()
}

func (seg PathSegment) Start() Point { return seg.P0 }

func (seg PathSegment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	case QuadKind:
		return seg.P2
	case CubicKind:
		return seg.P3
	default:
		return Point{}
	}
}

// BezPath is a sequence of path elements, the input of [ConvertPath]. Each
// subpath should begin with a MoveTo.
type BezPath []PathElement

func (p *BezPath) Push(el PathElement)            { *p = append(*p, el) }
func (p *BezPath) MoveTo(pt Point)                { p.Push(MoveTo(pt)) }
func (p *BezPath) LineTo(pt Point)                { p.Push(LineTo(pt)) }
func (p *BezPath) QuadTo(p1, p2 Point)            { p.Push(QuadTo(p1, p2)) }
func (p *BezPath) CubicTo(p1, p2, p3 Point)       { p.Push(CubicTo(p1, p2, p3)) }
func (p *BezPath) ClosePath()                     { p.Push(ClosePath()) }
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Segments returns an iterator over the path's segments.
func (p BezPath) Segments() iter.Seq[PathSegment] { return Segments(p.Elements()) }

// Segments turns a sequence of path elements into the segments they draw.
//
// ClosePath yields a line back to the start of the current subpath unless
// the pen is already there. A path that doesn't begin with MoveTo starts at
// the end point of its first element.
func Segments(seq iter.Seq[PathElement]) iter.Seq[PathSegment] {
	return func(yield func(PathSegment) bool) {
		var start, pen Point
		first := true
		for el := range seq {
			if first {
				first = false
				if el.Kind == ClosePathKind {
					panic("first path element mustn't be ClosePath")
				}
				start = elementEnd(el)
				pen = start
			}

			var seg PathSegment
			switch el.Kind {
			case MoveToKind:
				start, pen = el.P0, el.P0
				continue
			case LineToKind:
				seg = Line{pen, el.P0}.Seg()
			case QuadToKind:
				seg = QuadBez{pen, el.P0, el.P1}.Seg()
			case CubicToKind:
				seg = CubicBez{pen, el.P0, el.P1, el.P2}.Seg()
			case ClosePathKind:
				if pen == start {
					continue
				}
				seg = Line{pen, start}.Seg()
			default:
				panic(fmt.Sprintf("unhandled case %v", el.Kind))
			}
			pen = seg.End()
			if !yield(seg) {
				return
			}
		}
	}
}

func elementEnd(el PathElement) Point {
	switch el.Kind {
	case QuadToKind:
		return el.P1
	case CubicToKind:
		return el.P2
	default:
		return el.P0
	}
}
