package biarc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTolerance is returned when the allowable error isn't a
	// positive number.
	ErrInvalidTolerance = errors.New("biarc: allowable error must be positive")

	// ErrDegenerateGeometry is returned for parallel or coincident tangent
	// lines, triangles without area, and tangents requested at a circle's
	// center.
	ErrDegenerateGeometry = errors.New("biarc: degenerate geometry")

	// ErrSingularSystem is returned when the linear system locating an arc
	// center has a (near) zero determinant.
	ErrSingularSystem = errors.New("biarc: singular linear system")

	// ErrRootFindingDiverged is returned when Newton–Raphson iteration runs
	// out of iterations or hits a zero derivative.
	ErrRootFindingDiverged = errors.New("biarc: root finding diverged")

	// ErrToleranceUnreachable is returned when subdivision exceeds its
	// depth budget before the allowable error is met.
	ErrToleranceUnreachable = errors.New("biarc: tolerance unreachable")

	// ErrInvalidCurveGeometry is returned for curves that violate the
	// fitting precondition, namely curves whose tangent direction turns by
	// 180° or more, and curves with non-finite coordinates.
	ErrInvalidCurveGeometry = errors.New("biarc: invalid curve geometry")
)

// SegmentError reports the failure to convert a single segment of a path.
// The remaining segments of the path are unaffected.
type SegmentError struct {
	// Index is the position of the segment in the path's segment sequence.
	Index   int
	Segment PathSegment
	Err     error
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("segment %d (%s): %s", e.Index, e.Segment, e.Err)
}

func (e *SegmentError) Unwrap() error {
	return e.Err
}
