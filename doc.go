// Package biarc approximates cubic Bézier curves with chains of circular
// arcs.
//
// Many output formats, such as Gerber files for PCB manufacturing, G-code
// for CNC machines and plotters, and some CAD interchange formats, can
// describe lines and circular arcs but not splines. Paths containing Béziers
// have to be re-expressed with arcs before they can be written to such
// formats. This package does that while keeping the deviation from the
// original curve within a given tolerance.
//
// # Biarcs
//
// A biarc is a pair of circular arcs that meet tangentially. Given a curve
// and the tangents at its end points, there is a one-parameter family of
// biarcs that match both end points and both tangents. [FitBiarcs] picks the
// member whose junction is the incenter of the triangle formed by the chord
// and the two tangent lines, estimates how far the curve strays from the
// junction, and subdivides the curve until the estimate is within tolerance.
// [FitArcs] is a shorthand that returns the arcs directly.
//
// The method requires that the curve's tangent turns by less than 180°.
// [CubicBez.Validate] checks this precondition, and [FitBiarcs] rejects
// curves that violate it. [ConvertPath] converts whole Bézier paths and
// takes care of splitting curves at inflection points and into pieces that
// satisfy the precondition.
//
// # Errors
//
// Failures are reported with errors that wrap one of the sentinel errors
// [ErrInvalidTolerance], [ErrInvalidCurveGeometry], [ErrDegenerateGeometry],
// [ErrSingularSystem], [ErrRootFindingDiverged] and [ErrToleranceUnreachable].
// Use [errors.Is] to test for them. [ConvertPath] reports per-segment
// failures as [*SegmentError] values.
//
// # Logging
//
// The package logs through [log/slog]. It is silent by default; use
// [SetLogger] to enable logging.
//
// # Literature
//
//   - D. J. Walton, D. S. Meek, "Approximation of a planar cubic Bézier spiral by circular arcs",
//     Journal of Computational and Applied Mathematics 75 (1996)
//   - [A Primer on Bézier Curves]
//   - [Approximate a circle with cubic Bézier curves] by Spencer Mortensen
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Approximate a circle with cubic Bézier curves]: https://spencermortensen.com/articles/bezier-circle/
package biarc
