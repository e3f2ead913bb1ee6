package biarc

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func near(t *testing.T, got, want, epsilon float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("got %v, want %v (±%g)", got, want, epsilon)
	}
}

var pointComparer = cmp.Comparer(func(p1, p2 Point) bool {
	return p1.Distance(p2) <= 1e-9
})

var vecComparer = cmp.Comparer(func(v1, v2 Vec2) bool {
	return v1.Sub(v2).Hypot() <= 1e-9
})

// concreteCurve turns by 90° without inflecting and needs a few levels of
// subdivision at moderate tolerances.
var concreteCurve = CubicBez{Pt(0, 0), Pt(0, 50), Pt(50, 100), Pt(100, 100)}
