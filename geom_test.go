package biarc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIncenter(t *testing.T) {
	// 3-4-5 right triangle, inradius 1.
	g, err := Incenter(Pt(0, 0), Pt(4, 0), Pt(0, 3))
	require.NoError(t, err)
	diff(t, Pt(1, 1), g, pointComparer)

	// Equilateral triangle: the incenter is the centroid.
	h := math.Sqrt(3) / 2
	g, err = Incenter(Pt(0, 0), Pt(1, 0), Pt(0.5, h))
	require.NoError(t, err)
	diff(t, Pt(0.5, h/3), g, pointComparer)

	// Vertex order doesn't matter.
	g1, err := Incenter(Pt(2, 7), Pt(-3, 1), Pt(5, -4))
	require.NoError(t, err)
	g2, err := Incenter(Pt(5, -4), Pt(2, 7), Pt(-3, 1))
	require.NoError(t, err)
	diff(t, g1, g2, pointComparer)
}

func TestIncenterEquidistant(t *testing.T) {
	p1, p2, p3 := Pt(0, 0), Pt(0, 100), Pt(100, 100)
	g, err := Incenter(p1, p2, p3)
	require.NoError(t, err)
	dist := func(a, b Point) float64 {
		d, _ := Line{a, b}.Nearest(g)
		return math.Sqrt(d)
	}
	r := dist(p1, p2)
	near(t, dist(p2, p3), r, 1e-9)
	near(t, dist(p3, p1), r, 1e-9)
}

func TestIncenterDegenerate(t *testing.T) {
	tests := []struct {
		name       string
		p1, p2, p3 Point
	}{
		{"collinear", Pt(0, 0), Pt(1, 1), Pt(2, 2)},
		{"coincident", Pt(3, 3), Pt(3, 3), Pt(3, 3)},
		{"two equal", Pt(0, 0), Pt(0, 0), Pt(1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Incenter(tt.p1, tt.p2, tt.p3)
			require.ErrorIs(t, err, ErrDegenerateGeometry)
		})
	}
}

func TestUnitTangentOnCircle(t *testing.T) {
	tests := []struct {
		center, pt Point
		want       Vec2
	}{
		{Pt(0, 0), Pt(1, 0), Vec(0, -1)},
		{Pt(0, 0), Pt(0, 2), Vec(1, 0)},
		{Pt(1, 1), Pt(1, -4), Vec(-1, 0)},
		{Pt(0, 0), Pt(3, 3), Vec(math.Sqrt2/2, -math.Sqrt2/2)},
	}
	for _, tt := range tests {
		got, err := UnitTangentOnCircle(tt.center, tt.pt)
		require.NoError(t, err)
		diff(t, tt.want, got, vecComparer)
		near(t, got.Hypot(), 1, 1e-12)
	}

	_, err := UnitTangentOnCircle(Pt(5, 5), Pt(5, 5))
	require.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestAngleAround(t *testing.T) {
	near(t, AngleAround(Pt(0, 0), Pt(1, 0)), 0, 0)
	near(t, AngleAround(Pt(0, 0), Pt(0, 1)), math.Pi/2, 1e-15)
	near(t, AngleAround(Pt(1, 1), Pt(0, 1)), math.Pi, 1e-15)
	near(t, AngleAround(Pt(0, 0), Pt(0, -3)), -math.Pi/2, 1e-15)
}

func TestArcCenter(t *testing.T) {
	// The circle through (0,0) tangent to the y axis there, passing through
	// (100,100), is centered at (100,0).
	o, err := arcCenter(Pt(0, 0), Pt(0, 100), Pt(100, 100))
	require.NoError(t, err)
	diff(t, Pt(100, 0), o, pointComparer)

	a, v, g := Pt(2, 1), Pt(5, 5), Pt(6, -1)
	o, err = arcCenter(a, v, g)
	require.NoError(t, err)
	near(t, o.Distance(a), o.Distance(g), 1e-9)
	near(t, o.Sub(a).Dot(v.Sub(a)), 0, 1e-9)

	// g on the tangent line: no circle exists.
	_, err = arcCenter(Pt(0, 0), Pt(0, 1), Pt(0, 2))
	require.ErrorIs(t, err, ErrSingularSystem)
}
