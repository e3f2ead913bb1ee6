package biarc

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSVGLines(t *testing.T) {
	p := ArcPath{
		{Kind: StraightSegment, Line: Line{Pt(0, 0), Pt(10, 0)}},
		{Kind: StraightSegment, Line: Line{Pt(10, 0), Pt(10, 10.5)}},
		{Kind: StraightSegment, Line: Line{Pt(20, 20), Pt(-30, 20)}},
	}
	want := "M0,0 L10,0 L10,10.5 M20,20 L-30,20"
	diff(t, want, SVG(p, SVGOptions{}))
}

func TestSVGArcs(t *testing.T) {
	p := ArcPath{
		{Kind: ArcSegment, Arc: NewArc(Pt(0, 0), Pt(1, 0), Pt(0, 1))},
		{Kind: StraightSegment, Line: Line{Pt(0, 1), Pt(0, 2)}},
		{Kind: ArcSegment, Arc: NewArc(Pt(0, 0), Pt(0, 2), Pt(2, 0))},
	}
	want := "M1,0 A1,1 0 0,1 0,1 L0,2 A2,2 0 0,0 2,0"
	diff(t, want, SVG(p, SVGOptions{MaxPrecision: 3}))
}

func TestSVGPrecision(t *testing.T) {
	p := ArcPath{
		{Kind: StraightSegment, Line: Line{Pt(1.23456, -0.00001), Pt(2.5, 1.0004)}},
	}
	want := "M1.235,0 L2.5,1"
	diff(t, want, SVG(p, SVGOptions{MaxPrecision: 3}))
}

func TestSVGEmpty(t *testing.T) {
	diff(t, "", SVG(nil, SVGOptions{}))
}

type errWriter struct{}

var errWrite = errors.New("write failed")

func (errWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteSVGError(t *testing.T) {
	p := ArcPath{
		{Kind: StraightSegment, Line: Line{Pt(0, 0), Pt(10, 0)}},
		{Kind: StraightSegment, Line: Line{Pt(10, 0), Pt(10, 10)}},
	}
	require.ErrorIs(t, WriteSVG(errWriter{}, p, SVGOptions{}), errWrite)
}

func TestWriteSVGInvalidSegment(t *testing.T) {
	p := ArcPath{
		{Kind: StraightSegment, Line: Line{Pt(0, 0), Pt(10, 0)}},
		{},
	}
	var sb strings.Builder
	err := WriteSVG(&sb, p, SVGOptions{})
	require.Error(t, err)
	diff(t, "M0,0 L10,0", sb.String())
	diff(t, "M0,0 L10,0", SVG(p, SVGOptions{}))
}
