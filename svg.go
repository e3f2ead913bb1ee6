package biarc

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts an arc path to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(p ArcPath, opts SVGOptions) string {
	sb := &strings.Builder{}
	// Writes to a strings.Builder don't fail; the only error is an invalid
	// segment, which leaves the string cut short.
	WriteSVG(sb, p, opts)
	return sb.String()
}

// WriteSVG converts an arc path to a string of SVG path commands and writes
// it to w.
//
// Straight segments become L commands and arcs become A commands. A move
// (M) is emitted at the start of the path and wherever a segment doesn't
// begin at the end of its predecessor.
func WriteSVG(w io.Writer, p ArcPath, opts SVGOptions) error {
	space := []byte(" ")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			s = strings.TrimRight(s, "0")
			s = strings.TrimSuffix(s, ".")
			if s == "-0" {
				s = "0"
			}
			return s
		}
	}
	var last Point
	for i, s := range p {
		if err != nil {
			return err
		}
		if s.Kind != StraightSegment && s.Kind != ArcSegment {
			return fmt.Errorf("segment %d has unhandled kind %d", i, s.Kind)
		}
		start := s.Start()
		if i == 0 || format(start.X) != format(last.X) || format(start.Y) != format(last.Y) {
			if i != 0 {
				write(space)
			}
			writef("M%s,%s", format(start.X), format(start.Y))
		}
		write(space)
		end := s.End()
		switch s.Kind {
		case StraightSegment:
			writef("L%s,%s", format(end.X), format(end.Y))
		case ArcSegment:
			// Arcs never exceed half a circle, so the large-arc flag is
			// always 0. The sweep flag selects increasing angles.
			sweep := 1
			if s.Arc.Clockwise {
				sweep = 0
			}
			r := format(s.Arc.Radius)
			writef("A%s,%s 0 0,%d %s,%s", r, r, sweep, format(end.X), format(end.Y))
		}
		last = end
	}
	return err
}
