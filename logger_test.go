package biarc

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerDefaultIsSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	_, err := FitArcs(concreteCurve, 1)
	require.NoError(t, err)
	out := buf.String()
	if !strings.Contains(out, "biarc accepted") {
		t.Errorf("log doesn't mention accepted biarcs:\n%s", out)
	}
	if !strings.Contains(out, "biarc subdivided") {
		t.Errorf("log doesn't mention subdivisions:\n%s", out)
	}

	buf.Reset()
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.CubicTo(Pt(0, 1), Pt(1, 1), Pt(1, 0))
	p.LineTo(Pt(math.Inf(1), 0))
	_, err = ConvertPath(context.Background(), p, 0.1, PathOptions{})
	require.Error(t, err)
	if !strings.Contains(buf.String(), "level=WARN msg=\"segment not converted\"") {
		t.Errorf("log doesn't warn about the failed segment:\n%s", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) didn't restore the silent logger")
	}
}
