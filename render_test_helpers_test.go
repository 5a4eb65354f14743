package qrpdf

import (
	"math"
	"testing"
)

type fillCall struct {
	x, y, w, h float64
}

type recordingCanvas struct {
	bounds  Bounds
	fills   []fillCall
	strokes []fillCall
}

func (c *recordingCanvas) Bounds() Bounds {
	return c.bounds
}

func (c *recordingCanvas) FillRectangle(x, y, w, h float64) error {
	c.fills = append(c.fills, fillCall{x, y, w, h})
	return nil
}

func (c *recordingCanvas) StrokeRectangle(x, y, w, h float64) error {
	c.strokes = append(c.strokes, fillCall{x, y, w, h})
	return nil
}

// checker is the 3x3 X pattern used by the end-to-end scenarios.
func checker() Matrix {
	return Matrix{
		{true, false, true},
		{false, true, false},
		{true, false, true},
	}
}

func pageBounds() Bounds {
	return NewBounds(0, 0, 200, 100)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if !near(got, want) {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}
