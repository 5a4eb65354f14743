package raster

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/gogpu/gg"
	"pkt.systems/qrpdf"
)

func checker() qrpdf.Matrix {
	return qrpdf.Matrix{
		{true, false, true},
		{false, true, false},
		{true, false, true},
	}
}

func dark(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r+g+b < 3*0x8000
}

// checkModules samples the centre of every module of a symbol whose top-left
// corner is at (left, top) in image coordinates.
func checkModules(t *testing.T, img image.Image, m qrpdf.Matrix, left, top, dot float64) {
	t.Helper()
	for r, row := range m {
		for c, on := range row {
			x := int(left + (float64(c)+0.5)*dot)
			y := int(top + (float64(r)+0.5)*dot)
			if got := dark(img, x, y); got != on {
				t.Fatalf("module %d,%d at %d,%d: dark=%v, want %v", r, c, x, y, got, on)
			}
		}
	}
}

func TestPNGFillsImage(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, checker(), 90); err != nil {
		t.Fatalf("png: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 90 || img.Bounds().Dy() != 90 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	checkModules(t, img, checker(), 0, 0, 30)
}

func TestPNGOptionsOverrideFit(t *testing.T) {
	var buf bytes.Buffer
	err := PNG(&buf, checker(), 100, qrpdf.WithScale(10))
	if err != nil {
		t.Fatalf("png: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	// 30px symbol centred in 100px.
	checkModules(t, img, checker(), 35, 35, 10)
	if dark(img, 5, 5) || dark(img, 95, 95) {
		t.Fatalf("expected white outside the symbol")
	}
}

func TestPNGEncodedSymbol(t *testing.T) {
	m, err := qrpdf.Encode(nil, "raster", 0, qrpdf.LevelM)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	size := m.Size() * 8
	var buf bytes.Buffer
	if err := PNG(&buf, m, size); err != nil {
		t.Fatalf("png: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	checkModules(t, img, m, 0, 0, 8)
}

func TestCanvasBounds(t *testing.T) {
	dc := gg.NewContext(200, 100)
	defer func() { _ = dc.Close() }()
	b := NewCanvas(dc, 10).Bounds()
	want := qrpdf.Bounds{Left: 10, Right: 190, Top: 90, Bottom: 10, Width: 180, Height: 80}
	if b != want {
		t.Fatalf("bounds = %+v, want %+v", b, want)
	}
}

func TestCanvasRenderTopLeft(t *testing.T) {
	dc := gg.NewContext(100, 100)
	defer func() { _ = dc.Close() }()
	dc.ClearWithColor(gg.White)
	dc.SetRGB(0, 0, 0)
	if err := qrpdf.Render(NewCanvas(dc, 10), checker(), qrpdf.WithScale(10)); err != nil {
		t.Fatalf("render: %v", err)
	}
	checkModules(t, dc.Image(), checker(), 10, 10, 10)
}

func TestPNGErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(nil, checker(), 10); err == nil {
		t.Fatalf("expected error for nil writer")
	}
	if err := PNG(&buf, checker(), 0); !errors.Is(err, qrpdf.ErrInvalidOption) {
		t.Fatalf("err = %v, want ErrInvalidOption", err)
	}
	if err := PNG(&buf, qrpdf.Matrix{}, 10); !errors.Is(err, qrpdf.ErrDegenerateMatrix) {
		t.Fatalf("err = %v, want ErrDegenerateMatrix", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("failed renders wrote %d bytes", buf.Len())
	}
}
