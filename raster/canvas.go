package raster

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"
	"pkt.systems/qrpdf"
)

// Canvas adapts a gg context to qrpdf.Canvas. Bounds are the context size
// minus the margin on every side, in pixels with the y axis growing upward.
type Canvas struct {
	dc     *gg.Context
	margin float64
}

// NewCanvas wraps dc. The current colour of dc is used for fills.
func NewCanvas(dc *gg.Context, margin float64) *Canvas {
	return &Canvas{dc: dc, margin: margin}
}

// Bounds implements qrpdf.Canvas.
func (c *Canvas) Bounds() qrpdf.Bounds {
	w := float64(c.dc.Width())
	h := float64(c.dc.Height())
	return qrpdf.NewBounds(c.margin, c.margin, w-2*c.margin, h-2*c.margin)
}

// FillRectangle implements qrpdf.Canvas.
func (c *Canvas) FillRectangle(x, y, w, h float64) error {
	c.dc.DrawRectangle(x, float64(c.dc.Height())-y, w, h)
	return c.dc.Fill()
}

// StrokeRectangle implements qrpdf.Stroker.
func (c *Canvas) StrokeRectangle(x, y, w, h float64) error {
	c.dc.DrawRectangle(x, float64(c.dc.Height())-y, w, h)
	return c.dc.Stroke()
}

// PNG renders m centred on a size×size white image and writes it as PNG.
// Without sizing options the symbol fills the image; opts override that.
func PNG(w io.Writer, m qrpdf.Matrix, size int, opts ...qrpdf.Option) error {
	if w == nil {
		return fmt.Errorf("raster: writer is nil")
	}
	if size <= 0 {
		return fmt.Errorf("raster: %w: image size %d", qrpdf.ErrInvalidOption, size)
	}
	dc := gg.NewContext(size, size)
	defer func() { _ = dc.Close() }()
	dc.ClearWithColor(gg.White)
	dc.SetRGB(0, 0, 0)

	all := append([]qrpdf.Option{
		qrpdf.WithFit(float64(size), float64(size)),
		qrpdf.WithPosition(qrpdf.Center),
		qrpdf.WithVPosition(qrpdf.Center),
	}, opts...)
	if err := qrpdf.Render(NewCanvas(dc, 0), m, all...); err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}
