package pdf

import (
	"github.com/jung-kurt/gofpdf"
	"pkt.systems/qrpdf"
)

// Canvas draws QR Code modules on the current page of a gofpdf document.
//
// gofpdf measures y downward from the top of the page; Canvas exposes the
// y-up coordinates qrpdf works in and converts on every call.
type Canvas struct {
	pdf    *gofpdf.Fpdf
	bounds *qrpdf.Bounds
}

// NewCanvas returns a canvas whose bounds are the margin box of the current
// page of f.
func NewCanvas(f *gofpdf.Fpdf) *Canvas {
	return &Canvas{pdf: f}
}

// WithBounds returns a copy of c restricted to b, in y-up page units.
func (c *Canvas) WithBounds(b qrpdf.Bounds) *Canvas {
	return &Canvas{pdf: c.pdf, bounds: &b}
}

// Bounds implements qrpdf.Canvas.
func (c *Canvas) Bounds() qrpdf.Bounds {
	if c.bounds != nil {
		return *c.bounds
	}
	pageW, pageH := c.pdf.GetPageSize()
	left, top, right, bottom := c.pdf.GetMargins()
	return qrpdf.NewBounds(left, bottom, pageW-left-right, pageH-top-bottom)
}

// FillRectangle implements qrpdf.Canvas using the document fill colour.
func (c *Canvas) FillRectangle(x, y, w, h float64) error {
	_, pageH := c.pdf.GetPageSize()
	c.pdf.Rect(x, pageH-y, w, h, "F")
	return c.pdf.Error()
}

// StrokeRectangle implements qrpdf.Stroker using the document draw colour
// and line width.
func (c *Canvas) StrokeRectangle(x, y, w, h float64) error {
	_, pageH := c.pdf.GetPageSize()
	c.pdf.Rect(x, pageH-y, w, h, "D")
	return c.pdf.Error()
}
