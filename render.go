package qrpdf

import "fmt"

// Canvas is the drawing surface a symbol is rendered onto. Coordinates are
// page units with the y axis growing upward; (x, y) passed to FillRectangle
// is the top-left corner of the rectangle. The canvas fill colour is used
// as is.
type Canvas interface {
	Bounds() Bounds
	FillRectangle(x, y, w, h float64) error
}

// Stroker is implemented by canvases that can outline a rectangle.
type Stroker interface {
	StrokeRectangle(x, y, w, h float64) error
}

// Render draws a pre-encoded symbol on c.
func Render(c Canvas, m Matrix, opts ...Option) error {
	if c == nil {
		return fmt.Errorf("qrpdf: render: canvas is nil")
	}
	if err := m.Validate(); err != nil {
		return err
	}
	o := NewOptions(opts...)
	if err := o.Validate(); err != nil {
		return err
	}
	cols, rows := len(m[0]), len(m)
	dotW, dotH, err := DotSize(cols, rows, o)
	if err != nil {
		return err
	}
	totalW, totalH := float64(cols)*dotW, float64(rows)*dotH
	x, y, err := Anchor(totalW, totalH, o, c.Bounds())
	if err != nil {
		return err
	}
	Logger().Debug("qrpdf: render",
		"modules", cols,
		"dark", m.Dark(),
		"dot_w", dotW,
		"dot_h", dotH,
		"x", x,
		"y", y,
	)
	if err := Paint(m, dotW, dotH, x, y, c.FillRectangle); err != nil {
		return fmt.Errorf("qrpdf: render: %w", err)
	}
	if o.Stroke {
		if s, ok := c.(Stroker); ok {
			if err := s.StrokeRectangle(x, y, totalW, totalH); err != nil {
				return fmt.Errorf("qrpdf: render: stroke: %w", err)
			}
		}
	}
	return nil
}

// Print encodes content and draws it on c. Options.Version, Options.Level
// and Options.Encoder control encoding; the rest are passed to Render.
func Print(c Canvas, content string, opts ...Option) error {
	o := NewOptions(opts...)
	if err := o.Validate(); err != nil {
		return err
	}
	m, err := Encode(o.Encoder, content, o.Version, o.Level)
	if err != nil {
		return err
	}
	return Render(c, m, WithOptions(o))
}
