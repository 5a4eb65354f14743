package qrpdf

import "fmt"

// Bounds is the drawable area of a canvas in page units with the y axis
// growing upward, so Top is greater than Bottom.
type Bounds struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
	Width  float64
	Height float64
}

// NewBounds returns the bounds of a width x height box whose lower-left
// corner is (left, bottom).
func NewBounds(left, bottom, width, height float64) Bounds {
	return Bounds{
		Left:   left,
		Right:  left + width,
		Top:    bottom + height,
		Bottom: bottom,
		Width:  width,
		Height: height,
	}
}

// Anchor returns the top-left corner of a totalW x totalH symbol placed in b
// according to o.Position and o.VPosition. o.At, when set, is returned as is.
func Anchor(totalW, totalH float64, o Options, b Bounds) (x, y float64, err error) {
	if o.At != nil {
		return o.At.X, o.At.Y, nil
	}
	switch o.VPosition.Align {
	case AlignStart:
		y = b.Top
	case AlignCenter:
		y = b.Top - (b.Height-totalH)/2
	case AlignEnd:
		y = b.Bottom + totalH
	case AlignOffset:
		y = b.Top - o.VPosition.Offset
	default:
		return 0, 0, fmt.Errorf("qrpdf: %w: vposition align %d", ErrInvalidOption, int(o.VPosition.Align))
	}
	switch o.Position.Align {
	case AlignStart:
		x = b.Left
	case AlignCenter:
		x = b.Left + (b.Width-totalW)/2
	case AlignEnd:
		x = b.Right - totalW
	case AlignOffset:
		x = b.Left + o.Position.Offset
	default:
		return 0, 0, fmt.Errorf("qrpdf: %w: position align %d", ErrInvalidOption, int(o.Position.Align))
	}
	return x, y, nil
}
