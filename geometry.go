package qrpdf

import "fmt"

// DotSize returns the size of one module in page units for a symbol of
// cols x rows modules. The first sizing option present decides, in this
// order: Dot, Width alone, Height alone, Scale, Fit. Width and Height given
// together are used as is; with neither, a module is one unit.
func DotSize(cols, rows int, o Options) (dotW, dotH float64, err error) {
	if cols <= 0 || rows <= 0 {
		return 0, 0, fmt.Errorf("qrpdf: %w: %dx%d modules", ErrDegenerateMatrix, cols, rows)
	}
	if o.Dot > 0 {
		return o.Dot, o.Dot, nil
	}
	qw, qh := float64(cols), float64(rows)
	w, h := qw, qh
	if o.Width > 0 {
		w = o.Width
	}
	if o.Height > 0 {
		h = o.Height
	}

	switch {
	case o.Width > 0 && o.Height <= 0:
		p := w / qw
		w, h = qw*p, qh*p
	case o.Height > 0 && o.Width <= 0:
		p := h / qh
		w, h = qw*p, qh*p
	case o.Scale > 0:
		w, h = qw*o.Scale, qh*o.Scale
	case o.Fit != nil:
		if !(o.Fit.Width > 0 && o.Fit.Height > 0 && finite(o.Fit.Width, o.Fit.Height)) {
			return 0, 0, fmt.Errorf("qrpdf: %w: fit %vx%v", ErrInvalidOption, o.Fit.Width, o.Fit.Height)
		}
		bp := o.Fit.Width / o.Fit.Height
		ip := qw / qh
		if ip > bp {
			w, h = o.Fit.Width, o.Fit.Width/ip
		} else {
			w, h = o.Fit.Height*ip, o.Fit.Height
		}
	}
	return w / qw, h / qh, nil
}
