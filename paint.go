package qrpdf

// FillFunc fills a w x h rectangle whose top-left corner is (x, y).
type FillFunc func(x, y, w, h float64) error

// Paint walks m from the top row down and calls fill once for every dark
// module, starting at (x, y) and stepping dotW to the right per module and
// dotH down per row. Light modules produce no call. Painting stops at the
// first error from fill.
func Paint(m Matrix, dotW, dotH, x, y float64, fill FillFunc) error {
	cy := y
	for _, row := range m {
		cx := x
		for _, on := range row {
			if on {
				if err := fill(cx, cy, dotW, dotH); err != nil {
					return err
				}
			}
			cx += dotW
		}
		cy -= dotH
	}
	return nil
}
