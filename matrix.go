package qrpdf

import (
	"fmt"
	"strings"
)

// Matrix is a QR Code symbol as rows of modules, indexed m[row][col]. A true
// module is dark and gets painted; a false module is left blank.
type Matrix [][]bool

// Validate checks that m is non-empty and square with rows of equal length.
func (m Matrix) Validate() error {
	if len(m) == 0 {
		return fmt.Errorf("qrpdf: %w: no rows", ErrDegenerateMatrix)
	}
	for i, row := range m {
		if len(row) != len(m) {
			return fmt.Errorf("qrpdf: %w: row %d has %d modules, want %d", ErrDegenerateMatrix, i, len(row), len(m))
		}
	}
	return nil
}

// Size returns the number of modules per side.
func (m Matrix) Size() int {
	return len(m)
}

// Dark returns the number of dark modules.
func (m Matrix) Dark() int {
	n := 0
	for _, row := range m {
		for _, on := range row {
			if on {
				n++
			}
		}
	}
	return n
}

// String draws the matrix with two block characters per dark module.
func (m Matrix) String() string {
	var b strings.Builder
	b.Grow(len(m) * (len(m)*6 + 1))
	for _, row := range m {
		for _, on := range row {
			if on {
				b.WriteString("██")
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
