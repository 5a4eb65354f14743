package qrpdf

import (
	"fmt"

	"github.com/boombuler/barcode/qr"
)

// BarcodeEncoder encodes with github.com/boombuler/barcode/qr. That encoder
// always picks the smallest symbol that holds the content, so the version
// passed to Encode only matters for reporting capacity failures. A failure
// is final: it wraps both ErrCapacityExceeded and ErrEncodingUnsupported so
// Encode does not retry the same call at higher versions.
type BarcodeEncoder struct{}

// Encode implements Encoder.
func (BarcodeEncoder) Encode(content string, version int, level Level) (Matrix, error) {
	code, err := qr.Encode(content, barcodeLevel(level), qr.Auto)
	if err != nil {
		// qr.Auto falls back to byte mode, which accepts any input, so the
		// only way it fails is content over the largest symbol.
		return nil, fmt.Errorf("%w: %w: %v", ErrEncodingUnsupported, ErrCapacityExceeded, err)
	}
	b := code.Bounds()
	n := b.Dx()
	m := make(Matrix, b.Dy())
	for y := range m {
		row := make([]bool, n)
		for x := range row {
			r, g, bl, _ := code.At(b.Min.X+x, b.Min.Y+y).RGBA()
			row[x] = r+g+bl < 3*0x8000
		}
		m[y] = row
	}
	return m, nil
}

func barcodeLevel(level Level) qr.ErrorCorrectionLevel {
	switch level {
	case LevelL:
		return qr.L
	case LevelQ:
		return qr.Q
	case LevelH:
		return qr.H
	default:
		return qr.M
	}
}
