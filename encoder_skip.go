package qrpdf

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// SkipEncoder encodes with github.com/skip2/go-qrcode at a forced version.
type SkipEncoder struct {
	// QuietZone keeps the four-module light border around the symbol.
	QuietZone bool
}

// Encode implements Encoder.
func (e SkipEncoder) Encode(content string, version int, level Level) (Matrix, error) {
	q, err := qrcode.NewWithForcedVersion(content, version, skipLevel(level))
	if err != nil {
		if isTooLong(err) {
			return nil, fmt.Errorf("%w: %v", ErrCapacityExceeded, err)
		}
		return nil, err
	}
	q.DisableBorder = !e.QuietZone
	return Matrix(q.Bitmap()), nil
}

func skipLevel(level Level) qrcode.RecoveryLevel {
	switch level {
	case LevelL:
		return qrcode.Low
	case LevelQ:
		return qrcode.High
	case LevelH:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// isTooLong matches the go-qrcode errors for content over the capacity of
// a forced version ("content too large for fixed size QR Code version N")
// and for content over any version ("length too long to be represented").
func isTooLong(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "content too large") || strings.Contains(msg, "too long")
}
