package qrpdf

import (
	"errors"
	"fmt"
)

// MaxVersion is the largest QR Code symbol version.
const MaxVersion = 40

// Encoder turns content into a symbol of exactly the given version (1-40).
// When the content does not fit, the returned error must wrap
// ErrCapacityExceeded. An encoder that knows no larger version can help
// also wraps ErrEncodingUnsupported.
type Encoder interface {
	Encode(content string, version int, level Level) (Matrix, error)
}

// EncoderFunc adapts a function to Encoder.
type EncoderFunc func(content string, version int, level Level) (Matrix, error)

// Encode calls f.
func (f EncoderFunc) Encode(content string, version int, level Level) (Matrix, error) {
	return f(content, version, level)
}

// Encode asks enc for a symbol starting at version+1 and moving up one
// version at a time while the content does not fit. It gives up with
// ErrEncodingUnsupported after MaxVersion. Errors other than
// ErrCapacityExceeded, and errors that already wrap ErrEncodingUnsupported,
// are returned without trying further versions.
func Encode(enc Encoder, content string, version int, level Level) (Matrix, error) {
	if enc == nil {
		enc = SkipEncoder{}
	}
	if version < 0 {
		return nil, fmt.Errorf("qrpdf: %w: version %d", ErrInvalidOption, version)
	}
	if err := level.validate(); err != nil {
		return nil, err
	}
	level = level.orDefault()
	log := Logger()
	var last error
	for v := version + 1; v <= MaxVersion; v++ {
		m, err := enc.Encode(content, v, level)
		if err == nil {
			if verr := m.Validate(); verr != nil {
				return nil, fmt.Errorf("qrpdf: encode version %d: %w", v, verr)
			}
			log.Debug("qrpdf: encoded symbol", "version", v, "level", string(level), "modules", m.Size())
			return m, nil
		}
		if errors.Is(err, ErrEncodingUnsupported) || !errors.Is(err, ErrCapacityExceeded) {
			return nil, fmt.Errorf("qrpdf: encode version %d: %w", v, err)
		}
		log.Debug("qrpdf: content does not fit, retrying", "version", v, "level", string(level), "bytes", len(content))
		last = err
	}
	if last == nil {
		return nil, fmt.Errorf("qrpdf: %w: version hint %d leaves no version to try", ErrEncodingUnsupported, version)
	}
	return nil, fmt.Errorf("qrpdf: %w at level %s: %w", ErrEncodingUnsupported, level, last)
}
