package qrpdf

import "errors"

var (
	// ErrCapacityExceeded is reported by an Encoder when the content does not
	// fit the requested symbol version. Encode retries on it.
	ErrCapacityExceeded = errors.New("content exceeds symbol capacity")
	// ErrEncodingUnsupported is returned by Encode when no version up to
	// MaxVersion can hold the content.
	ErrEncodingUnsupported = errors.New("content cannot be encoded")
	// ErrInvalidOption reports an option value outside its domain.
	ErrInvalidOption = errors.New("invalid option")
	// ErrDegenerateMatrix reports an empty, ragged or non-square matrix.
	ErrDegenerateMatrix = errors.New("degenerate matrix")
)
