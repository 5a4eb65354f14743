package qrpdf

import (
	"fmt"
	"strings"
)

// Level is the QR Code error-correction level.
type Level string

// Error-correction levels, from least to most redundancy.
const (
	LevelL Level = "L"
	LevelM Level = "M"
	LevelQ Level = "Q"
	LevelH Level = "H"
)

// DefaultLevel is used when no level is given.
const DefaultLevel = LevelM

// ParseLevel parses l, m, q or h in either case. An empty string yields
// DefaultLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return DefaultLevel, nil
	case "L":
		return LevelL, nil
	case "M":
		return LevelM, nil
	case "Q":
		return LevelQ, nil
	case "H":
		return LevelH, nil
	default:
		return "", fmt.Errorf("qrpdf: %w: level %q (expected L|M|Q|H)", ErrInvalidOption, s)
	}
}

func (l Level) orDefault() Level {
	if l == "" {
		return DefaultLevel
	}
	return l
}

func (l Level) validate() error {
	switch l {
	case "", LevelL, LevelM, LevelQ, LevelH:
		return nil
	default:
		return fmt.Errorf("qrpdf: %w: level %q (expected L|M|Q|H)", ErrInvalidOption, string(l))
	}
}
