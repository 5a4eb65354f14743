package qrpdf

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Point is a position in page units.
type Point struct {
	X float64
	Y float64
}

// Size is a box in page units.
type Size struct {
	Width  float64
	Height float64
}

// Align selects how a Position resolves against the canvas bounds.
type Align int

const (
	// AlignStart anchors to the left edge, or the top edge vertically.
	AlignStart Align = iota
	// AlignCenter centers the symbol within the bounds.
	AlignCenter
	// AlignEnd anchors to the right edge, or the bottom edge vertically.
	AlignEnd
	// AlignOffset places the symbol at Offset from the left or top edge.
	AlignOffset
)

// Position is either an alignment or an explicit offset. The zero value is
// left (horizontal) or top (vertical).
type Position struct {
	Align  Align
	Offset float64
}

// Predefined positions.
var (
	Left   = Position{Align: AlignStart}
	Top    = Position{Align: AlignStart}
	Center = Position{Align: AlignCenter}
	Right  = Position{Align: AlignEnd}
	Bottom = Position{Align: AlignEnd}
)

// At returns an explicit offset position.
func At(offset float64) Position {
	return Position{Align: AlignOffset, Offset: offset}
}

// ParsePosition parses left, center, right or a number.
func ParsePosition(s string) (Position, error) {
	return parsePosition(s, "left", "right", "position")
}

// ParseVPosition parses top, center, bottom or a number.
func ParseVPosition(s string) (Position, error) {
	return parsePosition(s, "top", "bottom", "vposition")
}

func parsePosition(s, start, end, name string) (Position, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "", start:
		return Position{Align: AlignStart}, nil
	case "center", "centre":
		return Center, nil
	case end:
		return Position{Align: AlignEnd}, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Position{}, fmt.Errorf("qrpdf: %w: %s %q (expected %s|center|%s|<number>)", ErrInvalidOption, name, s, start, end)
	}
	return At(f), nil
}

func (p Position) validate(name string) error {
	switch p.Align {
	case AlignStart, AlignCenter, AlignEnd:
		return nil
	case AlignOffset:
		if math.IsNaN(p.Offset) || math.IsInf(p.Offset, 0) {
			return fmt.Errorf("qrpdf: %w: %s offset %v", ErrInvalidOption, name, p.Offset)
		}
		return nil
	default:
		return fmt.Errorf("qrpdf: %w: %s align %d", ErrInvalidOption, name, int(p.Align))
	}
}

// Options holds encoding and layout settings for Print and Render. Zero
// numeric fields are treated as not given.
type Options struct {
	// Version is the symbol version hint; encoding starts at Version+1.
	Version int
	Level   Level
	// Encoder defaults to SkipEncoder{}.
	Encoder Encoder
	// Dot is an explicit module size that overrides the computed geometry.
	Dot float64
	// At is the top-left corner of the symbol; it bypasses Position and
	// VPosition.
	At        *Point
	Position  Position
	VPosition Position
	Width     float64
	Height    float64
	Scale     float64
	// Fit scales the symbol proportionally to fit inside the box.
	Fit *Size
	// Stroke outlines the symbol box when the canvas implements Stroker.
	Stroke bool
}

// Option configures Options.
type Option func(*Options)

// NewOptions applies opts to a zero Options.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithOptions replaces all settings with o.
func WithOptions(o Options) Option {
	return func(dst *Options) {
		*dst = o
	}
}

// WithVersion sets the symbol version hint.
func WithVersion(version int) Option {
	return func(o *Options) {
		o.Version = version
	}
}

// WithLevel sets the error-correction level.
func WithLevel(level Level) Option {
	return func(o *Options) {
		o.Level = level
	}
}

// WithEncoder sets the symbol encoder used by Print.
func WithEncoder(enc Encoder) Option {
	return func(o *Options) {
		o.Encoder = enc
	}
}

// WithDot sets an explicit module size.
func WithDot(size float64) Option {
	return func(o *Options) {
		o.Dot = size
	}
}

// WithAt places the top-left corner of the symbol at (x, y).
func WithAt(x, y float64) Option {
	return func(o *Options) {
		o.At = &Point{X: x, Y: y}
	}
}

// WithPosition sets the horizontal position.
func WithPosition(p Position) Option {
	return func(o *Options) {
		o.Position = p
	}
}

// WithVPosition sets the vertical position.
func WithVPosition(p Position) Option {
	return func(o *Options) {
		o.VPosition = p
	}
}

// WithWidth sets the target symbol width.
func WithWidth(width float64) Option {
	return func(o *Options) {
		o.Width = width
	}
}

// WithHeight sets the target symbol height.
func WithHeight(height float64) Option {
	return func(o *Options) {
		o.Height = height
	}
}

// WithScale multiplies the natural one-unit-per-module size.
func WithScale(scale float64) Option {
	return func(o *Options) {
		o.Scale = scale
	}
}

// WithFit scales the symbol to fit inside width x height.
func WithFit(width, height float64) Option {
	return func(o *Options) {
		o.Fit = &Size{Width: width, Height: height}
	}
}

// WithStroke enables or disables the symbol outline.
func WithStroke(enabled bool) Option {
	return func(o *Options) {
		o.Stroke = enabled
	}
}

// Validate reports the first option outside its domain.
func (o Options) Validate() error {
	if o.Version < 0 {
		return fmt.Errorf("qrpdf: %w: version %d", ErrInvalidOption, o.Version)
	}
	if err := o.Level.validate(); err != nil {
		return err
	}
	sizes := []struct {
		name  string
		value float64
	}{
		{"dot", o.Dot},
		{"width", o.Width},
		{"height", o.Height},
		{"scale", o.Scale},
	}
	for _, s := range sizes {
		if s.value < 0 || math.IsNaN(s.value) || math.IsInf(s.value, 0) {
			return fmt.Errorf("qrpdf: %w: %s %v", ErrInvalidOption, s.name, s.value)
		}
	}
	if o.Fit != nil && !(o.Fit.Width > 0 && o.Fit.Height > 0 && finite(o.Fit.Width, o.Fit.Height)) {
		return fmt.Errorf("qrpdf: %w: fit %vx%v", ErrInvalidOption, o.Fit.Width, o.Fit.Height)
	}
	if o.At != nil && !finite(o.At.X, o.At.Y) {
		return fmt.Errorf("qrpdf: %w: at %v,%v", ErrInvalidOption, o.At.X, o.At.Y)
	}
	if err := o.Position.validate("position"); err != nil {
		return err
	}
	return o.VPosition.validate("vposition")
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
