package qrpdf

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestMatrixValidate(t *testing.T) {
	if err := checker().Validate(); err != nil {
		t.Fatalf("validate checker: %v", err)
	}
	if err := (Matrix{{true}}).Validate(); err != nil {
		t.Fatalf("validate 1x1: %v", err)
	}
	if err := (Matrix{{true, true}, {true}}).Validate(); !errors.Is(err, ErrDegenerateMatrix) {
		t.Fatalf("ragged err = %v, want ErrDegenerateMatrix", err)
	}
}

func TestMatrixDarkAndString(t *testing.T) {
	m := checker()
	if m.Dark() != 5 {
		t.Fatalf("dark = %d, want 5", m.Dark())
	}
	lines := strings.Split(strings.TrimSuffix(m.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[1] != "  ██  " {
		t.Fatalf("middle row = %q", lines[1])
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":   LevelM,
		"l":  LevelL,
		"M":  LevelM,
		" q": LevelQ,
		"H":  LevelH,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseLevel("x"); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("ParseLevel(x) err = %v, want ErrInvalidOption", err)
	}
}

func TestOptionsValidate(t *testing.T) {
	ok := NewOptions(
		WithVersion(3),
		WithLevel(LevelH),
		WithDot(2),
		WithWidth(10),
		WithHeight(10),
		WithScale(1.5),
		WithFit(20, 30),
		WithAt(1, 2),
		WithPosition(At(5)),
		WithVPosition(Bottom),
	)
	if err := ok.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	bad := map[string]Options{
		"version":  {Version: -1},
		"dot":      {Dot: -0.5},
		"height":   {Height: -1},
		"fit":      {Fit: &Size{Width: 10, Height: -1}},
		"fit inf":  {Fit: &Size{Width: math.Inf(1), Height: math.Inf(1)}},
		"fit nan":  {Fit: &Size{Width: 10, Height: math.NaN()}},
		"at":       NewOptions(WithAt(0, math.Inf(1))),
		"offset":   {Position: At(math.Inf(1))},
		"valign":   {VPosition: Position{Align: 99}},
		"levelbad": {Level: "medium"},
	}
	for name, o := range bad {
		if err := o.Validate(); !errors.Is(err, ErrInvalidOption) {
			t.Fatalf("%s: err = %v, want ErrInvalidOption", name, err)
		}
	}
}

func TestWithOptionsReplaces(t *testing.T) {
	o := NewOptions(WithScale(3), WithOptions(Options{Width: 9}), nil)
	if o.Scale != 0 || o.Width != 9 {
		t.Fatalf("options = %+v", o)
	}
}
