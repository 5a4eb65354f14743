package qrpdf

import (
	"errors"
	"math/rand"
	"testing"
)

func TestPaintCheckerOrder(t *testing.T) {
	var got []fillCall
	err := Paint(checker(), 1, 1, 0, 100, func(x, y, w, h float64) error {
		got = append(got, fillCall{x, y, w, h})
		return nil
	})
	if err != nil {
		t.Fatalf("paint: %v", err)
	}
	want := []fillCall{
		{0, 100, 1, 1},
		{2, 100, 1, 1},
		{1, 99, 1, 1},
		{0, 98, 1, 1},
		{2, 98, 1, 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d fills, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("fill %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestPaintCallsOncePerDarkModule(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 5, 21, 57} {
		m := make(Matrix, n)
		for i := range m {
			m[i] = make([]bool, n)
			for j := range m[i] {
				m[i][j] = rng.Intn(2) == 0
			}
		}
		calls := 0
		err := Paint(m, 2, 3, 0, 0, func(x, y, w, h float64) error {
			calls++
			if w != 2 || h != 3 {
				t.Fatalf("fill size = %vx%v, want 2x3", w, h)
			}
			return nil
		})
		if err != nil {
			t.Fatalf("paint: %v", err)
		}
		if calls != m.Dark() {
			t.Fatalf("n=%d: %d fills, want %d", n, calls, m.Dark())
		}
	}
}

func TestPaintLightMatrixFillsNothing(t *testing.T) {
	m := Matrix{{false, false}, {false, false}}
	err := Paint(m, 1, 1, 0, 0, func(x, y, w, h float64) error {
		t.Fatalf("unexpected fill at %v,%v", x, y)
		return nil
	})
	if err != nil {
		t.Fatalf("paint: %v", err)
	}
}

func TestPaintStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := Paint(checker(), 1, 1, 0, 0, func(x, y, w, h float64) error {
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
}
