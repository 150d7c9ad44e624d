package mandelbrot

import (
	"errors"
	"math"
	"testing"
)

func newTestMandelbrot(maxIterations uint, smooth bool) Mandelbrot {
	settings := Settings{Boundary: 2, MaxIterations: maxIterations, SmoothColoring: smooth}
	if err := settings.Verify(); err != nil {
		panic(err)
	}
	return NewMandelbrot(settings)
}

func TestOriginNeverEscapes(t *testing.T) {
	m := newTestMandelbrot(100, true)
	result := m.EscapeTime(0, 0)
	if result.Escaped {
		t.Fatal("0 is in the set but escaped")
	}
	if result.Count != 100 {
		t.Errorf("count %d, want 100", result.Count)
	}
	if result.Fraction != 0 {
		t.Errorf("interior fraction %g, want 0", result.Fraction)
	}
}

// z0 is never tested, so c=2 reaches |z1| = 2 >= boundary and escapes at
// count 1. This pins down the convention the evaluator documents.
func TestImmediateEscapeConvention(t *testing.T) {
	m := newTestMandelbrot(100, true)
	result := m.EscapeTime(2, 0)
	if !result.Escaped {
		t.Fatal("c=2 did not escape")
	}
	if result.Count != 1 {
		t.Errorf("count %d, want 1", result.Count)
	}
	if result.Fraction < 0 || result.Fraction >= 1 {
		t.Errorf("fraction %g outside [0,1)", result.Fraction)
	}
}

func TestEscapeTimeDeterministic(t *testing.T) {
	m := newTestMandelbrot(256, true)
	points := [][2]float64{{-0.5, 0}, {0.3, 0.5}, {-1.25, 0.02}, {0.25, 0}, {-2, 0}}
	for _, p := range points {
		first := m.EscapeTime(p[0], p[1])
		second := m.EscapeTime(p[0], p[1])
		if first != second {
			t.Errorf("point (%g, %g): %+v != %+v", p[0], p[1], first, second)
		}
	}
}

func TestFractionAlwaysClamped(t *testing.T) {
	m := newTestMandelbrot(64, true)
	for x := -2.0; x <= 1.0; x += 0.01 {
		for y := -1.2; y <= 1.2; y += 0.05 {
			result := m.EscapeTime(x, y)
			if math.IsNaN(result.Fraction) || result.Fraction < 0 || result.Fraction >= 1 {
				t.Fatalf("point (%g, %g): fraction %g outside [0,1)", x, y, result.Fraction)
			}
			if result.Count > 64 {
				t.Fatalf("point (%g, %g): count %d above budget", x, y, result.Count)
			}
		}
	}
}

func TestSmoothColoringOff(t *testing.T) {
	m := newTestMandelbrot(64, false)
	result := m.EscapeTime(0.3, 0.5)
	if result.Fraction != 0 {
		t.Errorf("fraction %g with smoothing off, want 0", result.Fraction)
	}
}

func TestKnownInteriorPoints(t *testing.T) {
	m := newTestMandelbrot(500, true)
	// Main cardioid and period-2 bulb members
	points := [][2]float64{{-0.5, 0}, {0, 0}, {-1, 0}, {0.25, 0}}
	for _, p := range points {
		if result := m.EscapeTime(p[0], p[1]); result.Escaped {
			t.Errorf("interior point (%g, %g) escaped at %d", p[0], p[1], result.Count)
		}
	}
}

func TestSettingsVerify(t *testing.T) {
	s := Settings{MaxIterations: 0}
	if err := s.Verify(); !errors.Is(err, ErrIterationBudget) {
		t.Errorf("zero iteration budget: got %v, want ErrIterationBudget", err)
	}

	s = Settings{MaxIterations: 100, Boundary: -1}
	if err := s.Verify(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Boundary != 2 {
		t.Errorf("boundary defaulted to %g, want 2", s.Boundary)
	}
}

func TestScaledIterations(t *testing.T) {
	if got := ScaledIterations(100, 0.5); got != 100 {
		t.Errorf("shallow zoom: got %d, want base 100", got)
	}
	if got := ScaledIterations(100, 1); got != 100 {
		t.Errorf("unit zoom: got %d, want base 100", got)
	}
	if got := ScaledIterations(100, 100); got != 500 {
		t.Errorf("magnification 100: got %d, want 500", got)
	}
	if got := ScaledIterations(100, 10); got != 300 {
		t.Errorf("magnification 10: got %d, want 300", got)
	}
}
