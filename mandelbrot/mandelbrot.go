package mandelbrot

import "math"

// Result is the outcome of iterating a single point. Count is the number of
// iterations completed before escape, or MaxIterations when the orbit never
// left the boundary. Fraction is the fractional part of the normalized
// iteration count used for smooth coloring, always in [0, 1) and zero for
// interior points.
type Result struct {
	Escaped  bool
	Count    uint
	Fraction float64
}

type Mandelbrot struct {
	boundarySquared float64
	mathLog2        float64
	settings        Settings
}

func NewMandelbrot(settings Settings) Mandelbrot {
	return Mandelbrot{
		boundarySquared: settings.Boundary * settings.Boundary,
		mathLog2:        math.Log(2),
		settings:        settings,
	}
}

// EscapeTime iterates z = z^2 + c from z = 0 for c = x + yi and reports how
// quickly the orbit leaves the escape boundary.
//
// Convention: z0 = 0 is never tested. A point escapes at the first n >= 1
// with |z_n| >= Boundary, so c = 2 with the conventional boundary of 2
// escapes at Count 1. Results are deterministic for identical inputs.
//
// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Optimized_escape_time_algorithms
func (m *Mandelbrot) EscapeTime(x float64, y float64) Result {
	x1, y1, x2, y2 := 0.0, 0.0, 0.0, 0.0
	var iteration uint
	period, oldX, oldY := 0, 0.0, 0.0

	for iteration < m.settings.MaxIterations {
		y1 = 2*x1*y1 + y
		x1 = x2 - y2 + x
		x2 = x1 * x1
		y2 = y1 * y1
		iteration++

		if x2+y2 >= m.boundarySquared {
			return Result{
				Escaped:  true,
				Count:    iteration,
				Fraction: m.smoothingFraction(x2 + y2),
			}
		}

		// Periodicity checking speeds up interior detection when the
		// iteration budget is very large.
		// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Periodicity_checking
		if x1 == oldX && y1 == oldY {
			iteration = m.settings.MaxIterations
			break
		}
		period++
		if period > 20 {
			period = 0
			oldX = x1
			oldY = y1
		}
	}

	return Result{Escaped: false, Count: m.settings.MaxIterations}
}

// smoothingFraction computes the fractional part of the normalized
// iteration count n + 1 - log(log|z|)/log(2) at the escape magnitude.
// Float specials are clamped into [0, 1) rather than propagated: the inner
// logarithm goes negative once |z| dips under e, and the escape overshoot
// can push the fraction past 1 when the boundary is small.
//
// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Continuous_(smooth)_coloring
func (m *Mandelbrot) smoothingFraction(magnitudeSquared float64) float64 {
	if !m.settings.SmoothColoring {
		return 0
	}

	zn := math.Log(magnitudeSquared) / 2
	if zn <= 0 {
		return 0
	}
	nu := math.Log(zn/m.mathLog2) / m.mathLog2
	fraction := 1 - nu
	if math.IsNaN(fraction) || fraction < 0 {
		return 0
	}
	if fraction >= 1 {
		return math.Nextafter(1, 0)
	}
	return fraction
}
