package mandelbrot

import (
	"errors"
	"fmt"
	"math"
)

var ErrIterationBudget = errors.New("iteration budget too low")

type Settings struct {
	Boundary       float64
	MaxIterations  uint
	SmoothColoring bool
}

// Verify rejects unusable settings and defaults the rest. An iteration
// budget of zero is a configuration error rather than a renderable value,
// so it surfaces to the caller instead of being silently bumped.
func (s *Settings) Verify() error {
	if s.MaxIterations <= 0 {
		return fmt.Errorf("%w: max iterations %d", ErrIterationBudget, s.MaxIterations)
	}
	if s.Boundary <= 0 {
		// 2 is the mathematical escape radius for the set
		s.Boundary = 2
	}
	return nil
}

// ScaledIterations grows a base iteration budget with zoom depth so deeper
// frames keep their detail: base * (1 + 2*log10(magnification)), floored at
// base for shallow views.
func ScaledIterations(base uint, magnification float64) uint {
	if magnification <= 1 {
		return base
	}
	scaled := float64(base) * (1 + 2*math.Log10(magnification))
	return uint(scaled)
}
