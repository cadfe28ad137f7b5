// Package lipschitz estimates an upper bound on the local steepness of
// a univariate function over a bounded interval.
package lipschitz

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/copyleftdev/SERRA/internal/optimization"
)

// SafetyMargin inflates the largest observed finite-difference slope to
// compensate for features the sample grid may have missed.
const SafetyMargin = 1.2

// Estimate samples f on an even grid of the given size over [a, b],
// takes the largest finite-difference slope |f(x2)-f(x1)| / |x2-x1|
// over adjacent samples, and returns it multiplied by SafetyMargin.
//
// The bound is heuristic, not certified: a steep feature that falls
// between two grid points is missed. Callers that need a guaranteed
// constant must supply one themselves.
func Estimate(f optimization.ObjectiveFunc, a, b float64, samples int) (float64, error) {
	if a == b {
		return 0, optimization.NewErrorf(optimization.KindDegenerateInterval,
			"interval [%v, %v] has zero width", a, b).
			WithComponent("lipschitz").WithOperation("Estimate")
	}
	if a > b {
		return 0, optimization.NewErrorf(optimization.KindInvalidRange,
			"lower bound %v must be less than upper bound %v", a, b).
			WithComponent("lipschitz").WithOperation("Estimate")
	}
	if samples < 2 {
		return 0, optimization.NewErrorf(optimization.KindInvalidSampleCount,
			"need at least 2 samples to form a slope, got %d", samples).
			WithComponent("lipschitz").WithOperation("Estimate")
	}

	grid := floats.Span(make([]float64, samples), a, b)

	maxSlope := 0.0
	prev := f(grid[0])
	for i := 1; i < samples; i++ {
		curr := f(grid[i])
		width := math.Abs(grid[i] - grid[i-1])
		if width == 0 {
			// Adjacent grid points collapse when the interval is
			// narrower than the float spacing at its magnitude.
			prev = curr
			continue
		}
		if slope := math.Abs(curr-prev) / width; slope > maxSlope {
			maxSlope = slope
		}
		prev = curr
	}

	return maxSlope * SafetyMargin, nil
}
