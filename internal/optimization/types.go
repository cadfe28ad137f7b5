// Package optimization defines the shared types for the SERRA
// univariate global minimization service.
package optimization

import (
	"time"

	"go.uber.org/zap"
)

// ObjectiveFunc is the function being minimized. It must be pure and
// defined at every point the optimizer samples.
type ObjectiveFunc func(x float64) float64

// EvaluationPoint is a single sample of the objective. Immutable once created.
type EvaluationPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Default values applied by DefaultConfig.
const (
	DefaultMaxIterations    = 1000
	DefaultLipschitzSamples = 50
)

// Config contains configuration for a single optimization run.
type Config struct {
	// Objective function to minimize
	Objective ObjectiveFunc

	// Interval bounds, Lower < Upper
	Lower float64
	Upper float64

	// Epsilon is the convergence tolerance on the largest gap between
	// consecutive sampled x values.
	Epsilon float64

	// MaxIterations caps the number of refinement steps. Zero is valid
	// and yields a result built from the two boundary evaluations only.
	MaxIterations int

	// LipschitzSamples is the grid density used to estimate the
	// Lipschitz constant. Zero means DefaultLipschitzSamples.
	LipschitzSamples int

	// Logger receives per-iteration debug output. Nil disables it.
	Logger *zap.Logger
}

// DefaultConfig returns a Config with the default iteration cap and
// Lipschitz grid density. Objective, bounds and Epsilon must still be set.
func DefaultConfig() Config {
	return Config{
		MaxIterations:    DefaultMaxIterations,
		LipschitzSamples: DefaultLipschitzSamples,
	}
}

// Result is an immutable snapshot of a completed optimization run.
type Result struct {
	// BestX, BestY hold the global minimum over the entire evaluation
	// trace, not just the final search state.
	BestX float64 `json:"best_x"`
	BestY float64 `json:"best_y"`

	// Iterations actually performed.
	Iterations int `json:"iterations"`

	// Elapsed covers the Lipschitz estimation plus the refinement loop.
	Elapsed time.Duration `json:"elapsed"`

	// Trace holds every evaluation in the order it was performed: the
	// two boundary points first, then one midpoint per iteration.
	Trace []EvaluationPoint `json:"trace"`

	// Lipschitz is the constant actually used to rank intervals.
	Lipschitz float64 `json:"lipschitz"`
}
