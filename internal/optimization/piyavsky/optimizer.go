// Package piyavsky implements Piyavsky's sequential saw-tooth method
// for deterministic global minimization of a univariate function over a
// bounded interval.
//
// The optimizer estimates a Lipschitz constant once, builds a
// piecewise-linear lower bound on the objective from it, and repeatedly
// refines the interval whose bound is lowest. New samples are always
// taken at the interval midpoint rather than at the intersection of the
// two bounding lines; the two coincide only when the endpoint values
// are equal. The midpoint rule is part of this optimizer's contract.
package piyavsky

import (
	"time"

	"go.uber.org/zap"

	"github.com/copyleftdev/SERRA/internal/optimization"
	"github.com/copyleftdev/SERRA/internal/optimization/lipschitz"
)

// Optimizer runs one synchronous, single-threaded minimization. Each
// Optimizer owns its search state exclusively for the duration of a
// run; independent instances may execute in parallel.
type Optimizer struct {
	config optimization.Config
	logger *zap.Logger
}

// New validates the configuration and returns an Optimizer.
//
// A zero LipschitzSamples is replaced with the default grid density.
// MaxIterations may be zero: the run then consists of the two boundary
// evaluations only.
func New(config optimization.Config) (*Optimizer, error) {
	if config.Objective == nil {
		return nil, optimization.NewError(optimization.KindUnknown,
			"objective function is required").
			WithComponent("piyavsky").WithOperation("New")
	}
	if config.Lower >= config.Upper {
		return nil, optimization.NewErrorf(optimization.KindInvalidRange,
			"invalid interval [%v, %v]: lower bound must be less than upper",
			config.Lower, config.Upper).
			WithComponent("piyavsky").WithOperation("New")
	}
	if config.Epsilon <= 0 {
		return nil, optimization.NewErrorf(optimization.KindInvalidTolerance,
			"tolerance must be positive, got %v", config.Epsilon).
			WithComponent("piyavsky").WithOperation("New")
	}
	if config.MaxIterations < 0 {
		return nil, optimization.NewErrorf(optimization.KindInvalidIterationBound,
			"iteration cap must be non-negative, got %d", config.MaxIterations).
			WithComponent("piyavsky").WithOperation("New")
	}
	if config.LipschitzSamples == 0 {
		config.LipschitzSamples = optimization.DefaultLipschitzSamples
	}
	if config.LipschitzSamples < 2 {
		return nil, optimization.NewErrorf(optimization.KindInvalidSampleCount,
			"need at least 2 Lipschitz samples, got %d", config.LipschitzSamples).
			WithComponent("piyavsky").WithOperation("New")
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Optimizer{config: config, logger: logger}, nil
}

// Optimize runs the refinement loop and extracts the result. The
// elapsed time in the result covers the Lipschitz estimation and the
// loop, not the final scan of the trace.
func (o *Optimizer) Optimize() (*optimization.Result, error) {
	cfg := o.config

	start := time.Now()

	constant, err := lipschitz.Estimate(cfg.Objective, cfg.Lower, cfg.Upper, cfg.LipschitzSamples)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("estimated Lipschitz constant",
		zap.Float64("lipschitz", constant),
		zap.Int("samples", cfg.LipschitzSamples))

	state := newSearchState(2 + cfg.MaxIterations)
	state.insert(cfg.Lower, cfg.Objective(cfg.Lower))
	state.insert(cfg.Upper, cfg.Objective(cfg.Upper))

	iterations := 0
	for iterations < cfg.MaxIterations {
		idx, ok := state.selectInterval(constant)
		if !ok {
			// Unreachable: the state starts with two points and never
			// shrinks. Bail out rather than loop forever.
			break
		}

		mid := 0.5 * (state.xs[idx] + state.xs[idx+1])
		state.insert(mid, cfg.Objective(mid))

		gap := state.maxGap()
		iterations++

		o.logger.Debug("refinement step",
			zap.Int("iteration", iterations),
			zap.Float64("x", mid),
			zap.Float64("gap", gap))

		if gap < cfg.Epsilon {
			break
		}
	}

	elapsed := time.Since(start)

	// The best point is taken over the whole trace. Strict less-than
	// keeps the earliest evaluation on exact ties, so identical runs
	// return identical results.
	best := state.trace[0]
	for _, p := range state.trace[1:] {
		if p.Y < best.Y {
			best = p
		}
	}

	return &optimization.Result{
		BestX:      best.X,
		BestY:      best.Y,
		Iterations: iterations,
		Elapsed:    elapsed,
		Trace:      append([]optimization.EvaluationPoint(nil), state.trace...),
		Lipschitz:  constant,
	}, nil
}

// Minimize builds an Optimizer for f over [lower, upper] with the
// default iteration cap and grid density and runs it.
func Minimize(f optimization.ObjectiveFunc, lower, upper, eps float64) (*optimization.Result, error) {
	cfg := optimization.DefaultConfig()
	cfg.Objective = f
	cfg.Lower = lower
	cfg.Upper = upper
	cfg.Epsilon = eps

	opt, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return opt.Optimize()
}
