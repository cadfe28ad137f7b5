// Package functions provides the catalog of univariate benchmark
// problems used by the demo harness, the HTTP service, and the tests.
package functions

import (
	"math"
	"sort"

	"github.com/copyleftdev/SERRA/internal/optimization"
)

// Problem is a named univariate minimization benchmark with its known
// global minimum.
type Problem struct {
	Name  string
	Desc  string
	F     optimization.ObjectiveFunc
	Lower float64
	Upper float64

	// BestX, BestY are the known global minimum, used for reporting
	// and convergence checks.
	BestX float64
	BestY float64
}

var catalog = map[string]Problem{
	"parabola": {
		Name:  "parabola",
		Desc:  "x^2, single smooth minimum",
		F:     func(x float64) float64 { return x * x },
		Lower: -1, Upper: 1,
		BestX: 0, BestY: 0,
	},
	"vee": {
		Name:  "vee",
		Desc:  "|x - 0.3| + 0.5, non-differentiable at the minimum",
		F:     func(x float64) float64 { return math.Abs(x-0.3) + 0.5 },
		Lower: -2, Upper: 2,
		BestX: 0.3, BestY: 0.5,
	},
	"sinmix": {
		Name:  "sinmix",
		Desc:  "sin(x) + sin(10x/3), several local minima",
		F:     func(x float64) float64 { return math.Sin(x) + math.Sin(10*x/3) },
		Lower: 2.7, Upper: 7.5,
		BestX: 5.145735, BestY: -1.899599,
	},
	"dampened": {
		Name:  "dampened",
		Desc:  "-(x + sin(x)) * exp(-x^2), sharp basin in a flat landscape",
		F:     func(x float64) float64 { return -(x + math.Sin(x)) * math.Exp(-x*x) },
		Lower: -10, Upper: 10,
		BestX: 0.679578, BestY: -0.824239,
	},
	"flatline": {
		Name:  "flatline",
		Desc:  "constant 5, every point is a minimum",
		F:     func(x float64) float64 { return 5 },
		Lower: 0, Upper: 1,
		BestX: 0, BestY: 5,
	},
}

// Lookup returns the named problem.
func Lookup(name string) (Problem, bool) {
	p, ok := catalog[name]
	return p, ok
}

// Names returns the catalog names in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every problem, ordered by name.
func All() []Problem {
	names := Names()
	problems := make([]Problem, len(names))
	for i, name := range names {
		problems[i] = catalog[name]
	}
	return problems
}
