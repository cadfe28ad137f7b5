package piyavsky

import (
	"math"
	"sort"

	"github.com/copyleftdev/SERRA/internal/optimization"
)

// searchState holds the evaluated samples as parallel x and y slices
// kept strictly ascending by x, plus the full trace in evaluation order.
// It is owned by a single Optimizer run and never shared.
type searchState struct {
	xs []float64
	ys []float64

	trace []optimization.EvaluationPoint
}

func newSearchState(capacity int) *searchState {
	return &searchState{
		xs:    make([]float64, 0, capacity),
		ys:    make([]float64, 0, capacity),
		trace: make([]optimization.EvaluationPoint, 0, capacity),
	}
}

// insert records the sample in the trace and places it in the sorted
// sequence at the first index whose x strictly exceeds the new x.
func (s *searchState) insert(x, y float64) {
	s.trace = append(s.trace, optimization.EvaluationPoint{X: x, Y: y})

	i := sort.Search(len(s.xs), func(i int) bool { return s.xs[i] > x })
	s.xs = append(s.xs, 0)
	s.ys = append(s.ys, 0)
	copy(s.xs[i+1:], s.xs[i:])
	copy(s.ys[i+1:], s.ys[i:])
	s.xs[i] = x
	s.ys[i] = y
}

// selectInterval returns the index i of the adjacent pair (i, i+1) with
// the smallest saw-tooth potential 0.5*(y1+y2) - 0.5*L*(x2-x1), the
// lowest value the two slope-L bounding lines admit inside the pair.
// Strict less-than comparison makes the leftmost interval win ties.
// The second return is false when the state holds fewer than two points.
func (s *searchState) selectInterval(lipschitz float64) (int, bool) {
	if len(s.xs) < 2 {
		return 0, false
	}
	best := 0
	bestPotential := math.Inf(1)
	for i := 0; i+1 < len(s.xs); i++ {
		p := 0.5*(s.ys[i]+s.ys[i+1]) - 0.5*lipschitz*(s.xs[i+1]-s.xs[i])
		if p < bestPotential {
			bestPotential = p
			best = i
		}
	}
	return best, true
}

// maxGap returns the largest distance between consecutive x values.
func (s *searchState) maxGap() float64 {
	gap := 0.0
	for i := 1; i < len(s.xs); i++ {
		if d := s.xs[i] - s.xs[i-1]; d > gap {
			gap = d
		}
	}
	return gap
}
