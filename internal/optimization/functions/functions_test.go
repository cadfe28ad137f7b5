package functions

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	p, ok := Lookup("parabola")
	require.True(t, ok)
	assert.Equal(t, "parabola", p.Name)
	assert.NotNil(t, p.F)

	_, ok = Lookup("no-such-function")
	assert.False(t, ok)
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	assert.True(t, sort.StringsAreSorted(names))
	assert.Equal(t, len(names), len(All()))
}

func TestCatalogConsistency(t *testing.T) {
	for _, p := range All() {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			assert.Less(t, p.Lower, p.Upper)
			assert.GreaterOrEqual(t, p.BestX, p.Lower)
			assert.LessOrEqual(t, p.BestX, p.Upper)

			// The recorded minimum value matches the function at BestX.
			assert.InDelta(t, p.BestY, p.F(p.BestX), 1e-3)

			// BestY really is a lower bound over a dense scan.
			const samples = 10000
			for i := 0; i <= samples; i++ {
				x := p.Lower + (p.Upper-p.Lower)*float64(i)/samples
				if p.F(x) < p.BestY-1e-3 {
					t.Fatalf("f(%v) = %v undercuts recorded minimum %v", x, p.F(x), p.BestY)
				}
			}
		})
	}
}
