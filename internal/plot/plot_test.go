package plot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copyleftdev/SERRA/internal/optimization"
)

func TestRenderCurveOnly(t *testing.T) {
	out := Render(func(x float64) float64 { return x * x }, -1, 1, nil, Options{Width: 40, Height: 10})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 10)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 40)
	}
	assert.Contains(t, out, ".")
	assert.NotContains(t, out, "o")
	assert.NotContains(t, out, "*")
}

func TestRenderMarksSamplesAndBest(t *testing.T) {
	result := &optimization.Result{
		BestX: 0,
		BestY: 0,
		Trace: []optimization.EvaluationPoint{
			{X: -1, Y: 1},
			{X: 1, Y: 1},
			{X: 0, Y: 0},
		},
	}

	out := Render(func(x float64) float64 { return x * x }, -1, 1, result, Options{Width: 40, Height: 10})
	assert.Contains(t, out, "o")
	assert.Contains(t, out, "*")

	// The best point sits on the bottom row, in the middle column.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 10)
	bottom := lines[len(lines)-1]
	require.Greater(t, len(bottom), 20)
	assert.Equal(t, byte('*'), bottom[20])
}

func TestRenderFlatFunction(t *testing.T) {
	out := Render(func(x float64) float64 { return 5 }, 0, 1, nil, Options{Width: 20, Height: 5})

	// A constant renders on a single row without dividing by zero.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, strings.Repeat(".", 20), lines[0])
}

func TestRenderInvalidOptionsFallBack(t *testing.T) {
	out := Render(func(x float64) float64 { return x }, 0, 1, nil, Options{})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, DefaultOptions().Height)
}

func TestCenter(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "even padding", in: "ab", width: 6, want: "  ab  "},
		{name: "odd padding goes right", in: "abc", width: 6, want: " abc  "},
		{name: "exact width", in: "abcdef", width: 6, want: "abcdef"},
		{name: "wider than target", in: "abcdefgh", width: 6, want: "abcdefgh"},
		{name: "empty string", in: "", width: 4, want: "    "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Center(tt.in, tt.width))
		})
	}
}
