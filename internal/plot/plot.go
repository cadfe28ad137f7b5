// Package plot renders a text plot of an objective function and the
// samples an optimization run evaluated. It is a read-only consumer of
// the optimizer's result and imposes no contract back onto it.
package plot

import (
	"math"
	"strings"

	"github.com/copyleftdev/SERRA/internal/optimization"
)

// Options control the size of the rendered plot.
type Options struct {
	Width  int
	Height int
}

// DefaultOptions returns a plot size that fits a regular terminal.
func DefaultOptions() Options {
	return Options{Width: 72, Height: 20}
}

// Render draws f over [lower, upper] as a character grid, overlays the
// evaluated points from the result trace, and marks the best point with
// an asterisk. A nil result renders the bare curve. The returned string
// ends with a newline.
func Render(f optimization.ObjectiveFunc, lower, upper float64, result *optimization.Result, opts Options) string {
	if opts.Width <= 1 || opts.Height <= 1 {
		opts = DefaultOptions()
	}

	// Sample the curve once per column to find the value range.
	curve := make([]float64, opts.Width)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for col := 0; col < opts.Width; col++ {
		x := lower + (upper-lower)*float64(col)/float64(opts.Width-1)
		y := f(x)
		curve[col] = y
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	if result != nil {
		for _, p := range result.Trace {
			minY = math.Min(minY, p.Y)
			maxY = math.Max(maxY, p.Y)
		}
	}
	span := maxY - minY
	if span == 0 {
		span = 1 // flat functions render on a single row
	}

	row := func(y float64) int {
		r := int(math.Round((maxY - y) / span * float64(opts.Height-1)))
		if r < 0 {
			return 0
		}
		if r >= opts.Height {
			return opts.Height - 1
		}
		return r
	}
	col := func(x float64) int {
		c := int(math.Round((x - lower) / (upper - lower) * float64(opts.Width-1)))
		if c < 0 {
			return 0
		}
		if c >= opts.Width {
			return opts.Width - 1
		}
		return c
	}

	grid := make([][]byte, opts.Height)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", opts.Width))
	}

	for c := 0; c < opts.Width; c++ {
		grid[row(curve[c])][c] = '.'
	}
	if result != nil {
		for _, p := range result.Trace {
			grid[row(p.Y)][col(p.X)] = 'o'
		}
		grid[row(result.BestY)][col(result.BestX)] = '*'
	}

	var b strings.Builder
	for _, line := range grid {
		b.WriteString(strings.TrimRight(string(line), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// Center pads s with spaces on both sides up to the given width. Odd
// padding leaves the extra space on the right. Strings already at or
// beyond the target width are returned unchanged.
func Center(s string, width int) string {
	pad := width - len([]rune(s))
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
