package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/copyleftdev/SERRA/internal/optimization"
	"github.com/copyleftdev/SERRA/internal/optimization/functions"
	"github.com/copyleftdev/SERRA/internal/optimization/piyavsky"
	"github.com/copyleftdev/SERRA/internal/plot"
)

var (
	eps        float64
	maxIters   int
	lipSamples int
	showPlot   bool
)

var runCmd = &cobra.Command{
	Use:   "run [function]",
	Short: "Minimize a benchmark function and print the result",
	Long: `Runs the Piyavsky optimizer on one benchmark function from the
catalog, or on every function when none is named, and prints a result
summary with an optional text plot of the samples.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOptimization,
}

func init() {
	runCmd.Flags().Float64Var(&eps, "eps", 0.0001, "Convergence tolerance on the largest sample gap")
	runCmd.Flags().IntVar(&maxIters, "iters", optimization.DefaultMaxIterations, "Maximum refinement iterations")
	runCmd.Flags().IntVar(&lipSamples, "samples", optimization.DefaultLipschitzSamples, "Lipschitz estimation grid size")
	runCmd.Flags().BoolVar(&showPlot, "plot", true, "Render a text plot of the function and samples")

	rootCmd.AddCommand(runCmd)
}

func runOptimization(cmd *cobra.Command, args []string) error {
	problems := functions.All()
	if len(args) == 1 {
		p, ok := functions.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown function %q, see `serra list`", args[0])
		}
		problems = []functions.Problem{p}
	}

	for _, p := range problems {
		cfg := optimization.Config{
			Objective:        p.F,
			Lower:            p.Lower,
			Upper:            p.Upper,
			Epsilon:          eps,
			MaxIterations:    maxIters,
			LipschitzSamples: lipSamples,
			Logger:           logger,
		}

		opt, err := piyavsky.New(cfg)
		if err != nil {
			return err
		}
		result, err := opt.Optimize()
		if err != nil {
			return err
		}

		printResult(p, result)

		if showPlot {
			opts := plot.DefaultOptions()
			fmt.Println(plot.Center(p.Desc, opts.Width))
			fmt.Print(plot.Render(p.F, p.Lower, p.Upper, result, opts))
		}
		fmt.Println()
	}

	return nil
}

func printResult(p functions.Problem, r *optimization.Result) {
	fmt.Printf("%s  [%g, %g]\n", p.Name, p.Lower, p.Upper)
	fmt.Printf("  best x       %.6f  (known %.6f)\n", r.BestX, p.BestX)
	fmt.Printf("  best f(x)    %.6f  (known %.6f)\n", r.BestY, p.BestY)
	fmt.Printf("  iterations   %d\n", r.Iterations)
	fmt.Printf("  evaluations  %d\n", len(r.Trace))
	fmt.Printf("  lipschitz    %.4f\n", r.Lipschitz)
	fmt.Printf("  elapsed      %s\n", r.Elapsed)
}
