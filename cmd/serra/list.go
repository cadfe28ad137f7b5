package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/copyleftdev/SERRA/internal/optimization/functions"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the benchmark function catalog",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range functions.All() {
			fmt.Printf("%-10s [%g, %g]  min %.6f at x=%.6f  %s\n",
				p.Name, p.Lower, p.Upper, p.BestY, p.BestX, p.Desc)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
