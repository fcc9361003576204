package cmd

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// compareCmd runs every algorithm on the same input and prints a side-by-side
// summary, with per-algorithm detail at higher verbosity.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run all four algorithms on the same input and compare their metrics",
	Run: func(cmd *cobra.Command, args []string) {
		setUpLogging()

		geom, rs, runner := buildInput()
		results, err := runner.RunAll(geom, rs)
		if err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}

		fmt.Println("=== Algorithm Comparison ===")
		fmt.Printf("%-9s %12s %14s %14s\n", "Algorithm", "Total Seek", "Average Seek", "Throughput")
		for _, res := range results {
			throughput := fmt.Sprintf("%.4f", res.Metrics.Throughput)
			if math.IsInf(res.Metrics.Throughput, 1) {
				throughput = "inf"
			}
			fmt.Printf("%-9s %12d %14.2f %14s\n",
				res.Strategy, res.Metrics.TotalSeek, res.Metrics.AverageSeek, throughput)
		}

		if logrus.IsLevelEnabled(logrus.InfoLevel) {
			for _, res := range results {
				fmt.Println()
				printSchedule(res)
			}
		}
	},
}

func init() {
	addInputFlags(compareCmd)
	rootCmd.AddCommand(compareCmd)
}
