package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/trace"
	"github.com/schedsim/schedsim/sim/workload"
)

var compareDetails bool // Also print each policy's per-process table

// compareCmd runs every policy over the same batch
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run all scheduling policies over one batch and compare them",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := initCommand(cmd)
		if err := runComparison(os.Stdout, workloadPath, cfg.Quantum, compareDetails); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

func runComparison(w io.Writer, path string, quantum int64, details bool) error {
	batch, err := workload.Load(path)
	if err != nil {
		return err
	}
	results, err := sim.RunAll(batch, quantum, trace.TraceConfig{Level: trace.TraceLevelDispatch})
	if err != nil {
		return err
	}
	all := make([]*sim.Metrics, len(results))
	for i, res := range results {
		all[i] = sim.NewMetrics(res)
		if details {
			all[i].Print(w)
			fmt.Fprintln(w)
		}
	}
	sim.PrintComparison(w, all)
	return nil
}

func init() {
	compareCmd.Flags().StringVar(&workloadPath, "workload", "", "Process batch file (.csv, .yaml, .yml)")
	compareCmd.Flags().Int64Var(&quantum, "quantum", sim.DefaultQuantum, "Round-robin time quantum (clock units)")
	compareCmd.Flags().BoolVar(&compareDetails, "details", false, "Print each policy's per-process table before the comparison")
	_ = compareCmd.MarkFlagRequired("workload")

	rootCmd.AddCommand(compareCmd)
}
