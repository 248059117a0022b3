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

var (
	workloadPath string // CSV or YAML batch file
	policyName   string // Policy name or alias
	quantum      int64  // Round-robin time slice
	traceLevel   string // Dispatch trace level
	resultsPath  string // Optional JSON/YAML results file
	showGantt    bool   // Print the Gantt line after the table
)

// runOptions is everything one `run` invocation needs after flag and config resolution.
type runOptions struct {
	WorkloadPath string
	Policy       string
	Quantum      int64
	TraceLevel   string
	ResultsPath  string
	Gantt        bool
}

// runCmd simulates one policy over a batch read from --workload
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduling policy over a process batch",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := initCommand(cmd)
		opts := runOptions{
			WorkloadPath: workloadPath,
			Policy:       policyName,
			Quantum:      cfg.Quantum,
			TraceLevel:   traceLevel,
			ResultsPath:  resultsPath,
			Gantt:        showGantt,
		}
		if err := runSimulation(os.Stdout, opts); err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

func runSimulation(w io.Writer, opts runOptions) error {
	if !trace.IsValidTraceLevel(opts.TraceLevel) {
		return fmt.Errorf("unknown trace level %q; valid: none, dispatch", opts.TraceLevel)
	}
	level := trace.TraceLevel(opts.TraceLevel)
	if opts.Gantt {
		level = trace.TraceLevelDispatch
	}
	// Reject a bad policy before touching the workload file.
	if !sim.IsValidPolicy(opts.Policy) {
		_, err := sim.ParsePolicyName(opts.Policy)
		return fmt.Errorf("%w; valid: %v", err, sim.ValidPolicyNames())
	}

	batch, err := workload.Load(opts.WorkloadPath)
	if err != nil {
		return err
	}
	res, err := sim.Run(sim.RunConfig{
		Policy:  opts.Policy,
		Quantum: opts.Quantum,
		Trace:   trace.TraceConfig{Level: level},
	}, batch)
	if err != nil {
		return err
	}

	m := sim.NewMetrics(res)
	m.Print(w)
	if opts.Gantt {
		m.PrintGantt(w)
	}
	if opts.ResultsPath != "" {
		if err := m.SaveResults(opts.ResultsPath); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	runCmd.Flags().StringVar(&workloadPath, "workload", "", "Process batch file (.csv, .yaml, .yml)")
	runCmd.Flags().StringVar(&policyName, "policy", "fcfs", "Scheduling policy (fcfs, sjf, srtf, priority, preemptive-priority, rr)")
	runCmd.Flags().Int64Var(&quantum, "quantum", sim.DefaultQuantum, "Round-robin time quantum (clock units)")
	runCmd.Flags().StringVar(&traceLevel, "trace", string(trace.TraceLevelNone), "Dispatch trace level (none, dispatch)")
	runCmd.Flags().StringVar(&resultsPath, "results", "", "Write metrics to this file (.json, .yaml)")
	runCmd.Flags().BoolVar(&showGantt, "gantt", false, "Print a textual Gantt chart (implies --trace dispatch)")
	_ = runCmd.MarkFlagRequired("workload")

	rootCmd.AddCommand(runCmd)
}
