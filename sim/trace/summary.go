package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalSlices      int
	ContextSwitches  int // adjacent slices with different PIDs
	Preemptions      int
	BusyTime         int64
	IdleGaps         int
	SlicesPerProcess map[int64]int // PID → number of slices
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		SlicesPerProcess: make(map[int64]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalSlices = len(st.Slices)
	summary.Preemptions = len(st.Preemptions)
	for i, s := range st.Slices {
		summary.SlicesPerProcess[s.PID]++
		summary.BusyTime += s.Duration()
		if i == 0 {
			if s.Start > 0 {
				summary.IdleGaps++
			}
			continue
		}
		prev := st.Slices[i-1]
		if prev.Stop < s.Start {
			summary.IdleGaps++
		}
		if prev.PID != s.PID {
			summary.ContextSwitches++
		}
	}
	return summary
}
