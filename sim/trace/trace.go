package trace

// TraceLevel controls the verbosity of dispatch tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDispatch captures every CPU slice and preemption.
	TraceLevelDispatch TraceLevel = "dispatch"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:     true,
	TraceLevelDispatch: true,
	"":                 true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// Enabled reports whether any records should be collected.
func (c TraceConfig) Enabled() bool {
	return c.Level == TraceLevelDispatch
}

// SimulationTrace collects dispatch records during a run.
type SimulationTrace struct {
	Config      TraceConfig
	Slices      []SliceRecord
	Preemptions []PreemptionRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:      config,
		Slices:      make([]SliceRecord, 0),
		Preemptions: make([]PreemptionRecord, 0),
	}
}

// RecordSlice appends a CPU slice. Empty slices are dropped, and a slice that
// continues the previous one for the same PID is merged into it, so a process
// re-dispatched with no gap shows as one interval.
func (st *SimulationTrace) RecordSlice(record SliceRecord) {
	if record.Stop <= record.Start {
		return
	}
	if n := len(st.Slices); n > 0 {
		last := &st.Slices[n-1]
		if last.PID == record.PID && last.Stop == record.Start {
			last.Stop = record.Stop
			return
		}
	}
	st.Slices = append(st.Slices, record)
}

// RecordPreemption appends a preemption record.
func (st *SimulationTrace) RecordPreemption(record PreemptionRecord) {
	st.Preemptions = append(st.Preemptions, record)
}
