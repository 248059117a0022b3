package sim

import "github.com/schedsim/schedsim/sim/trace"

// Result is the record a run hands to the reporting layer.
type Result struct {
	Policy PolicyName
	// Executed lists completed processes in completion order, each with final timing fields.
	Executed []*Process
	// CPUTotalTime is the clock value when the last process completed.
	CPUTotalTime int64
	// IdleTime is the total clock duration with nothing running.
	IdleTime int64
	// Trace is nil unless tracing was enabled for the run.
	Trace *trace.SimulationTrace
}

// BusyTime returns CPUTotalTime - IdleTime, which equals the sum of all bursts.
func (r *Result) BusyTime() int64 {
	return r.CPUTotalTime - r.IdleTime
}

// ByPID returns the executed process with the given PID, or nil.
func (r *Result) ByPID(pid int64) *Process {
	for _, p := range r.Executed {
		if p.PID == pid {
			return p
		}
	}
	return nil
}
