// Package trace provides dispatch-trace recording for schedule analysis and Gantt rendering.
// It has no dependencies on sim/ and stores pure data types.
package trace

// SliceRecord captures one contiguous interval during which a process held the CPU.
type SliceRecord struct {
	PID   int64 `json:"pid" yaml:"pid"`
	Start int64 `json:"start" yaml:"start"`
	Stop  int64 `json:"stop" yaml:"stop"`
}

// Duration returns the length of the slice in clock units.
func (s SliceRecord) Duration() int64 {
	return s.Stop - s.Start
}

// PreemptionRecord captures a running process being displaced before completion.
type PreemptionRecord struct {
	Clock        int64 `json:"clock" yaml:"clock"`
	PreemptedPID int64 `json:"preempted_pid" yaml:"preempted_pid"`
	ByPID        int64 `json:"by_pid" yaml:"by_pid"`
	Remaining    int64 `json:"remaining" yaml:"remaining"` // burst left on the preempted process
}
