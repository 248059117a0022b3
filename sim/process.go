// Defines the Process struct that models one unit of work in the simulation.
// Tracks arrival, burst and priority inputs plus the timing fields filled in at completion.

package sim

import (
	"fmt"
)

// ProcessState represents the lifecycle state of a process.
type ProcessState string

const (
	StateNew        ProcessState = "new"
	StateReady      ProcessState = "ready"
	StateRunning    ProcessState = "running"
	StateWaiting    ProcessState = "waiting"
	StateSuspended  ProcessState = "suspended"
	StateExecuted   ProcessState = "executed"
	StateTerminated ProcessState = "terminated"
)

// ProcessDescriptor is the immutable input record supplied by the ingestion layer.
type ProcessDescriptor struct {
	PID         int64 `json:"pid" yaml:"pid"`
	ArrivalTime int64 `json:"arrival_time" yaml:"arrival_time"`
	Priority    int64 `json:"priority" yaml:"priority"`
	BurstTime   int64 `json:"burst_time" yaml:"burst_time"`
}

// Process models a single process's lifecycle in the simulation.
// PID, ArrivalTime, Priority and BurstTime never change after construction.
// Everything else is owned and mutated by the Simulator running it.
type Process struct {
	PID         int64 // Unique identifier
	ArrivalTime int64 // Logical time at which the process enters the ready queue
	Priority    int64 // Lower value = higher priority
	BurstTime   int64 // Total CPU time required

	RemainingTime int64        // Burst not yet consumed; reaches exactly 0 at completion
	Started       bool         // Tracks whether StartTime has been set
	StartTime     int64        // Time of first dispatch; preemption never resets it
	EndTime       int64        // Time at which RemainingTime reached 0
	State         ProcessState // new, ready, running, executed, ...

	// Derived once at completion.
	TurnaroundTime int64 // EndTime - ArrivalTime
	WaitingTime    int64 // TurnaroundTime - BurstTime (includes preemption gaps)
	ResponseTime   int64 // StartTime - ArrivalTime
}

// NewProcess creates a process in StateNew with its full burst remaining.
func NewProcess(d ProcessDescriptor) Process {
	return Process{
		PID:           d.PID,
		ArrivalTime:   d.ArrivalTime,
		Priority:      d.Priority,
		BurstTime:     d.BurstTime,
		RemainingTime: d.BurstTime,
		State:         StateNew,
	}
}

// Descriptor returns the immutable inputs of the process.
func (p *Process) Descriptor() ProcessDescriptor {
	return ProcessDescriptor{PID: p.PID, ArrivalTime: p.ArrivalTime, Priority: p.Priority, BurstTime: p.BurstTime}
}

// dispatch puts the process on the CPU. StartTime is only set on the first dispatch.
func (p *Process) dispatch(clock int64) {
	if p.State == StateExecuted {
		panic(fmt.Sprintf("dispatch: process %d already executed", p.PID))
	}
	if !p.Started {
		p.StartTime = clock
		p.Started = true
	}
	p.State = StateRunning
}

// consume charges d units of CPU time to the process.
func (p *Process) consume(d int64) {
	if d < 0 || d > p.RemainingTime {
		panic(fmt.Sprintf("consume: process %d cannot consume %d with %d remaining", p.PID, d, p.RemainingTime))
	}
	p.RemainingTime -= d
}

// complete records the end time and derives the timing metrics.
func (p *Process) complete(clock int64) {
	if p.RemainingTime != 0 {
		panic(fmt.Sprintf("complete: process %d still has %d remaining", p.PID, p.RemainingTime))
	}
	if p.State == StateExecuted {
		panic(fmt.Sprintf("complete: process %d already executed", p.PID))
	}
	p.EndTime = clock
	p.TurnaroundTime = p.EndTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
	p.ResponseTime = p.StartTime - p.ArrivalTime
	p.State = StateExecuted
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (PID: %d, State: %s, ArrivalTime: %d, Priority: %d, Remaining: %d/%d)",
		p.PID, p.State, p.ArrivalTime, p.Priority, p.RemainingTime, p.BurstTime)
}

// ValidateBatch rejects negative timing inputs and duplicate PIDs.
// It never coerces a bad descriptor; the first violation is returned wrapped in ErrInvalidDescriptor.
func ValidateBatch(batch []ProcessDescriptor) error {
	seen := make(map[int64]int, len(batch))
	for i, d := range batch {
		switch {
		case d.PID < 0:
			return fmt.Errorf("%w: descriptor %d has negative pid %d", ErrInvalidDescriptor, i, d.PID)
		case d.ArrivalTime < 0:
			return fmt.Errorf("%w: process %d has negative arrival_time %d", ErrInvalidDescriptor, d.PID, d.ArrivalTime)
		case d.BurstTime < 0:
			return fmt.Errorf("%w: process %d has negative burst_time %d", ErrInvalidDescriptor, d.PID, d.BurstTime)
		case d.Priority < 0:
			return fmt.Errorf("%w: process %d has negative priority %d", ErrInvalidDescriptor, d.PID, d.Priority)
		}
		if j, dup := seen[d.PID]; dup {
			return fmt.Errorf("%w: pid %d appears at descriptors %d and %d", ErrInvalidDescriptor, d.PID, j, i)
		}
		seen[d.PID] = i
	}
	return nil
}
