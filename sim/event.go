package sim

import "github.com/sirupsen/logrus"

// ClockMode selects how the logical clock advances when nothing is running.
type ClockMode int

const (
	// EventJump moves the clock straight to the next instant that can change
	// a dispatch decision: the next arrival, or the running process's completion.
	EventJump ClockMode = iota
	// Tick moves the clock one unit at a time, re-running admission at each unit.
	Tick
)

func (m ClockMode) String() string {
	switch m {
	case EventJump:
		return "event-jump"
	case Tick:
		return "tick"
	default:
		return "unknown"
	}
}

// nextArrival returns the arrival time of the earliest pending process.
func (sim *Simulator) nextArrival() (int64, bool) {
	if len(sim.pending) == 0 {
		return 0, false
	}
	return sim.procs[sim.pending[0]].ArrivalTime, true
}

// nextImportantTime returns the horizon for an event-jump while p runs:
// p's completion or the next arrival, whichever comes first.
func (sim *Simulator) nextImportantTime(p *Process) int64 {
	next := sim.Clock + p.RemainingTime
	if arrival, ok := sim.nextArrival(); ok && arrival < next {
		next = arrival
	}
	return next
}

// advanceIdle moves the clock while the CPU is empty and charges the gap as idle time.
// Only called when a pending process exists.
func (sim *Simulator) advanceIdle() {
	arrival, ok := sim.nextArrival()
	if !ok {
		panic("advanceIdle: no pending process to wait for")
	}
	to := arrival
	if sim.policy.IdleAdvance() == Tick {
		to = sim.Clock + 1
	}
	logrus.Debugf("[tick %07d] CPU idle until %d", sim.Clock, to)
	sim.IdleTime += to - sim.Clock
	sim.Clock = to
}

// advanceRunning moves the clock by d while p holds the CPU.
func (sim *Simulator) advanceRunning(p *Process, d int64) {
	p.consume(d)
	sim.Clock += d
}
