// sim/simulator.go
package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim/trace"
)

// noProcess marks an empty running slot.
const noProcess = -1

// RunConfig groups the per-run selections made by the caller.
type RunConfig struct {
	Policy  string            // canonical name or alias, see ParsePolicyName
	Quantum int64             // round-robin slice; 0 = DefaultQuantum
	Trace   trace.TraceConfig // zero value disables tracing
}

// Simulator is the per-run state: the process arena, the four queues and the clock.
// A Simulator runs once; build a new one (from fresh descriptors) for every run.
type Simulator struct {
	Clock    int64
	IdleTime int64

	policy Policy
	// procs is the arena. Every queue below holds indices into it.
	procs []Process
	// pending holds processes not yet arrived, ascending by arrival time.
	pending []int
	ReadyQ  *ReadyQueue
	running int
	// executed holds completed processes in completion order.
	executed []int

	sliceStart int64
	trace      *trace.SimulationTrace
	ran        bool
}

// NewSimulator validates batch and prepares a run under policy.
// The batch is copied; the caller's slice is never mutated.
func NewSimulator(policy Policy, batch []ProcessDescriptor, traceConfig trace.TraceConfig) (*Simulator, error) {
	if policy == nil {
		panic("NewSimulator: policy must not be nil")
	}
	if len(batch) == 0 {
		return nil, ErrEmptyBatch
	}
	if err := ValidateBatch(batch); err != nil {
		return nil, err
	}

	sorted := make([]ProcessDescriptor, len(batch))
	copy(sorted, batch)
	// Stable: simultaneous arrivals keep batch (ingestion) order.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ArrivalTime < sorted[j].ArrivalTime
	})

	procs := make([]Process, len(sorted))
	pending := make([]int, len(sorted))
	for i, d := range sorted {
		procs[i] = NewProcess(d)
		pending[i] = i
	}

	sim := &Simulator{
		policy:   policy,
		procs:    procs,
		pending:  pending,
		ReadyQ:   NewReadyQueue(procs),
		running:  noProcess,
		executed: make([]int, 0, len(procs)),
	}
	if traceConfig.Enabled() {
		sim.trace = trace.NewSimulationTrace(traceConfig)
	}
	return sim, nil
}

// Run constructs the policy named in cfg and simulates batch to completion.
// Policy errors are reported before batch errors.
func Run(cfg RunConfig, batch []ProcessDescriptor) (*Result, error) {
	quantum := cfg.Quantum
	if quantum == 0 {
		quantum = DefaultQuantum
	}
	policy, err := NewPolicy(cfg.Policy, quantum)
	if err != nil {
		return nil, err
	}
	sim, err := NewSimulator(policy, batch, cfg.Trace)
	if err != nil {
		return nil, err
	}
	return sim.Run(), nil
}

// RunAll simulates batch once per policy in AllPolicies order. Each run gets its
// own copy of the batch, so results are independent.
func RunAll(batch []ProcessDescriptor, quantum int64, traceConfig trace.TraceConfig) ([]*Result, error) {
	results := make([]*Result, 0, len(AllPolicies))
	for _, name := range AllPolicies {
		res, err := Run(RunConfig{Policy: string(name), Quantum: quantum, Trace: traceConfig}, batch)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// Run executes the dispatch loop until pending, ready and running are all empty.
func (sim *Simulator) Run() *Result {
	if sim.ran {
		panic("Run: simulator already ran; build a new one per run")
	}
	sim.ran = true
	logrus.Infof("Starting %s over %d processes", sim.policy.Name(), len(sim.procs))

	for !sim.done() {
		sim.admit()

		if sim.running == noProcess {
			if sim.ReadyQ.Len() == 0 {
				sim.advanceIdle()
				continue
			}
			sim.dispatch(sim.ReadyQ.Remove(sim.policy.Select(sim.ReadyQ)))
		} else if sim.ReadyQ.Len() > 0 {
			pos := sim.policy.Select(sim.ReadyQ)
			if sim.policy.Preempt(sim.current(), sim.ReadyQ.At(pos)) {
				next := sim.ReadyQ.Remove(pos)
				sim.preempt(next)
				sim.dispatch(next)
			}
		}

		if q := sim.policy.Quantum(); q > 0 {
			sim.runSlice(q)
		} else {
			sim.runToNextEvent()
		}
	}

	logrus.Infof("[tick %07d] Simulation ended (idle=%d)", sim.Clock, sim.IdleTime)
	return sim.result()
}

func (sim *Simulator) done() bool {
	return len(sim.pending) == 0 && sim.ReadyQ.Len() == 0 && sim.running == noProcess
}

func (sim *Simulator) current() *Process {
	return &sim.procs[sim.running]
}

// admit moves every pending process with ArrivalTime <= Clock into the ready queue,
// in arrival order. Calling it twice at the same clock is a no-op the second time.
func (sim *Simulator) admit() {
	n := 0
	for n < len(sim.pending) && sim.procs[sim.pending[n]].ArrivalTime <= sim.Clock {
		idx := sim.pending[n]
		logrus.Debugf("[tick %07d] << Arrival: pid %d", sim.Clock, sim.procs[idx].PID)
		sim.ReadyQ.Enqueue(idx)
		n++
	}
	sim.pending = sim.pending[n:]
}

func (sim *Simulator) dispatch(idx int) {
	if sim.running != noProcess {
		panic(fmt.Sprintf("dispatch: pid %d already running", sim.current().PID))
	}
	sim.running = idx
	sim.sliceStart = sim.Clock
	p := sim.current()
	p.dispatch(sim.Clock)
	logrus.Debugf("[tick %07d] Dispatch: pid %d (remaining %d)", sim.Clock, p.PID, p.RemainingTime)
}

// release takes the running process off the CPU and closes its trace slice.
func (sim *Simulator) release() *Process {
	p := sim.current()
	if sim.trace != nil {
		sim.trace.RecordSlice(trace.SliceRecord{PID: p.PID, Start: sim.sliceStart, Stop: sim.Clock})
	}
	sim.running = noProcess
	return p
}

// preempt returns the running process to the back of the ready queue with its
// remaining time intact. by is the arena index of the process replacing it.
func (sim *Simulator) preempt(by int) {
	idx := sim.running
	p := sim.release()
	logrus.Debugf("[tick %07d] Preempt: pid %d by pid %d (remaining %d)", sim.Clock, p.PID, sim.procs[by].PID, p.RemainingTime)
	if sim.trace != nil {
		sim.trace.RecordPreemption(trace.PreemptionRecord{
			Clock:        sim.Clock,
			PreemptedPID: p.PID,
			ByPID:        sim.procs[by].PID,
			Remaining:    p.RemainingTime,
		})
	}
	sim.ReadyQ.Enqueue(idx)
}

func (sim *Simulator) complete() {
	idx := sim.running
	p := sim.release()
	p.complete(sim.Clock)
	sim.executed = append(sim.executed, idx)
	logrus.Debugf("[tick %07d] Complete: pid %d (turnaround %d, waiting %d)", sim.Clock, p.PID, p.TurnaroundTime, p.WaitingTime)
}

// runToNextEvent is event-jump execution: the clock moves to the running
// process's completion or the next arrival, whichever is first.
func (sim *Simulator) runToNextEvent() {
	p := sim.current()
	sim.advanceRunning(p, sim.nextImportantTime(p)-sim.Clock)
	if p.RemainingTime == 0 {
		sim.complete()
	}
}

// runSlice is tick execution for time-sliced policies. Admission runs at every
// unit inside the window so that processes arriving mid-quantum (including at
// its last instant) are queued ahead of the process being re-queued.
func (sim *Simulator) runSlice(quantum int64) {
	p := sim.current()
	window := min(p.RemainingTime, quantum)
	for i := int64(0); i < window; i++ {
		sim.advanceRunning(p, 1)
		sim.admit()
	}
	if p.RemainingTime == 0 {
		sim.complete()
		return
	}
	idx := sim.running
	sim.release()
	sim.ReadyQ.Enqueue(idx)
	logrus.Debugf("[tick %07d] Quantum expired: pid %d re-queued (remaining %d)", sim.Clock, p.PID, p.RemainingTime)
}

func (sim *Simulator) result() *Result {
	executed := make([]*Process, len(sim.executed))
	for i, idx := range sim.executed {
		executed[i] = &sim.procs[idx]
	}
	return &Result{
		Policy:       sim.policy.Name(),
		Executed:     executed,
		CPUTotalTime: sim.Clock,
		IdleTime:     sim.IdleTime,
		Trace:        sim.trace,
	}
}
