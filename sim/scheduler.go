package sim

import (
	"fmt"
	"sort"
	"strings"
)

// PolicyName identifies one of the supported dispatch disciplines.
type PolicyName string

const (
	PolicyFCFS                  PolicyName = "FCFS"
	PolicyNonPreemptiveSJF      PolicyName = "NonPreemptiveSFJ"
	PolicyPreemptiveSJF         PolicyName = "PreemptiveSFJ"
	PolicyNonPreemptivePriority PolicyName = "NonPreemptivePriority"
	PolicyPreemptivePriority    PolicyName = "PreemptivePriority"
	PolicyRoundRobin            PolicyName = "RoundRobin"
)

// DefaultQuantum is the round-robin time slice used when none is configured.
const DefaultQuantum int64 = 4

// Policy supplies the selection and preemption rules for one discipline.
// The Simulator owns admission and clock advancement; a Policy only answers questions.
// Implementations MUST NOT modify the processes they are given.
type Policy interface {
	Name() PolicyName
	// Select returns the ready-queue position of the next process to dispatch.
	// Only called with a non-empty queue.
	Select(ready *ReadyQueue) int
	// Preempt reports whether candidate should replace running on the CPU.
	Preempt(running, candidate *Process) bool
	// Quantum returns the time slice, or 0 for run-to-event dispatch.
	Quantum() int64
	// IdleAdvance selects how the clock moves while the CPU has nothing to run.
	IdleAdvance() ClockMode
}

// FCFS dispatches strictly in arrival order and never preempts.
type FCFS struct{}

func (FCFS) Name() PolicyName { return PolicyFCFS }
func (FCFS) Select(_ *ReadyQueue) int { return 0 }
func (FCFS) Preempt(_, _ *Process) bool { return false }
func (FCFS) Quantum() int64 { return 0 }
func (FCFS) IdleAdvance() ClockMode { return EventJump }

// ShortestJobFirst dispatches the smallest burst, then arrival, then PID.
// A dispatched process runs to completion.
type ShortestJobFirst struct{}

func (ShortestJobFirst) Name() PolicyName { return PolicyNonPreemptiveSJF }
func (ShortestJobFirst) Select(ready *ReadyQueue) int { return selectMin(ready, byBurst) }
func (ShortestJobFirst) Preempt(_, _ *Process) bool { return false }
func (ShortestJobFirst) Quantum() int64 { return 0 }
func (ShortestJobFirst) IdleAdvance() ClockMode { return EventJump }

// ShortestRemainingTimeFirst is preemptive SJF: remaining burst is the key,
// and a ready process with strictly less remaining time takes the CPU.
// Warning: can starve long processes under sustained short arrivals.
type ShortestRemainingTimeFirst struct{}

func (ShortestRemainingTimeFirst) Name() PolicyName { return PolicyPreemptiveSJF }
func (ShortestRemainingTimeFirst) Select(ready *ReadyQueue) int {
	return selectMin(ready, byRemaining)
}
func (ShortestRemainingTimeFirst) Preempt(running, candidate *Process) bool {
	return candidate.RemainingTime < running.RemainingTime
}
func (ShortestRemainingTimeFirst) Quantum() int64 { return 0 }
func (ShortestRemainingTimeFirst) IdleAdvance() ClockMode { return EventJump }

// NonPreemptivePriority dispatches the lowest priority value; ties by arrival.
type NonPreemptivePriority struct{}

func (NonPreemptivePriority) Name() PolicyName { return PolicyNonPreemptivePriority }
func (NonPreemptivePriority) Select(ready *ReadyQueue) int { return selectMin(ready, byPriority) }
func (NonPreemptivePriority) Preempt(_, _ *Process) bool { return false }
func (NonPreemptivePriority) Quantum() int64 { return 0 }
func (NonPreemptivePriority) IdleAdvance() ClockMode { return EventJump }

// PreemptivePriority replaces the running process when a strictly better
// (lower) priority is ready. While idle the clock ticks one unit at a time so
// that every arrival of an instant is admitted before any is chosen.
type PreemptivePriority struct{}

func (PreemptivePriority) Name() PolicyName { return PolicyPreemptivePriority }
func (PreemptivePriority) Select(ready *ReadyQueue) int { return selectMin(ready, byPriority) }
func (PreemptivePriority) Preempt(running, candidate *Process) bool {
	return candidate.Priority < running.Priority
}
func (PreemptivePriority) Quantum() int64 { return 0 }
func (PreemptivePriority) IdleAdvance() ClockMode { return Tick }

// RoundRobin serves the ready queue FIFO, granting at most quantum units per dispatch.
type RoundRobin struct {
	quantum int64
}

// NewRoundRobin creates a RoundRobin policy. Returns ErrInvalidQuantum if quantum < 1.
func NewRoundRobin(quantum int64) (*RoundRobin, error) {
	if quantum < 1 {
		return nil, fmt.Errorf("%w: %d (must be >= 1)", ErrInvalidQuantum, quantum)
	}
	return &RoundRobin{quantum: quantum}, nil
}

func (r *RoundRobin) Name() PolicyName { return PolicyRoundRobin }
func (r *RoundRobin) Select(_ *ReadyQueue) int { return 0 }
func (r *RoundRobin) Preempt(_, _ *Process) bool { return false }
func (r *RoundRobin) Quantum() int64 { return r.quantum }
func (r *RoundRobin) IdleAdvance() ClockMode { return Tick }

// policyAliases maps accepted CLI/API spellings to canonical names.
var policyAliases = map[string]PolicyName{
	"fcfs":                    PolicyFCFS,
	"sjf":                     PolicyNonPreemptiveSJF,
	"non-preemptive-sjf":      PolicyNonPreemptiveSJF,
	"srtf":                    PolicyPreemptiveSJF,
	"preemptive-sjf":          PolicyPreemptiveSJF,
	"priority":                PolicyNonPreemptivePriority,
	"non-preemptive-priority": PolicyNonPreemptivePriority,
	"preemptive-priority":     PolicyPreemptivePriority,
	"rr":                      PolicyRoundRobin,
	"round-robin":             PolicyRoundRobin,
}

// ValidPolicies is the set of canonical policy names.
var ValidPolicies = map[PolicyName]bool{
	PolicyFCFS:                  true,
	PolicyNonPreemptiveSJF:      true,
	PolicyPreemptiveSJF:         true,
	PolicyNonPreemptivePriority: true,
	PolicyPreemptivePriority:    true,
	PolicyRoundRobin:            true,
}

// AllPolicies lists the canonical names in presentation order.
var AllPolicies = []PolicyName{
	PolicyFCFS,
	PolicyNonPreemptiveSJF,
	PolicyPreemptiveSJF,
	PolicyNonPreemptivePriority,
	PolicyPreemptivePriority,
	PolicyRoundRobin,
}

// ParsePolicyName resolves a canonical name or alias (case-insensitive for aliases).
func ParsePolicyName(name string) (PolicyName, error) {
	if ValidPolicies[PolicyName(name)] {
		return PolicyName(name), nil
	}
	if canonical, ok := policyAliases[strings.ToLower(name)]; ok {
		return canonical, nil
	}
	for p := range ValidPolicies {
		if strings.EqualFold(string(p), name) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownPolicy, name)
}

// IsValidPolicy returns true if name resolves to a supported policy.
func IsValidPolicy(name string) bool {
	_, err := ParsePolicyName(name)
	return err == nil
}

// ValidPolicyNames returns the canonical policy names, sorted.
func ValidPolicyNames() []string {
	names := make([]string, 0, len(ValidPolicies))
	for p := range ValidPolicies {
		names = append(names, string(p))
	}
	sort.Strings(names)
	return names
}

// NewPolicy creates a Policy by name. quantum is only read for round-robin.
// Unknown names are rejected here, before any run begins.
func NewPolicy(name string, quantum int64) (Policy, error) {
	canonical, err := ParsePolicyName(name)
	if err != nil {
		return nil, err
	}
	switch canonical {
	case PolicyFCFS:
		return FCFS{}, nil
	case PolicyNonPreemptiveSJF:
		return ShortestJobFirst{}, nil
	case PolicyPreemptiveSJF:
		return ShortestRemainingTimeFirst{}, nil
	case PolicyNonPreemptivePriority:
		return NonPreemptivePriority{}, nil
	case PolicyPreemptivePriority:
		return PreemptivePriority{}, nil
	case PolicyRoundRobin:
		return NewRoundRobin(quantum)
	default:
		panic(fmt.Sprintf("unhandled policy %q", canonical))
	}
}
