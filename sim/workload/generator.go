package workload

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim"
)

// Generate creates spec.Count process descriptors.
// Deterministic given the same spec and seed: arrival gaps, bursts and
// priorities each draw from their own PartitionedRNG subsystem.
// The first process arrives at 0; PIDs are 1..Count in arrival order.
// Bursts are at least 1.
func Generate(spec *BatchSpec) ([]sim.ProcessDescriptor, error) {
	if spec.Count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", spec.Count)
	}
	arrivals, err := NewArrivalSampler(spec.Arrival)
	if err != nil {
		return nil, fmt.Errorf("arrival: %w", err)
	}
	bursts, err := NewValueSampler(spec.Burst)
	if err != nil {
		return nil, fmt.Errorf("burst distribution: %w", err)
	}
	priorities, err := NewValueSampler(spec.Priority)
	if err != nil {
		return nil, fmt.Errorf("priority distribution: %w", err)
	}

	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(spec.Seed))
	arrivalRNG := rng.ForSubsystem(sim.SubsystemArrival)
	burstRNG := rng.ForSubsystem(sim.SubsystemBurst)
	priorityRNG := rng.ForSubsystem(sim.SubsystemPriority)

	batch := make([]sim.ProcessDescriptor, spec.Count)
	var clock int64
	for i := range batch {
		if i > 0 {
			clock += arrivals.SampleGap(arrivalRNG)
		}
		batch[i] = sim.ProcessDescriptor{
			PID:         int64(i + 1),
			ArrivalTime: clock,
			Priority:    priorities.Sample(priorityRNG),
			BurstTime:   max(1, bursts.Sample(burstRNG)),
		}
	}
	logrus.Debugf("Generated %d processes (seed %d), last arrival at %d", len(batch), spec.Seed, clock)
	return batch, nil
}
