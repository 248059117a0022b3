package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/schedsim/schedsim/sim/trace"
)

// desc builds a descriptor in (pid, arrival, priority, burst) order.
func desc(pid, arrival, priority, burst int64) ProcessDescriptor {
	return ProcessDescriptor{PID: pid, ArrivalTime: arrival, Priority: priority, BurstTime: burst}
}

// mustRun runs batch under policy with dispatch tracing enabled.
func mustRun(t *testing.T, policy PolicyName, quantum int64, batch ...ProcessDescriptor) *Result {
	t.Helper()
	res, err := Run(RunConfig{
		Policy:  string(policy),
		Quantum: quantum,
		Trace:   trace.TraceConfig{Level: trace.TraceLevelDispatch},
	}, batch)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

// completionOrder returns the PIDs of res.Executed in completion order.
func completionOrder(res *Result) []int64 {
	pids := make([]int64, len(res.Executed))
	for i, p := range res.Executed {
		pids[i] = p.PID
	}
	return pids
}

// testRandomBatch builds a valid batch of n processes with PIDs 1..n assigned in
// arrival order, bursts >= 1, and a few simultaneous arrivals.
func testRandomBatch(rng *rand.Rand, n int) []ProcessDescriptor {
	batch := make([]ProcessDescriptor, n)
	var clock int64
	for i := range batch {
		if rng.Intn(3) > 0 {
			clock += rng.Int63n(6)
		}
		batch[i] = desc(int64(i+1), clock, rng.Int63n(6), 1+rng.Int63n(10))
	}
	return batch
}
