package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedsim/schedsim/sim/internal/testutil"
)

// TestGolden_Schedules replays the hand-checked schedules in testdata/golden_schedules.json.
func TestGolden_Schedules(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)

	for _, tc := range dataset.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			batch := make([]ProcessDescriptor, len(tc.Processes))
			for i, p := range tc.Processes {
				batch[i] = desc(p.PID, p.ArrivalTime, p.Priority, p.BurstTime)
			}

			res, err := Run(RunConfig{Policy: tc.Policy, Quantum: tc.Quantum}, batch)
			require.NoError(t, err)
			m := NewMetrics(res)

			assert.Equal(t, tc.Metrics.CPUTotalTime, m.CPUTotalTime, "cpu_total_time")
			assert.Equal(t, tc.Metrics.IdleTime, m.IdleTime, "cpu_idle_time")
			assert.Equal(t, tc.Metrics.CompletionOrder, completionOrder(res))
			testutil.AssertFloat64Equal(t, "avg_waiting_time", tc.Metrics.AvgWaitingTime, m.AvgWaitingTime, 1e-6)
			testutil.AssertFloat64Equal(t, "avg_turnaround_time", tc.Metrics.AvgTurnaroundTime, m.AvgTurnaroundTime, 1e-6)

			for _, want := range tc.Metrics.Details {
				p := res.ByPID(want.PID)
				require.NotNil(t, p, "pid %d", want.PID)
				assert.Equal(t, want.StartTime, p.StartTime, "pid %d start", want.PID)
				assert.Equal(t, want.EndTime, p.EndTime, "pid %d end", want.PID)
				assert.Equal(t, want.WaitingTime, p.WaitingTime, "pid %d waiting", want.PID)
			}
		})
	}
}
