// Package testutil provides shared test infrastructure for the scheduling kernel.
// It holds the golden schedule types and assertion helpers used by sim/ tests.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/golden_schedules.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one batch run under one policy with hand-checked results.
type GoldenTestCase struct {
	Name      string          `json:"name"`
	Policy    string          `json:"policy"`
	Quantum   int64           `json:"quantum"`
	Processes []GoldenProcess `json:"processes"`
	Metrics   GoldenMetrics   `json:"metrics"`
}

// GoldenProcess mirrors a process descriptor without importing sim.
type GoldenProcess struct {
	PID         int64 `json:"pid"`
	ArrivalTime int64 `json:"arrival_time"`
	Priority    int64 `json:"priority"`
	BurstTime   int64 `json:"burst_time"`
}

// GoldenMetrics represents the expected results of a golden test case.
type GoldenMetrics struct {
	// Exact match (clock units)
	CPUTotalTime int64 `json:"cpu_total_time"`
	IdleTime     int64 `json:"cpu_idle_time"`

	AvgWaitingTime    float64 `json:"avg_waiting_time"`
	AvgTurnaroundTime float64 `json:"avg_turnaround_time"`

	// CompletionOrder lists PIDs as they finished.
	CompletionOrder []int64            `json:"completion_order"`
	Details         []GoldenProcessEnd `json:"details"`
}

// GoldenProcessEnd is the expected final timing of one PID.
type GoldenProcessEnd struct {
	PID         int64 `json:"pid"`
	StartTime   int64 `json:"start_time"`
	EndTime     int64 `json:"end_time"`
	WaitingTime int64 `json:"waiting_time"`
}

// LoadGoldenDataset loads the golden schedules from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "golden_schedules.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Tests) == 0 {
		t.Fatal("golden dataset has no test cases")
	}
	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
