package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedsim/schedsim/sim"
)

func writeBatch(t *testing.T, csv string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.csv")
	require.NoError(t, os.WriteFile(path, []byte(csv), 0644))
	return path
}

const srtfBatch = "pid,arrival_time,priority,burst_time\n1,0,0,10\n2,3,0,2\n"

func TestRunSimulation_PrintsTableAndGantt(t *testing.T) {
	// GIVEN a batch where a short job preempts a long one
	path := writeBatch(t, srtfBatch)
	var buf bytes.Buffer

	// WHEN run under srtf with a Gantt chart
	err := runSimulation(&buf, runOptions{WorkloadPath: path, Policy: "srtf", Quantum: 4, TraceLevel: "none", Gantt: true})

	// THEN the Gantt line shows the preemption and resumption
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "=== PreemptiveSFJ ===")
	assert.Contains(t, out, "|0 P1 3|3 P2 5|5 P1 12|")
	assert.Contains(t, out, "Preemptions          : 1")
}

func TestRunSimulation_SavesResults(t *testing.T) {
	path := writeBatch(t, srtfBatch)
	results := filepath.Join(t.TempDir(), "out.json")

	err := runSimulation(&bytes.Buffer{}, runOptions{WorkloadPath: path, Policy: "fcfs", Quantum: 4, ResultsPath: results})

	require.NoError(t, err)
	data, err := os.ReadFile(results)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"policy": "FCFS"`)
}

func TestRunSimulation_Errors(t *testing.T) {
	path := writeBatch(t, srtfBatch)

	err := runSimulation(&bytes.Buffer{}, runOptions{WorkloadPath: path, Policy: "lottery", Quantum: 4})
	assert.True(t, errors.Is(err, sim.ErrUnknownPolicy))
	assert.True(t, strings.Contains(err.Error(), "FCFS"), "error lists valid policies")

	err = runSimulation(&bytes.Buffer{}, runOptions{WorkloadPath: path, Policy: "fcfs", Quantum: 4, TraceLevel: "verbose"})
	assert.Error(t, err)

	empty := writeBatch(t, "pid,arrival_time,priority,burst_time\n")
	err = runSimulation(&bytes.Buffer{}, runOptions{WorkloadPath: empty, Policy: "fcfs", Quantum: 4})
	assert.True(t, errors.Is(err, sim.ErrEmptyBatch))

	bad := writeBatch(t, "1,0,0,x\n")
	err = runSimulation(&bytes.Buffer{}, runOptions{WorkloadPath: bad, Policy: "fcfs", Quantum: 4})
	assert.True(t, errors.Is(err, sim.ErrInvalidDescriptor))
}

func TestRunComparison_AllPolicies(t *testing.T) {
	path := writeBatch(t, srtfBatch)
	var buf bytes.Buffer

	require.NoError(t, runComparison(&buf, path, 4, false))

	out := buf.String()
	for _, name := range sim.AllPolicies {
		assert.Contains(t, out, "| "+string(name)+" ")
	}
}

func TestRunComparison_Details(t *testing.T) {
	path := writeBatch(t, srtfBatch)
	var buf bytes.Buffer

	require.NoError(t, runComparison(&buf, path, 4, true))

	assert.Equal(t, len(sim.AllPolicies), strings.Count(buf.String(), "Completed Processes"))
}
