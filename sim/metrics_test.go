package sim

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewMetrics_Aggregates(t *testing.T) {
	// GIVEN the round-robin A/B run: waits 4 and 4, turnarounds 14 and 8
	res := mustRun(t, PolicyRoundRobin, 4, desc(1, 0, 0, 10), desc(2, 0, 0, 4))

	// WHEN reduced
	m := NewMetrics(res)

	// THEN averages, throughput and utilization follow from the details
	assert.Equal(t, "RoundRobin", m.Policy)
	assert.Equal(t, 2, m.CompletedProcesses)
	assert.InDelta(t, 4.0, m.AvgWaitingTime, 1e-9)
	assert.InDelta(t, 11.0, m.AvgTurnaroundTime, 1e-9)
	assert.InDelta(t, 2.0, m.AvgResponseTime, 1e-9)
	assert.InDelta(t, 2.0/14.0, m.Throughput, 1e-9)
	assert.InDelta(t, 1.0, m.Utilization, 1e-9)
	assert.Equal(t, int64(4), m.MaxWaitingTime)
	assert.Equal(t, 2, m.ContextSwitches)
	assert.Len(t, m.Slices, 3)

	// details keep completion order
	require.Len(t, m.Details, 2)
	assert.Equal(t, int64(2), m.Details[0].PID)
	assert.Equal(t, int64(14), m.Details[1].EndTime)
}

func TestNewMetrics_UtilizationWithIdle(t *testing.T) {
	res := mustRun(t, PolicyFCFS, 0, desc(1, 5, 0, 3))
	m := NewMetrics(res)
	assert.InDelta(t, 3.0/8.0, m.Utilization, 1e-9)
	assert.InDelta(t, 1.0/8.0, m.Throughput, 1e-9)
}

func TestNewMetrics_ZeroTotalTime_NoDivisionByZero(t *testing.T) {
	// GIVEN a single zero-burst process at time 0
	res := mustRun(t, PolicyFCFS, 0, desc(1, 0, 0, 0))

	m := NewMetrics(res)

	assert.Equal(t, int64(0), m.CPUTotalTime)
	assert.Equal(t, 0.0, m.Throughput)
	assert.Equal(t, 0.0, m.Utilization)
}

func TestNewMetrics_NoTrace_OmitsTraceFields(t *testing.T) {
	res, err := Run(RunConfig{Policy: "fcfs"}, []ProcessDescriptor{desc(1, 0, 0, 2)})
	require.NoError(t, err)

	m := NewMetrics(res)

	assert.Nil(t, m.Slices)
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "slices")
	assert.NotContains(t, string(data), "context_switches")
}

func TestMetrics_SaveResults_JSON(t *testing.T) {
	m := NewMetrics(mustRun(t, PolicyFCFS, 0, desc(1, 0, 0, 5), desc(2, 1, 0, 3)))
	path := filepath.Join(t.TempDir(), "results.json")

	require.NoError(t, m.SaveResults(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded Metrics
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "FCFS", decoded.Policy)
	assert.Equal(t, m.Details, decoded.Details)
	assert.Contains(t, string(data), `"cpu_idle_time"`)
}

func TestMetrics_SaveResults_YAMLByExtension(t *testing.T) {
	m := NewMetrics(mustRun(t, PolicyPreemptiveSJF, 0, desc(1, 0, 0, 10), desc(2, 3, 0, 2)))
	path := filepath.Join(t.TempDir(), "results.yml")

	require.NoError(t, m.SaveResults(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded Metrics
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, int64(12), decoded.CPUTotalTime)
	assert.Equal(t, 1, decoded.Preemptions)
}

func TestMetrics_SaveResults_BadPath(t *testing.T) {
	m := NewMetrics(mustRun(t, PolicyFCFS, 0, desc(1, 0, 0, 1)))
	err := m.SaveResults(filepath.Join(t.TempDir(), "missing", "out.json"))
	assert.Error(t, err)
}

func TestMetrics_Print(t *testing.T) {
	m := NewMetrics(mustRun(t, PolicyFCFS, 0, desc(1, 0, 0, 5), desc(2, 1, 0, 3)))
	var buf bytes.Buffer

	m.Print(&buf)

	out := buf.String()
	assert.Contains(t, out, "=== FCFS ===")
	assert.Contains(t, out, "Completed Processes  : 2")
	assert.Contains(t, out, "CPU Total Time       : 8")
	assert.Contains(t, out, "Context Switches")
	// averages row: waits 0 and 4
	assert.Contains(t, out, "2.00")
}

func TestMetrics_PrintGantt(t *testing.T) {
	m := NewMetrics(mustRun(t, PolicyFCFS, 0, desc(1, 0, 0, 2), desc(2, 4, 0, 1)))
	var buf bytes.Buffer

	m.PrintGantt(&buf)

	assert.Equal(t, "|0 P1 2|2 idle 4|4 P2 5|\n", buf.String())
}

func TestMetrics_PrintGantt_NoTrace(t *testing.T) {
	var buf bytes.Buffer
	(&Metrics{}).PrintGantt(&buf)
	assert.Contains(t, buf.String(), "no dispatch trace")
}

func TestPrintComparison_OneRowPerPolicy(t *testing.T) {
	batch := []ProcessDescriptor{desc(1, 0, 2, 6), desc(2, 1, 1, 2), desc(3, 2, 0, 4)}
	var all []*Metrics
	for _, name := range AllPolicies {
		all = append(all, NewMetrics(mustRun(t, name, 2, batch...)))
	}
	var buf bytes.Buffer

	PrintComparison(&buf, all)

	out := buf.String()
	for _, name := range AllPolicies {
		assert.Equal(t, 1, strings.Count(out, "| "+string(name)+" "), name)
	}
}
