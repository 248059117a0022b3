package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedsim/schedsim/sim/workload"
)

func TestGenerateBatch_WritesLoadableCSV(t *testing.T) {
	// GIVEN the default generator spec
	out := filepath.Join(t.TempDir(), "batch.csv")

	// WHEN generated to a file
	require.NoError(t, generateBatch(workload.DefaultBatchSpec(25, 42), out, nil))

	// THEN the file loads back as the same batch
	loaded, err := workload.Load(out)
	require.NoError(t, err)
	want, err := workload.Generate(workload.DefaultBatchSpec(25, 42))
	require.NoError(t, err)
	assert.Equal(t, want, loaded)
}

func TestGenerateBatch_Stdout(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, generateBatch(workload.DefaultBatchSpec(3, 1), "", &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 4, "header plus three rows")
	assert.Equal(t, "pid,arrival_time,priority,burst_time", lines[0])
}

func TestGenerateBatch_InvalidSpec(t *testing.T) {
	err := generateBatch(workload.DefaultBatchSpec(0, 1), "", &bytes.Buffer{})
	assert.Error(t, err)
}
