package workload

import (
	"testing"
)

func TestLoad_ByExtension(t *testing.T) {
	csvPath := writeFile(t, "batch.csv", "1,0,0,3\n2,1,0,2\n")
	yamlPath := writeFile(t, "batch.yml", "processes:\n  - {pid: 1, arrival_time: 0, priority: 0, burst_time: 3}\n")

	fromCSV, err := Load(csvPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(fromCSV) != 2 {
		t.Errorf("csv: len = %d, want 2", len(fromCSV))
	}

	fromYAML, err := Load(yamlPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(fromYAML) != 1 || fromYAML[0].BurstTime != 3 {
		t.Errorf("yaml: got %+v", fromYAML)
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "batch.txt", "1,0,0,3\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for .txt")
	}
}
