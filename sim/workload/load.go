package workload

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim"
)

// Load reads a batch from path, choosing the format by extension:
// .csv for process rows, .yaml/.yml for a BatchSpec (explicit or generated).
func Load(path string) ([]sim.ProcessDescriptor, error) {
	var batch []sim.ProcessDescriptor
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		b, err := LoadCSV(path)
		if err != nil {
			return nil, err
		}
		batch = b
	case ".yaml", ".yml":
		spec, err := LoadBatchSpec(path)
		if err != nil {
			return nil, err
		}
		b, err := spec.Descriptors()
		if err != nil {
			return nil, fmt.Errorf("batch spec %s: %w", path, err)
		}
		batch = b
	default:
		return nil, fmt.Errorf("unsupported workload format %q; use .csv, .yaml or .yml", ext)
	}
	logrus.Infof("Loaded %d processes from %s", len(batch), path)
	return batch, nil
}
