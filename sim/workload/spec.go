package workload

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/schedsim/schedsim/sim"
)

// BatchSpec is the top-level YAML batch file.
// It either lists processes explicitly or describes how to generate Count of them.
type BatchSpec struct {
	Version   string                  `yaml:"version"`
	Seed      int64                   `yaml:"seed"`
	Count     int                     `yaml:"count,omitempty"`
	Arrival   ArrivalSpec             `yaml:"arrival,omitempty"`
	Burst     DistSpec                `yaml:"burst_distribution,omitempty"`
	Priority  DistSpec                `yaml:"priority_distribution,omitempty"`
	Processes []sim.ProcessDescriptor `yaml:"processes,omitempty"`
}

// ArrivalSpec configures the inter-arrival gap process.
type ArrivalSpec struct {
	Process string             `yaml:"process"`
	Params  map[string]float64 `yaml:"params,omitempty"`
}

// DistSpec parameterizes a burst or priority distribution.
type DistSpec struct {
	Type   string             `yaml:"type"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

// Valid value registries.
var (
	validArrivalProcesses = map[string]bool{
		"poisson": true, "uniform": true, "constant": true,
	}
	validDistTypes = map[string]bool{
		"uniform": true, "gaussian": true, "exponential": true, "constant": true,
	}
	validVersions = map[string]bool{
		"": true, "1": true,
	}
)

// DefaultBatchSpec returns a generator spec with the CLI defaults:
// Poisson arrivals at 0.5 per unit, bursts uniform in [1, 10],
// priorities uniform in [0, 5].
func DefaultBatchSpec(count int, seed int64) *BatchSpec {
	return &BatchSpec{
		Version:  "1",
		Seed:     seed,
		Count:    count,
		Arrival:  ArrivalSpec{Process: "poisson", Params: map[string]float64{"rate": 0.5}},
		Burst:    DistSpec{Type: "uniform", Params: map[string]float64{"min": 1, "max": 10}},
		Priority: DistSpec{Type: "uniform", Params: map[string]float64{"min": 0, "max": 5}},
	}
}

// LoadBatchSpec reads and parses a YAML batch file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadBatchSpec(path string) (*BatchSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch spec: %w", err)
	}
	var spec BatchSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing batch spec: %w", err)
	}
	return &spec, nil
}

// Validate checks that the spec describes exactly one usable batch.
func (s *BatchSpec) Validate() error {
	if !validVersions[s.Version] {
		return fmt.Errorf("unsupported batch spec version %q", s.Version)
	}
	if len(s.Processes) > 0 {
		if s.Count != 0 {
			return fmt.Errorf("count and processes are mutually exclusive")
		}
		return sim.ValidateBatch(s.Processes)
	}
	if s.Count <= 0 {
		return fmt.Errorf("count must be positive when no processes are listed, got %d", s.Count)
	}
	if !validArrivalProcesses[s.Arrival.Process] {
		return fmt.Errorf("unknown arrival process %q; valid: poisson, uniform, constant", s.Arrival.Process)
	}
	if err := validateParams("arrival", s.Arrival.Params); err != nil {
		return err
	}
	if err := validateDistSpec("burst_distribution", &s.Burst); err != nil {
		return err
	}
	return validateDistSpec("priority_distribution", &s.Priority)
}

// Descriptors returns the explicit processes, or generates Count of them.
func (s *BatchSpec) Descriptors() ([]sim.ProcessDescriptor, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if len(s.Processes) > 0 {
		out := make([]sim.ProcessDescriptor, len(s.Processes))
		copy(out, s.Processes)
		return out, nil
	}
	return Generate(s)
}

func validateDistSpec(prefix string, d *DistSpec) error {
	if !validDistTypes[d.Type] {
		return fmt.Errorf("%s: unknown distribution type %q; valid: uniform, gaussian, exponential, constant", prefix, d.Type)
	}
	return validateParams(prefix, d.Params)
}

func validateParams(prefix string, params map[string]float64) error {
	for name, val := range params {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return fmt.Errorf("%s.params.%s must be a finite number, got %f", prefix, name, val)
		}
	}
	return nil
}
