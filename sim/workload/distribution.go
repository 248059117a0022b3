package workload

import (
	"fmt"
	"math"
	"math/rand"
)

// ValueSampler generates one integer attribute of a process (burst or priority).
type ValueSampler interface {
	// Sample returns a non-negative value.
	Sample(rng *rand.Rand) int64
}

// UniformSampler draws uniformly from the closed range [min, max].
type UniformSampler struct {
	min, max int64
}

func (s *UniformSampler) Sample(rng *rand.Rand) int64 {
	if s.min == s.max {
		return s.min
	}
	return s.min + rng.Int63n(s.max-s.min+1)
}

// GaussianSampler produces clamped, rounded Gaussian values.
type GaussianSampler struct {
	mean, stdDev float64
	min, max     int64
}

func (s *GaussianSampler) Sample(rng *rand.Rand) int64 {
	if s.min == s.max {
		return s.min
	}
	val := rng.NormFloat64()*s.stdDev + s.mean
	clamped := math.Min(float64(s.max), math.Max(float64(s.min), val))
	return int64(math.Round(clamped))
}

// ExponentialSampler produces exponentially-distributed values with the given mean.
type ExponentialSampler struct {
	mean float64
}

func (s *ExponentialSampler) Sample(rng *rand.Rand) int64 {
	val := math.Round(rng.ExpFloat64() * s.mean)
	// ExpFloat64 is unbounded; keep the result representable.
	if math.IsInf(val, 0) || val > math.MaxInt32 {
		return math.MaxInt32
	}
	return int64(val)
}

// ConstantSampler always returns the same fixed value.
type ConstantSampler struct {
	value int64
}

func (s *ConstantSampler) Sample(_ *rand.Rand) int64 {
	return s.value
}

// requireParam checks that all required keys exist in a params map.
func requireParam(params map[string]float64, keys ...string) error {
	for _, k := range keys {
		if _, ok := params[k]; !ok {
			return fmt.Errorf("distribution requires parameter %q", k)
		}
	}
	return nil
}

// NewValueSampler creates a ValueSampler from a DistSpec.
func NewValueSampler(spec DistSpec) (ValueSampler, error) {
	switch spec.Type {
	case "uniform":
		if err := requireParam(spec.Params, "min", "max"); err != nil {
			return nil, err
		}
		lo, hi := int64(spec.Params["min"]), int64(spec.Params["max"])
		if lo < 0 || hi < lo {
			return nil, fmt.Errorf("uniform requires 0 <= min <= max, got [%d, %d]", lo, hi)
		}
		return &UniformSampler{min: lo, max: hi}, nil

	case "gaussian":
		if err := requireParam(spec.Params, "mean", "std_dev", "min", "max"); err != nil {
			return nil, err
		}
		lo, hi := int64(spec.Params["min"]), int64(spec.Params["max"])
		if lo < 0 || hi < lo {
			return nil, fmt.Errorf("gaussian requires 0 <= min <= max, got [%d, %d]", lo, hi)
		}
		if spec.Params["std_dev"] < 0 {
			return nil, fmt.Errorf("gaussian std_dev must be non-negative, got %f", spec.Params["std_dev"])
		}
		return &GaussianSampler{
			mean:   spec.Params["mean"],
			stdDev: spec.Params["std_dev"],
			min:    lo,
			max:    hi,
		}, nil

	case "exponential":
		if err := requireParam(spec.Params, "mean"); err != nil {
			return nil, err
		}
		if spec.Params["mean"] <= 0 {
			return nil, fmt.Errorf("exponential mean must be positive, got %f", spec.Params["mean"])
		}
		return &ExponentialSampler{mean: spec.Params["mean"]}, nil

	case "constant":
		if err := requireParam(spec.Params, "value"); err != nil {
			return nil, err
		}
		if spec.Params["value"] < 0 {
			return nil, fmt.Errorf("constant value must be non-negative, got %f", spec.Params["value"])
		}
		return &ConstantSampler{value: int64(spec.Params["value"])}, nil

	default:
		return nil, fmt.Errorf("unknown distribution type %q", spec.Type)
	}
}
