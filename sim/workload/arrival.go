package workload

import (
	"fmt"
	"math/rand"
)

// ArrivalSampler generates the gap between consecutive process arrivals.
type ArrivalSampler interface {
	// SampleGap returns the next inter-arrival gap in clock units (>= 0).
	// A zero gap means a simultaneous arrival.
	SampleGap(rng *rand.Rand) int64
}

// PoissonSampler generates exponentially-distributed gaps (a Poisson arrival process).
type PoissonSampler struct {
	rate float64 // arrivals per clock unit
}

func (s *PoissonSampler) SampleGap(rng *rand.Rand) int64 {
	return int64(rng.ExpFloat64() / s.rate)
}

// UniformGapSampler draws gaps uniformly from [min, max].
type UniformGapSampler struct {
	min, max int64
}

func (s *UniformGapSampler) SampleGap(rng *rand.Rand) int64 {
	if s.min == s.max {
		return s.min
	}
	return s.min + rng.Int63n(s.max-s.min+1)
}

// ConstantGapSampler spaces arrivals evenly.
type ConstantGapSampler struct {
	gap int64
}

func (s *ConstantGapSampler) SampleGap(_ *rand.Rand) int64 {
	return s.gap
}

// NewArrivalSampler creates an ArrivalSampler from an ArrivalSpec.
func NewArrivalSampler(spec ArrivalSpec) (ArrivalSampler, error) {
	switch spec.Process {
	case "poisson":
		if err := requireParam(spec.Params, "rate"); err != nil {
			return nil, err
		}
		if spec.Params["rate"] <= 0 {
			return nil, fmt.Errorf("poisson rate must be positive, got %f", spec.Params["rate"])
		}
		return &PoissonSampler{rate: spec.Params["rate"]}, nil
	case "uniform":
		if err := requireParam(spec.Params, "min", "max"); err != nil {
			return nil, err
		}
		lo, hi := int64(spec.Params["min"]), int64(spec.Params["max"])
		if lo < 0 || hi < lo {
			return nil, fmt.Errorf("uniform arrival requires 0 <= min <= max, got [%d, %d]", lo, hi)
		}
		return &UniformGapSampler{min: lo, max: hi}, nil
	case "constant":
		if err := requireParam(spec.Params, "gap"); err != nil {
			return nil, err
		}
		if spec.Params["gap"] < 0 {
			return nil, fmt.Errorf("constant gap must be non-negative, got %f", spec.Params["gap"])
		}
		return &ConstantGapSampler{gap: int64(spec.Params["gap"])}, nil
	default:
		return nil, fmt.Errorf("unknown arrival process %q", spec.Process)
	}
}
