// sim/metrics_utils.go
package sim

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

type IntOrFloat64 interface {
	int | int64 | float64
}

func toFloat64s[T IntOrFloat64](data []T) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}
	return out
}

// CalculateMean is a util function that calculates the mean of a data list.
// Returns 0 for an empty list.
func CalculateMean[T IntOrFloat64](numbers []T) float64 {
	if len(numbers) == 0 {
		return 0.0
	}
	return stat.Mean(toFloat64s(numbers), nil)
}

// CalculateStdDev returns the sample standard deviation, or 0 with fewer than two values.
func CalculateStdDev[T IntOrFloat64](numbers []T) float64 {
	if len(numbers) < 2 {
		return 0.0
	}
	return stat.StdDev(toFloat64s(numbers), nil)
}

// CalculatePercentile is a util function that calculates the p-th percentile (0-100)
// of a data list using linear interpolation. The input is not modified.
func CalculatePercentile[T IntOrFloat64](data []T, p float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	sorted := toFloat64s(data)
	sort.Float64s(sorted)
	return stat.Quantile(p/100.0, stat.LinInterp, sorted, nil)
}
