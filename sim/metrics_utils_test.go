package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateMean(t *testing.T) {
	assert.Equal(t, 0.0, CalculateMean([]int64{}))
	assert.InDelta(t, 2.5, CalculateMean([]int64{1, 2, 3, 4}), 1e-9)
	assert.InDelta(t, 1.5, CalculateMean([]float64{1, 2}), 1e-9)
}

func TestCalculateStdDev_FewerThanTwo_ReturnsZero(t *testing.T) {
	assert.Equal(t, 0.0, CalculateStdDev([]int64{}))
	assert.Equal(t, 0.0, CalculateStdDev([]int64{7}))
}

func TestCalculateStdDev_SampleDeviation(t *testing.T) {
	// GIVEN {2, 4, 4, 4, 5, 5, 7, 9}: population sd 2, sample sd sqrt(32/7)
	data := []int{2, 4, 4, 4, 5, 5, 7, 9}

	// THEN the sample (n-1) form is used
	assert.InDelta(t, 2.13809, CalculateStdDev(data), 1e-4)
}

func TestCalculatePercentile_EmptyInput_ReturnsZero(t *testing.T) {
	assert.Equal(t, 0.0, CalculatePercentile([]int64{}, 90))
}

func TestCalculatePercentile_Bounds(t *testing.T) {
	data := []int64{5, 1, 3}
	assert.Equal(t, 1.0, CalculatePercentile(data, 0))
	assert.Equal(t, 5.0, CalculatePercentile(data, 100))
}

func TestCalculatePercentile_DoesNotMutateInput(t *testing.T) {
	// GIVEN unsorted input
	data := []int64{9, 3, 7}

	// WHEN a percentile is computed
	_ = CalculatePercentile(data, 50)

	// THEN the caller's slice keeps its order
	assert.Equal(t, []int64{9, 3, 7}, data)
}
