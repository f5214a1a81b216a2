package policies

import (
	"fmt"

	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// MaxIndices returns every index holding the maximum of values, in
// ascending order. values must not be empty or contain NaN.
func MaxIndices(values []float64) []int {
	maxVal := floats.Max(values)
	maxIndices := make([]int, 0, 1)
	for i, v := range values {
		if v == maxVal {
			maxIndices = append(maxIndices, i)
		}
	}
	return maxIndices
}

// ArgmaxRandomTiebreak returns the index of the largest value. When
// several indices share the maximum one of them is picked uniformly at
// random.
func ArgmaxRandomTiebreak(rng *erand.Rand, values []float64) (int, error) {
	if len(values) == 0 {
		return 0, ErrEmptyEstimates
	}
	if floats.HasNaN(values) {
		return 0, fmt.Errorf("%w: %v", ErrNaNValue, values)
	}
	maxIndices := MaxIndices(values)
	if len(maxIndices) == 1 {
		return maxIndices[0], nil
	}
	return maxIndices[rng.Intn(len(maxIndices))], nil
}
