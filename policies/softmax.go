package policies

import (
	"fmt"
	"math"

	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// SoftmaxProbabilities returns exp(q_i) / sum_j exp(q_j). The largest
// estimate is subtracted before exponentiating to avoid overflow.
func SoftmaxProbabilities(estimates []float64) []float64 {
	largest := floats.Max(estimates)

	probs := make([]float64, len(estimates))
	for i, q := range estimates {
		probs[i] = math.Exp(q - largest)
	}
	floats.Scale(1/floats.Sum(probs), probs)
	return probs
}

func softmaxAction(rng *erand.Rand, estimates []float64) (int, error) {
	if floats.HasNaN(estimates) {
		return 0, fmt.Errorf("%w: estimates %v", ErrNaNValue, estimates)
	}
	weights := SoftmaxProbabilities(estimates)
	if floats.HasNaN(weights) {
		return 0, fmt.Errorf("%w: softmax over %v", ErrInvalidParameter, estimates)
	}
	// using the sampleuv library to sample based on the weights
	i, ok := sampleuv.NewWeighted(weights, rng).Take()
	if !ok {
		return 0, fmt.Errorf("%w: could not sample from %v", ErrInvalidParameter, weights)
	}
	return i, nil
}
