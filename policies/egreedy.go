package policies

import (
	"fmt"

	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// With probability epsilon a uniformly random arm, otherwise the greedy
// arm with ties broken at random. NaN estimates are an error even when
// exploring.
func epsilonGreedyAction(rng *erand.Rand, epsilon float64, estimates []float64) (int, error) {
	if floats.HasNaN(estimates) {
		return 0, fmt.Errorf("%w: estimates %v", ErrNaNValue, estimates)
	}
	if rng.Float64() < epsilon {
		return rng.Intn(len(estimates)), nil
	}
	return ArgmaxRandomTiebreak(rng, estimates)
}
