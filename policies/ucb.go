package policies

import (
	"fmt"
	"math"

	erand "golang.org/x/exp/rand"
)

// ucbAction scores every arm with Q(a) + c * sqrt(ln(t) / N(a)) where t is
// the total number of pulls. Arms that were never pulled get +Inf so they
// are all tried once before the bound applies; this also covers t == 0.
func ucbAction(rng *erand.Rand, c float64, estimates []float64, counts []int) (int, error) {
	t := 0
	for i, n := range counts {
		if n < 0 {
			return 0, fmt.Errorf("%w: negative count %d for arm %d", ErrDegenerateUCBState, n, i)
		}
		t += n
	}

	scores := make([]float64, len(estimates))
	logT := math.Log(float64(t))
	for i, n := range counts {
		if n == 0 {
			scores[i] = math.Inf(1)
			continue
		}
		scores[i] = estimates[i] + c*math.Sqrt(logT/float64(n))
		if math.IsNaN(scores[i]) {
			return 0, fmt.Errorf("%w: score for arm %d is NaN (t=%d, n=%d)", ErrDegenerateUCBState, i, t, n)
		}
	}
	return ArgmaxRandomTiebreak(rng, scores)
}
