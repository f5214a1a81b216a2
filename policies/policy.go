package policies

import (
	"errors"
	"fmt"
	"math"

	erand "golang.org/x/exp/rand"
)

var (
	ErrEmptyEstimates     = errors.New("no action value estimates")
	ErrLengthMismatch     = errors.New("estimates and counts differ in length")
	ErrUnknownKind        = errors.New("unknown policy kind")
	ErrInvalidParameter   = errors.New("invalid policy parameter")
	ErrDegenerateUCBState = errors.New("degenerate ucb state")
	ErrNaNValue           = errors.New("NaN among values")
)

// Kind tags one of the supported action selection strategies
type Kind int

const (
	EpsilonGreedy Kind = iota
	UCB
	Softmax
)

func (k Kind) String() string {
	switch k {
	case EpsilonGreedy:
		return "EpsilonGreedy"
	case UCB:
		return "UCB"
	case Softmax:
		return "Softmax"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Policy is an immutable action selection strategy. Only the parameter
// relevant to Kind is read: Epsilon for EpsilonGreedy, C for UCB.
type Policy struct {
	Kind    Kind
	Epsilon float64
	C       float64
}

func NewEpsilonGreedy(epsilon float64) (Policy, error) {
	p := Policy{Kind: EpsilonGreedy, Epsilon: epsilon}
	return p, p.Validate()
}

func NewUCB(c float64) (Policy, error) {
	p := Policy{Kind: UCB, C: c}
	return p, p.Validate()
}

func NewSoftmax() Policy {
	return Policy{Kind: Softmax}
}

// Validate checks the parameters of the policy. Epsilon is a probability
// and has to lie in [0,1]; C only has to be a finite number.
func (p Policy) Validate() error {
	switch p.Kind {
	case EpsilonGreedy:
		if math.IsNaN(p.Epsilon) || p.Epsilon < 0 || p.Epsilon > 1 {
			return fmt.Errorf("%w: epsilon %v not in [0,1]", ErrInvalidParameter, p.Epsilon)
		}
	case UCB:
		if math.IsNaN(p.C) || math.IsInf(p.C, 0) {
			return fmt.Errorf("%w: ucb constant %v", ErrInvalidParameter, p.C)
		}
	case Softmax:
	default:
		return fmt.Errorf("%w: %v", ErrUnknownKind, p.Kind)
	}
	return nil
}

func (p Policy) String() string {
	switch p.Kind {
	case EpsilonGreedy:
		return fmt.Sprintf("Epsilon-Greedy Policy: %v", p.Epsilon)
	case UCB:
		return fmt.Sprintf("UCB Policy: %v", p.C)
	case Softmax:
		return "Softmax Policy"
	}
	return p.Kind.String()
}

// ChooseAction picks an arm index in [0, len(estimates)) given the
// current estimates and pull counts of an agent. It never modifies its
// arguments; all randomness is drawn from rng.
func (p Policy) ChooseAction(rng *erand.Rand, estimates []float64, counts []int) (int, error) {
	if len(estimates) == 0 {
		return 0, ErrEmptyEstimates
	}
	if len(counts) != len(estimates) {
		return 0, fmt.Errorf("%w: %d estimates, %d counts", ErrLengthMismatch, len(estimates), len(counts))
	}
	switch p.Kind {
	case EpsilonGreedy:
		return epsilonGreedyAction(rng, p.Epsilon, estimates)
	case UCB:
		return ucbAction(rng, p.C, estimates, counts)
	case Softmax:
		return softmaxAction(rng, estimates)
	}
	return 0, fmt.Errorf("%w: %v", ErrUnknownKind, p.Kind)
}
