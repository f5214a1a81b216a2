package core

import (
	"fmt"
	"math"

	"github.com/zeu5/bandit-testbed/policies"
	"github.com/zeu5/bandit-testbed/util"
	erand "golang.org/x/exp/rand"
)

type StepSizeKind int

const (
	SampleAverageStep StepSizeKind = iota
	ConstantStepSize
)

// StepSize decides how far an estimate moves towards a new reward.
// Sample averaging uses 1/n after the n-th pull of an arm, the constant
// rule uses Alpha regardless of n.
type StepSize struct {
	Kind  StepSizeKind
	Alpha float64
}

func SampleAverage() StepSize {
	return StepSize{Kind: SampleAverageStep}
}

func ConstantStep(alpha float64) (StepSize, error) {
	s := StepSize{Kind: ConstantStepSize, Alpha: alpha}
	return s, s.Validate()
}

func (s StepSize) Validate() error {
	switch s.Kind {
	case SampleAverageStep:
		return nil
	case ConstantStepSize:
		if math.IsNaN(s.Alpha) || s.Alpha <= 0 || s.Alpha > 1 {
			return fmt.Errorf("%w: step size %v not in (0,1]", ErrInvalidConfig, s.Alpha)
		}
		return nil
	}
	return fmt.Errorf("%w: unknown step size kind %d", ErrInvalidConfig, s.Kind)
}

// Step returns the step size for the n-th pull of an arm (n >= 1)
func (s StepSize) Step(n int) float64 {
	if s.Kind == ConstantStepSize {
		return s.Alpha
	}
	return 1 / float64(n)
}

func (s StepSize) String() string {
	if s.Kind == ConstantStepSize {
		return fmt.Sprintf("constant step %v", s.Alpha)
	}
	return "sample average"
}

// Agent keeps tabular value estimates and pull counts for every arm and
// selects actions with its policy
type Agent struct {
	name      string
	policy    policies.Policy
	step      StepSize
	estimates []float64
	counts    []int
	rand      *erand.Rand
}

func NewAgent(name string, policy policies.Policy, env *Environment, step StepSize, seed uint64) (*Agent, error) {
	if env == nil {
		return nil, fmt.Errorf("%w: agent %q has no environment", ErrInvalidConfig, name)
	}
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("agent %q: %w", name, err)
	}
	if err := step.Validate(); err != nil {
		return nil, fmt.Errorf("agent %q: %w", name, err)
	}
	return &Agent{
		name:      name,
		policy:    policy,
		step:      step,
		estimates: make([]float64, env.K()),
		counts:    make([]int, env.K()),
		rand:      erand.New(erand.NewSource(seed)),
	}, nil
}

func (a *Agent) SelectAction() (int, error) {
	return a.policy.ChooseAction(a.rand, a.estimates, a.counts)
}

// Update moves the estimate of action towards reward. The count is
// incremented before the step size is computed.
func (a *Agent) Update(action int, reward float64) error {
	if action < 0 || action >= len(a.estimates) {
		return fmt.Errorf("%w: agent %q got %d, k=%d", ErrInvalidActionIndex, a.name, action, len(a.estimates))
	}
	a.counts[action]++
	step := a.step.Step(a.counts[action])
	a.estimates[action] += step * (reward - a.estimates[action])
	return nil
}

// Reset zeroes estimates and counts, to be called at the start of a run
func (a *Agent) Reset() {
	for i := range a.estimates {
		a.estimates[i] = 0
		a.counts[i] = 0
	}
}

func (a *Agent) Seed(seed uint64) {
	a.rand.Seed(seed)
}

// Steps is the number of updates since the last reset
func (a *Agent) Steps() int {
	steps := 0
	for _, n := range a.counts {
		steps += n
	}
	return steps
}

func (a *Agent) Estimates() []float64 {
	return util.CopyFloatSlice(a.estimates)
}

func (a *Agent) Counts() []int {
	return util.CopyIntSlice(a.counts)
}

func (a *Agent) Name() string {
	return a.name
}
