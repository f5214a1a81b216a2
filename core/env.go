package core

import (
	"fmt"
	"math"

	"github.com/zeu5/bandit-testbed/policies"
	"github.com/zeu5/bandit-testbed/util"
	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// EnvironmentConfig holds the construction parameters of a k-armed
// bandit. The true value of every arm is drawn from Normal(Mu, Sigma) on
// reset, rewards are drawn from Normal(q*(a), NoiseStdDev) and after each
// draw every true value takes a Normal(0, DriftStdDev) step. A zero
// DriftStdDev gives a stationary problem.
//
// Means optionally gives every arm its own initial mean instead of Mu; with
// a zero Sigma it pins the problem instance.
type EnvironmentConfig struct {
	K           int
	Mu          float64
	Sigma       float64
	NoiseStdDev float64
	DriftStdDev float64
	Means       []float64
}

func DefaultEnvironmentConfig() EnvironmentConfig {
	return EnvironmentConfig{
		K:           10,
		Mu:          0,
		Sigma:       1,
		NoiseStdDev: 1,
		DriftStdDev: 0,
	}
}

func (c EnvironmentConfig) Validate() error {
	if c.K < 1 {
		return fmt.Errorf("%w: need at least one arm, got k=%d", ErrInvalidConfig, c.K)
	}
	if math.IsNaN(c.Mu) || math.IsInf(c.Mu, 0) {
		return fmt.Errorf("%w: mu=%v", ErrInvalidConfig, c.Mu)
	}
	if c.Means != nil && len(c.Means) != c.K {
		return fmt.Errorf("%w: %d means for k=%d", ErrInvalidConfig, len(c.Means), c.K)
	}
	for i, m := range c.Means {
		if math.IsNaN(m) || math.IsInf(m, 0) {
			return fmt.Errorf("%w: mean of arm %d is %v", ErrInvalidConfig, i, m)
		}
	}
	stdDevs := []struct {
		name string
		v    float64
	}{
		{"sigma", c.Sigma},
		{"noise std", c.NoiseStdDev},
		{"drift std", c.DriftStdDev},
	}
	for _, s := range stdDevs {
		if math.IsNaN(s.v) || math.IsInf(s.v, 0) || s.v < 0 {
			return fmt.Errorf("%w: %s=%v must be a finite non-negative number", ErrInvalidConfig, s.name, s.v)
		}
	}
	return nil
}

func (c EnvironmentConfig) Stationary() bool {
	return c.DriftStdDev == 0
}

// Environment is a k-armed bandit. It is not safe for concurrent use.
type Environment struct {
	config     EnvironmentConfig
	trueValues []float64
	rand       *erand.Rand
}

// NewEnvironment validates the config and returns an environment whose
// true values have already been drawn once
func NewEnvironment(config EnvironmentConfig, seed uint64) (*Environment, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.Means != nil {
		config.Means = append([]float64(nil), config.Means...)
	}
	e := &Environment{
		config:     config,
		trueValues: make([]float64, config.K),
		rand:       erand.New(erand.NewSource(seed)),
	}
	e.Reset()
	return e, nil
}

// Seed resets the random source of the environment. It does not redraw
// the true values.
func (e *Environment) Seed(seed uint64) {
	e.rand.Seed(seed)
}

// Reset redraws every true value independently from Normal(Mu, Sigma)
func (e *Environment) Reset() {
	initial := distuv.Normal{Mu: e.config.Mu, Sigma: e.config.Sigma, Src: e.rand}
	for i := range e.trueValues {
		if e.config.Means != nil {
			initial.Mu = e.config.Means[i]
		}
		e.trueValues[i] = initial.Rand()
	}
}

// SampleReward draws a reward for the action and then lets every true
// value random walk. The walk is applied on every call; with a zero drift
// it leaves the values unchanged.
func (e *Environment) SampleReward(action int) (float64, error) {
	if action < 0 || action >= len(e.trueValues) {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidActionIndex, action, len(e.trueValues))
	}
	reward := distuv.Normal{Mu: e.trueValues[action], Sigma: e.config.NoiseStdDev, Src: e.rand}.Rand()

	drift := distuv.Normal{Mu: 0, Sigma: e.config.DriftStdDev, Src: e.rand}
	for i := range e.trueValues {
		e.trueValues[i] += drift.Rand()
	}
	return reward, nil
}

// OptimalActions returns the arms currently tied for the largest true
// value in ascending order. The result is never empty.
func (e *Environment) OptimalActions() []int {
	return policies.MaxIndices(e.trueValues)
}

func (e *Environment) IsOptimal(action int) bool {
	for _, a := range e.OptimalActions() {
		if a == action {
			return true
		}
	}
	return false
}

// SetTrueValues overwrites the true values, e.g. to pin a known problem
// instance. The length has to match K.
func (e *Environment) SetTrueValues(values []float64) error {
	if len(values) != len(e.trueValues) {
		return fmt.Errorf("%w: %d true values for k=%d", ErrInvalidConfig, len(values), len(e.trueValues))
	}
	copy(e.trueValues, values)
	return nil
}

func (e *Environment) TrueValues() []float64 {
	return util.CopyFloatSlice(e.trueValues)
}

func (e *Environment) K() int {
	return e.config.K
}

func (e *Environment) Config() EnvironmentConfig {
	return e.config
}
