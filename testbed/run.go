// Package testbed prepares the comparisons of the classic 10-armed
// testbed: policies on a stationary problem and step size rules on
// random walk problems
package testbed

import (
	"fmt"
	"strings"

	"github.com/zeu5/bandit-testbed/core"
	"github.com/zeu5/bandit-testbed/policies"
	"github.com/zeu5/bandit-testbed/testbed/common"
)

func environmentConfig(flags *common.Flags, drift float64) core.EnvironmentConfig {
	return core.EnvironmentConfig{
		K:           flags.Arms,
		Mu:          flags.Mu,
		Sigma:       flags.Sigma,
		NoiseStdDev: flags.Noise,
		DriftStdDev: drift,
	}
}

func agentSpec(policy policies.Policy, step core.StepSize) core.AgentSpec {
	return core.AgentSpec{
		Name:     fmt.Sprintf("%s, %s", policy, step),
		Policy:   policy,
		StepSize: step,
	}
}

// ParsePolicy maps a policy name given on the command line to a policy
// configured from the flags
func ParsePolicy(name string, flags *common.Flags) (policies.Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "egreedy", "epsilon-greedy", "e-greedy":
		return policies.NewEpsilonGreedy(flags.Epsilon)
	case "greedy":
		return policies.NewEpsilonGreedy(0)
	case "ucb":
		return policies.NewUCB(flags.UCBConstant)
	case "softmax":
		return policies.NewSoftmax(), nil
	}
	return policies.Policy{}, fmt.Errorf("%w: %q", policies.ErrUnknownKind, name)
}

// PrepareStationaryComparison compares epsilon-greedy against UCB (and
// softmax) with sample average estimates on a stationary testbed
func PrepareStationaryComparison(flags *common.Flags) (*core.Comparison, error) {
	eGreedy, err := policies.NewEpsilonGreedy(flags.Epsilon)
	if err != nil {
		return nil, err
	}
	ucb, err := policies.NewUCB(flags.UCBConstant)
	if err != nil {
		return nil, err
	}

	cmp := core.NewComparison()
	cmp.AddExperiment(&core.Experiment{
		Name:        "stationary",
		Environment: environmentConfig(flags, 0),
		Agents: []core.AgentSpec{
			agentSpec(eGreedy, core.SampleAverage()),
			agentSpec(ucb, core.SampleAverage()),
			agentSpec(policies.NewSoftmax(), core.SampleAverage()),
		},
	})
	return cmp, nil
}

// PrepareNonStationaryComparison compares sample averaging against a
// constant step size, both epsilon-greedy, on a slowly and on a quickly
// drifting testbed
func PrepareNonStationaryComparison(flags *common.Flags) (*core.Comparison, error) {
	eGreedy, err := policies.NewEpsilonGreedy(flags.Epsilon)
	if err != nil {
		return nil, err
	}
	constant, err := core.ConstantStep(flags.StepSize)
	if err != nil {
		return nil, err
	}

	cmp := core.NewComparison()
	for _, drift := range []struct {
		name  string
		value float64
	}{
		{"nonstationary-small", flags.Drift},
		{"nonstationary-large", flags.LargeDrift},
	} {
		cmp.AddExperiment(&core.Experiment{
			Name:        drift.name,
			Environment: environmentConfig(flags, drift.value),
			Agents: []core.AgentSpec{
				agentSpec(eGreedy, core.SampleAverage()),
				agentSpec(eGreedy, constant),
			},
		})
	}
	return cmp, nil
}

// PrepareCustomComparison builds one experiment with an agent for every
// policy named in the flags
func PrepareCustomComparison(flags *common.Flags) (*core.Comparison, error) {
	if len(flags.Policies) == 0 {
		return nil, fmt.Errorf("%w: no policies given", core.ErrInvalidConfig)
	}
	step := core.SampleAverage()
	if flags.Constant {
		var err error
		if step, err = core.ConstantStep(flags.StepSize); err != nil {
			return nil, err
		}
	}

	agents := make([]core.AgentSpec, 0, len(flags.Policies))
	for _, name := range flags.Policies {
		policy, err := ParsePolicy(name, flags)
		if err != nil {
			return nil, err
		}
		agents = append(agents, agentSpec(policy, step))
	}

	cmp := core.NewComparison()
	cmp.AddExperiment(&core.Experiment{
		Name:        "custom",
		Environment: environmentConfig(flags, flags.Drift),
		Agents:      agents,
	})
	return cmp, nil
}
