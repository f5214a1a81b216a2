package testbed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeu5/bandit-testbed/core"
	"github.com/zeu5/bandit-testbed/policies"
	"github.com/zeu5/bandit-testbed/testbed/common"
)

func TestParsePolicy(t *testing.T) {
	flags := common.DefaultFlags()

	p, err := ParsePolicy("egreedy", flags)
	require.NoError(t, err)
	assert.Equal(t, policies.EpsilonGreedy, p.Kind)
	assert.Equal(t, 0.01, p.Epsilon)

	p, err = ParsePolicy(" UCB ", flags)
	require.NoError(t, err)
	assert.Equal(t, policies.UCB, p.Kind)
	assert.Equal(t, 2.0, p.C)

	p, err = ParsePolicy("greedy", flags)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Epsilon)

	p, err = ParsePolicy("softmax", flags)
	require.NoError(t, err)
	assert.Equal(t, policies.Softmax, p.Kind)

	_, err = ParsePolicy("thompson", flags)
	assert.ErrorIs(t, err, policies.ErrUnknownKind)
}

func TestStationaryComparison(t *testing.T) {
	cmp, err := PrepareStationaryComparison(common.DefaultFlags())
	require.NoError(t, err)
	require.Len(t, cmp.Experiments, 1)

	e := cmp.Experiments[0]
	assert.True(t, e.Environment.Stationary())
	assert.Equal(t, 10, e.Environment.K)
	require.Len(t, e.Agents, 3)
	assert.Equal(t, policies.EpsilonGreedy, e.Agents[0].Policy.Kind)
	assert.Equal(t, policies.UCB, e.Agents[1].Policy.Kind)
	assert.Equal(t, policies.Softmax, e.Agents[2].Policy.Kind)
	for _, a := range e.Agents {
		assert.Equal(t, core.SampleAverage(), a.StepSize)
	}
}

func TestNonStationaryComparison(t *testing.T) {
	flags := common.DefaultFlags()
	cmp, err := PrepareNonStationaryComparison(flags)
	require.NoError(t, err)
	require.Len(t, cmp.Experiments, 2)

	assert.Equal(t, flags.Drift, cmp.Experiments[0].Environment.DriftStdDev)
	assert.Equal(t, flags.LargeDrift, cmp.Experiments[1].Environment.DriftStdDev)
	for _, e := range cmp.Experiments {
		require.Len(t, e.Agents, 2)
		assert.Equal(t, core.SampleAverageStep, e.Agents[0].StepSize.Kind)
		assert.Equal(t, core.ConstantStepSize, e.Agents[1].StepSize.Kind)
		assert.Equal(t, 0.1, e.Agents[1].StepSize.Alpha)
		assert.NotEqual(t, e.Agents[0].Name, e.Agents[1].Name)
	}
}

func TestComparisonInvalidFlags(t *testing.T) {
	flags := common.DefaultFlags()
	flags.Epsilon = 1.5
	_, err := PrepareStationaryComparison(flags)
	assert.ErrorIs(t, err, policies.ErrInvalidParameter)

	flags = common.DefaultFlags()
	flags.StepSize = 0
	_, err = PrepareNonStationaryComparison(flags)
	assert.Error(t, err)

	flags = common.DefaultFlags()
	flags.Policies = nil
	_, err = PrepareCustomComparison(flags)
	assert.ErrorIs(t, err, core.ErrInvalidConfig)
}

func TestCustomComparisonRuns(t *testing.T) {
	flags := common.DefaultFlags()
	flags.Policies = []string{"greedy", "egreedy", "ucb", "softmax"}
	flags.Constant = true
	cmp, err := PrepareCustomComparison(flags)
	require.NoError(t, err)

	results, err := cmp.Run(context.Background(), &core.RunConfig{
		Timesteps: 50,
		Runs:      3,
		Seed:      11,
	})
	require.NoError(t, err)
	require.Contains(t, results, "custom")
	r := results["custom"]
	assert.Len(t, r.Names, 4)
	assert.Len(t, r.Rewards[0], 50)
}
