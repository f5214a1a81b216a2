package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func TestEnvironmentConfigValidation(t *testing.T) {
	bad := []EnvironmentConfig{
		{K: 0, Sigma: 1, NoiseStdDev: 1},
		{K: 3, Sigma: -1, NoiseStdDev: 1},
		{K: 3, Sigma: 1, NoiseStdDev: -0.5},
		{K: 3, Sigma: 1, NoiseStdDev: 1, DriftStdDev: -0.01},
		{K: 3, Sigma: 1, NoiseStdDev: 1, Means: []float64{1, 2}},
	}
	for _, c := range bad {
		_, err := NewEnvironment(c, 1)
		assert.ErrorIs(t, err, ErrInvalidConfig, "%+v", c)
	}

	env, err := NewEnvironment(DefaultEnvironmentConfig(), 1)
	require.NoError(t, err)
	assert.Equal(t, 10, env.K())
	assert.Len(t, env.TrueValues(), 10)
	assert.True(t, env.Config().Stationary())
}

func TestOptimalActionsContainsMaximum(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		env, err := NewEnvironment(EnvironmentConfig{K: int(seed%7) + 1, Sigma: 1, NoiseStdDev: 1, DriftStdDev: 0.1}, seed)
		require.NoError(t, err)
		for i := 0; i < 20; i++ {
			optimal := env.OptimalActions()
			require.NotEmpty(t, optimal)
			values := env.TrueValues()
			best := floats.Max(values)
			for _, a := range optimal {
				require.True(t, a >= 0 && a < env.K())
				assert.Equal(t, best, values[a])
			}
			assert.Contains(t, optimal, floats.MaxIdx(values))

			_, err := env.SampleReward(i % env.K())
			require.NoError(t, err)
		}
	}
}

func TestOptimalActionsTies(t *testing.T) {
	env, err := NewEnvironment(EnvironmentConfig{K: 4, Sigma: 1, NoiseStdDev: 1}, 3)
	require.NoError(t, err)
	require.NoError(t, env.SetTrueValues([]float64{0.5, 2, -1, 2}))
	assert.Equal(t, []int{1, 3}, env.OptimalActions())
	assert.True(t, env.IsOptimal(3))
	assert.False(t, env.IsOptimal(0))

	assert.ErrorIs(t, env.SetTrueValues([]float64{1}), ErrInvalidConfig)
}

func TestSampleRewardOutOfRange(t *testing.T) {
	env, err := NewEnvironment(EnvironmentConfig{K: 3, Sigma: 1, NoiseStdDev: 1}, 4)
	require.NoError(t, err)
	for _, a := range []int{-1, 3, 100} {
		_, err := env.SampleReward(a)
		assert.ErrorIs(t, err, ErrInvalidActionIndex)
	}
}

func TestSampleRewardDistribution(t *testing.T) {
	env, err := NewEnvironment(EnvironmentConfig{K: 2, Means: []float64{3, -1}, Sigma: 0, NoiseStdDev: 2}, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, -1}, env.TrueValues())

	rewards := make([]float64, 20000)
	for i := range rewards {
		rewards[i], err = env.SampleReward(0)
		require.NoError(t, err)
	}
	mean, std := stat.MeanStdDev(rewards, nil)
	assert.InDelta(t, 3, mean, 0.05)
	assert.InDelta(t, 2, std, 0.05)
	// stationary: true values untouched by sampling
	assert.Equal(t, []float64{3, -1}, env.TrueValues())
}

func TestDeterministicRewards(t *testing.T) {
	env, err := NewEnvironment(EnvironmentConfig{K: 2, Means: []float64{1, 0}}, 6)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		r, err := env.SampleReward(0)
		require.NoError(t, err)
		assert.Equal(t, 1.0, r)
	}
}

func TestDriftMovesTrueValues(t *testing.T) {
	env, err := NewEnvironment(EnvironmentConfig{K: 5, Sigma: 1, NoiseStdDev: 1, DriftStdDev: 0.1}, 7)
	require.NoError(t, err)
	before := env.TrueValues()
	_, err = env.SampleReward(2)
	require.NoError(t, err)
	after := env.TrueValues()
	for i := range before {
		assert.NotEqual(t, before[i], after[i], "arm %d did not drift", i)
	}

	// the walk accumulates: variance of the increments over many steps
	increments := make([]float64, 0, 5000)
	for i := 0; i < 1000; i++ {
		prev := env.TrueValues()
		_, err = env.SampleReward(0)
		require.NoError(t, err)
		for j, v := range env.TrueValues() {
			increments = append(increments, v-prev[j])
		}
	}
	mean, std := stat.MeanStdDev(increments, nil)
	assert.InDelta(t, 0, mean, 0.01)
	assert.InDelta(t, 0.1, std, 0.01)
}

func TestResetDrawsFromInitialDistribution(t *testing.T) {
	env, err := NewEnvironment(EnvironmentConfig{K: 10, Mu: 4, Sigma: 0.5, NoiseStdDev: 1}, 8)
	require.NoError(t, err)
	values := make([]float64, 0, 20000)
	for i := 0; i < 2000; i++ {
		env.Reset()
		values = append(values, env.TrueValues()...)
	}
	mean, std := stat.MeanStdDev(values, nil)
	assert.InDelta(t, 4, mean, 0.02)
	assert.InDelta(t, 0.5, std, 0.02)
}

func TestEnvironmentSeedReproducible(t *testing.T) {
	a, err := NewEnvironment(DefaultEnvironmentConfig(), 1)
	require.NoError(t, err)
	b, err := NewEnvironment(DefaultEnvironmentConfig(), 2)
	require.NoError(t, err)

	a.Seed(42)
	a.Reset()
	b.Seed(42)
	b.Reset()
	assert.Equal(t, a.TrueValues(), b.TrueValues())

	ra, err := a.SampleReward(3)
	require.NoError(t, err)
	rb, err := b.SampleReward(3)
	require.NoError(t, err)
	assert.Equal(t, ra, rb)
}
