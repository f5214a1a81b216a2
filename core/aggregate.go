package core

import (
	"fmt"

	"github.com/zeu5/bandit-testbed/util"
	"gonum.org/v1/gonum/floats"
)

// Result holds the learning curves of a batch of runs. Rewards[a][t] is
// the mean reward of agent a at timestep t over all runs and
// OptimalActions[a][t] the fraction of runs in which agent a picked an
// optimal arm at timestep t.
type Result struct {
	Names          []string
	Timesteps      int
	Runs           int
	Rewards        [][]float64
	OptimalActions [][]float64
}

// Final returns the mean reward and optimal action fraction of an agent
// over the last window timesteps
func (r *Result) Final(agent, window int) (reward, optimal float64) {
	if window <= 0 || window > r.Timesteps {
		window = r.Timesteps
	}
	from := r.Timesteps - window
	reward = floats.Sum(r.Rewards[agent][from:]) / float64(window)
	optimal = floats.Sum(r.OptimalActions[agent][from:]) / float64(window)
	return
}

// accumulator sums per run traces into (agent x timestep) matrices
type accumulator struct {
	runs    int
	rewards [][]float64
	optimal [][]float64

	runRewards [][]float64
	runOptimal [][]float64
}

func newAccumulator(agents, timesteps int) *accumulator {
	newMatrix := func() [][]float64 {
		m := make([][]float64, agents)
		for i := range m {
			m[i] = make([]float64, timesteps)
		}
		return m
	}
	return &accumulator{
		rewards:    newMatrix(),
		optimal:    newMatrix(),
		runRewards: newMatrix(),
		runOptimal: newMatrix(),
	}
}

func (a *accumulator) add(trace *Trace) error {
	for i := range a.runRewards {
		for t := range a.runRewards[i] {
			a.runRewards[i][t] = 0
			a.runOptimal[i][t] = 0
		}
	}
	for i := 0; i < trace.Len(); i++ {
		rec := trace.Record(i)
		if rec.Run != trace.Run() {
			return fmt.Errorf("record of run %d in the trace of run %d", rec.Run, trace.Run())
		}
		if rec.Agent < 0 || rec.Agent >= len(a.runRewards) || rec.Step < 0 || rec.Step >= len(a.runRewards[rec.Agent]) {
			return fmt.Errorf("record for agent %d step %d outside of the result shape", rec.Agent, rec.Step)
		}
		a.runRewards[rec.Agent][rec.Step] = rec.Reward
		if rec.Optimal {
			a.runOptimal[rec.Agent][rec.Step] = 1
		}
	}
	for i := range a.rewards {
		floats.Add(a.rewards[i], a.runRewards[i])
		floats.Add(a.optimal[i], a.runOptimal[i])
	}
	a.runs++
	return nil
}

func (a *accumulator) result(names []string) *Result {
	res := &Result{
		Names:          append([]string(nil), names...),
		Runs:           a.runs,
		Rewards:        util.CopyFloatMatrix(a.rewards),
		OptimalActions: util.CopyFloatMatrix(a.optimal),
	}
	for i := range res.Rewards {
		if a.runs > 1 {
			floats.Scale(1/float64(a.runs), res.Rewards[i])
			floats.Scale(1/float64(a.runs), res.OptimalActions[i])
		}
	}
	if len(a.rewards) > 0 {
		res.Timesteps = len(a.rewards[0])
	}
	return res
}
