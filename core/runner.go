package core

import (
	"context"
	"fmt"
	"io"

	erand "golang.org/x/exp/rand"
)

type RunnerConfig struct {
	// Name labels the progress output
	Name string
	// Seed drives the per run seeds of the environment and every agent
	Seed   uint64
	Writer io.Writer
}

// Runner plays a set of agents against a shared environment for many
// independent runs and averages what they observed
type Runner struct {
	env    *Environment
	agents []*Agent
	config RunnerConfig
}

func NewRunner(env *Environment, agents []*Agent, config RunnerConfig) *Runner {
	if config.Writer == nil {
		config.Writer = io.Discard
	}
	return &Runner{
		env:    env,
		agents: agents,
		config: config,
	}
}

// PerformRuns executes runs independent runs of timesteps steps each.
// Every run starts by resetting the environment once, so all agents face
// the same problem instance, and by resetting every agent. The first error
// aborts the whole batch.
func (r *Runner) PerformRuns(ctx context.Context, timesteps, runs int) (*Result, error) {
	if timesteps < 1 || runs < 1 {
		return nil, fmt.Errorf("%w: timesteps=%d runs=%d must be positive", ErrInvalidConfig, timesteps, runs)
	}
	if r.env == nil || len(r.agents) == 0 {
		return nil, fmt.Errorf("%w: runner needs an environment and at least one agent", ErrInvalidConfig)
	}
	for _, a := range r.agents {
		if len(a.estimates) != r.env.K() {
			return nil, fmt.Errorf("%w: agent %q has %d arms, environment has %d", ErrInvalidConfig, a.name, len(a.estimates), r.env.K())
		}
	}

	names := make([]string, len(r.agents))
	for i, a := range r.agents {
		names[i] = a.Name()
	}

	seeds := erand.New(erand.NewSource(r.config.Seed))
	acc := newAccumulator(len(r.agents), timesteps)
	for run := 0; run < runs; run++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run %d: %w", run, err)
		}
		fmt.Fprintf(r.config.Writer, "Experiment: %s, Run %d/%d, Timesteps: %d, Agents: %d\n", r.config.Name, run+1, runs, timesteps, len(r.agents))

		r.env.Seed(seeds.Uint64())
		r.env.Reset()
		for _, a := range r.agents {
			a.Seed(seeds.Uint64())
			a.Reset()
		}

		trace, err := r.run(ctx, run, timesteps)
		if err != nil {
			fmt.Fprintf(r.config.Writer, "Experiment: %s, Run %d, Error: %v\n", r.config.Name, run+1, err)
			return nil, err
		}
		if err := acc.add(trace); err != nil {
			return nil, fmt.Errorf("run %d: %w", run, err)
		}
	}
	return acc.result(names), nil
}

func (r *Runner) run(ctx context.Context, run, timesteps int) (*Trace, error) {
	trace := NewTrace(run, timesteps*len(r.agents))
	for step := 0; step < timesteps; step++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run %d, step %d: %w", run, step, err)
		}
		for i, a := range r.agents {
			action, err := a.SelectAction()
			if err != nil {
				return nil, fmt.Errorf("run %d, step %d, agent %q: %w", run, step, a.name, err)
			}
			optimal := r.env.IsOptimal(action)
			reward, err := r.env.SampleReward(action)
			if err != nil {
				return nil, fmt.Errorf("run %d, step %d, agent %q: %w", run, step, a.name, err)
			}
			trace.AddRecord(Record{
				Agent:   i,
				Run:     run,
				Step:    step,
				Action:  action,
				Reward:  reward,
				Optimal: optimal,
			})
			if err := a.Update(action, reward); err != nil {
				return nil, fmt.Errorf("run %d, step %d: %w", run, step, err)
			}
		}
	}
	return trace, nil
}
