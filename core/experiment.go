package core

import (
	"context"
	"fmt"
	"io"

	"github.com/zeu5/bandit-testbed/policies"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// AgentSpec describes an agent to be constructed for an experiment
type AgentSpec struct {
	Name     string
	Policy   policies.Policy
	StepSize StepSize
}

// Experiment is one problem setting together with the agents compared on it
type Experiment struct {
	Name        string
	Environment EnvironmentConfig
	Agents      []AgentSpec
}

// Comparator consumes the aggregated result of an experiment
type Comparator interface {
	Compare(experiment string, result *Result) error
}

type RunConfig struct {
	Timesteps int
	Runs      int
	Seed      uint64
	Writer    io.Writer
}

type Comparison struct {
	Experiments []*Experiment
	Comparators map[string]Comparator
}

func NewComparison() *Comparison {
	return &Comparison{
		Experiments: make([]*Experiment, 0),
		Comparators: make(map[string]Comparator),
	}
}

func (c *Comparison) AddExperiment(e *Experiment) {
	c.Experiments = append(c.Experiments, e)
}

func (c *Comparison) AddComparator(name string, cmp Comparator) {
	c.Comparators[name] = cmp
}

// Build constructs the environment and the agents of the experiment.
// Seeds are placeholders, the runner reseeds everything per run.
func (e *Experiment) Build(seed uint64) (*Environment, []*Agent, error) {
	env, err := NewEnvironment(e.Environment, seed)
	if err != nil {
		return nil, nil, fmt.Errorf("experiment %s: %w", e.Name, err)
	}
	agents := make([]*Agent, len(e.Agents))
	for i, spec := range e.Agents {
		a, err := NewAgent(spec.Name, spec.Policy, env, spec.StepSize, seed+uint64(i)+1)
		if err != nil {
			return nil, nil, fmt.Errorf("experiment %s: %w", e.Name, err)
		}
		agents[i] = a
	}
	return env, agents, nil
}

// Run runs every experiment in order and hands each result to all
// comparators. It returns the results keyed by experiment name.
func (c *Comparison) Run(ctx context.Context, rConfig *RunConfig) (map[string]*Result, error) {
	comparatorNames := maps.Keys(c.Comparators)
	slices.Sort(comparatorNames)

	results := make(map[string]*Result)
	for _, e := range c.Experiments {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		env, agents, err := e.Build(rConfig.Seed)
		if err != nil {
			return results, err
		}
		runner := NewRunner(env, agents, RunnerConfig{
			Name:   e.Name,
			Seed:   rConfig.Seed,
			Writer: rConfig.Writer,
		})
		result, err := runner.PerformRuns(ctx, rConfig.Timesteps, rConfig.Runs)
		if err != nil {
			return results, fmt.Errorf("experiment %s: %w", e.Name, err)
		}
		results[e.Name] = result

		for _, name := range comparatorNames {
			if err := c.Comparators[name].Compare(e.Name, result); err != nil {
				return results, fmt.Errorf("comparator %s on %s: %w", name, e.Name, err)
			}
		}
	}
	return results, nil
}
