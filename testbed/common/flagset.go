package common

import (
	"path"

	"github.com/zeu5/bandit-testbed/util"
)

type Flags struct {
	SavePath string
	RunFlags
	EnvFlags
	AgentFlags
	SummaryWindow int
	NoChart       bool
	Quiet         bool
}

type RunFlags struct {
	Runs      int
	Timesteps int
	Seed      uint64
}

type EnvFlags struct {
	Arms       int
	Mu         float64
	Sigma      float64
	Noise      float64
	Drift      float64
	LargeDrift float64
}

type AgentFlags struct {
	Policies    []string
	Epsilon     float64
	UCBConstant float64
	StepSize    float64
	Constant    bool
}

func DefaultFlags() *Flags {
	return &Flags{
		SavePath: "results",
		RunFlags: RunFlags{
			Runs:      2000,
			Timesteps: 1000,
			Seed:      1,
		},
		EnvFlags: EnvFlags{
			Arms:       10,
			Mu:         0,
			Sigma:      1,
			Noise:      1,
			Drift:      0.01,
			LargeDrift: 0.1,
		},
		AgentFlags: AgentFlags{
			Policies:    []string{"egreedy", "ucb"},
			Epsilon:     0.01,
			UCBConstant: 2,
			StepSize:    0.1,
			Constant:    false,
		},
		SummaryWindow: 100,
		NoChart:       false,
		Quiet:         false,
	}
}

// Record saves the flags the experiment was started with next to its results
func (f *Flags) Record() error {
	return util.SaveJson(path.Join(f.SavePath, "config.json"), f)
}
