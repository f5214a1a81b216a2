package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zeu5/bandit-testbed/testbed/common"
)

var (
	flags    *common.Flags = common.DefaultFlags()
	savePath string

	runs      int
	timesteps int
	seed      uint64

	arms       int
	mu         float64
	sigma      float64
	noise      float64
	drift      float64
	largeDrift float64

	policyNames []string
	epsilon     float64
	ucbConstant float64
	stepSize    float64
	constant    bool

	summaryWindow int
	noChart       bool
	quiet         bool
)

func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&savePath, "save-path", flags.SavePath, "Path to save results")

	cmd.PersistentFlags().IntVar(&runs, "runs", flags.Runs, "Number of independent runs")
	cmd.PersistentFlags().IntVar(&timesteps, "timesteps", flags.Timesteps, "Number of timesteps per run")
	cmd.PersistentFlags().Uint64Var(&seed, "seed", flags.Seed, "Master random seed")

	cmd.PersistentFlags().IntVar(&arms, "arms", flags.Arms, "Number of arms")
	cmd.PersistentFlags().Float64Var(&mu, "mu", flags.Mu, "Mean of the initial true values")
	cmd.PersistentFlags().Float64Var(&sigma, "sigma", flags.Sigma, "Standard deviation of the initial true values")
	cmd.PersistentFlags().Float64Var(&noise, "noise", flags.Noise, "Standard deviation of the reward noise")
	cmd.PersistentFlags().Float64Var(&drift, "drift", flags.Drift, "Standard deviation of the random walk of the true values")
	cmd.PersistentFlags().Float64Var(&largeDrift, "large-drift", flags.LargeDrift, "Standard deviation of the faster random walk")

	cmd.PersistentFlags().StringSliceVar(&policyNames, "policies", flags.Policies, "Policies to compare (egreedy, greedy, ucb, softmax)")
	cmd.PersistentFlags().Float64Var(&epsilon, "epsilon", flags.Epsilon, "Exploration rate of epsilon-greedy")
	cmd.PersistentFlags().Float64Var(&ucbConstant, "ucb-c", flags.UCBConstant, "Exploration constant of UCB")
	cmd.PersistentFlags().Float64Var(&stepSize, "step-size", flags.StepSize, "Constant step size")
	cmd.PersistentFlags().BoolVar(&constant, "constant", flags.Constant, "Use the constant step size instead of sample averages")

	cmd.PersistentFlags().IntVar(&summaryWindow, "summary-window", flags.SummaryWindow, "Number of final timesteps averaged in the summary")
	cmd.PersistentFlags().BoolVar(&noChart, "no-chart", flags.NoChart, "Do not render charts")
	cmd.PersistentFlags().BoolVar(&quiet, "quiet", flags.Quiet, "Do not print progress")
}

func UpdateFlags() {
	flags.SavePath = savePath

	flags.Runs = runs
	flags.Timesteps = timesteps
	flags.Seed = seed

	flags.Arms = arms
	flags.Mu = mu
	flags.Sigma = sigma
	flags.Noise = noise
	flags.Drift = drift
	flags.LargeDrift = largeDrift

	flags.Policies = policyNames
	flags.Epsilon = epsilon
	flags.UCBConstant = ucbConstant
	flags.StepSize = stepSize
	flags.Constant = constant

	flags.SummaryWindow = summaryWindow
	flags.NoChart = noChart
	flags.Quiet = quiet
}
