package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zeu5/bandit-testbed/testbed"
)

func StationaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stationary",
		Short: "Compare epsilon-greedy, UCB and softmax on a stationary testbed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmp, err := testbed.PrepareStationaryComparison(flags)
			if err != nil {
				return err
			}
			return runComparison(cmd.OutOrStdout(), cmp)
		},
	}
}
