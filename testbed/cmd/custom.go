package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zeu5/bandit-testbed/testbed"
)

func CustomCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "custom",
		Short: "Compare the policies given by --policies on one testbed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmp, err := testbed.PrepareCustomComparison(flags)
			if err != nil {
				return err
			}
			return runComparison(cmd.OutOrStdout(), cmp)
		},
	}
}
