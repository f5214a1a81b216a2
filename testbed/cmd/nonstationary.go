package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zeu5/bandit-testbed/testbed"
)

func NonStationaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "nonstationary",
		Short: "Compare sample averages against a constant step size on drifting testbeds",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// longer and fewer runs unless asked otherwise
			changed := false
			if !cmd.Flags().Changed("runs") {
				flags.Runs = 500
				changed = true
			}
			if !cmd.Flags().Changed("timesteps") {
				flags.Timesteps = 10000
				changed = true
			}
			if changed {
				return flags.Record()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmp, err := testbed.PrepareNonStationaryComparison(flags)
			if err != nil {
				return err
			}
			return runComparison(cmd.OutOrStdout(), cmp)
		},
	}
}
