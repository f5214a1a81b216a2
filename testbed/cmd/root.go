package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zeu5/bandit-testbed/testbed/common"
)

func RootCommand() *cobra.Command {
	flags = common.DefaultFlags()
	cmd := &cobra.Command{
		Use:           "bandit-testbed",
		Short:         "Compare action selection policies on the k-armed bandit testbed",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			UpdateFlags()
			return flags.Record()
		},
	}
	AddFlags(cmd)

	cmd.AddCommand(
		StationaryCommand(),
		NonStationaryCommand(),
		CustomCommand(),
	)

	return cmd
}
