package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report whether a change set would trigger a sync",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reimported, err := cmd.Flags().GetStringSlice("reimported")
			if err != nil {
				return err
			}
			if c.app.CheckNeeded(args, reimported) {
				fmt.Fprintln(cmd.OutOrStdout(), "sync needed")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "up to date")
			}
			return nil
		},
	}
	cmd.Flags().StringSlice("reimported", nil, "Paths reprocessed by the asset pipeline")
	return cmd
}
