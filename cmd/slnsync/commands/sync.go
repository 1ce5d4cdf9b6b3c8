package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync [paths...]",
		Short: "Regenerate the solution and project files",
		Long: "Without arguments, regenerates every descriptor. With paths, " +
			"regenerates only the descriptors implicated by those changes.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reimported, err := cmd.Flags().GetStringSlice("reimported")
			if err != nil {
				return err
			}
			if len(args) == 0 && len(reimported) == 0 {
				c.app.Sync(cmd.Context())
				return nil
			}
			c.app.SyncIfNeeded(cmd.Context(), args, reimported)
			return nil
		},
	}
	cmd.Flags().StringSlice("reimported", nil, "Paths reprocessed by the asset pipeline")
	return cmd
}
