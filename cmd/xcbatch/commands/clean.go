package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/xcbatch/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the build log directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts app.CleanOptions
			opts.ConfigPath, _ = cmd.Flags().GetString("config")
			opts.LogDir, _ = cmd.Flags().GetString("log-dir")

			return c.app.Clean(cmd.Context(), opts)
		},
	}
}
