package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/nodepack/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove orphaned staging directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, _ := cmd.Flags().GetBool("state")
			return c.app.Clean(cmd.Context(), app.CleanOptions{State: state})
		},
	}

	cmd.Flags().Bool("state", false, "Also remove the build manifest")

	return cmd
}
