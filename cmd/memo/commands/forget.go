package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newForgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forget <location>...",
		Short: "Delete artifacts so the next run recomputes them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Forget(cmd.Context(), args...)
		},
	}
}
