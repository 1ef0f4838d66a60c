package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/memo/internal/app"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <location>",
		Short: "Show an artifact's provenance and value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, err := cmd.Flags().GetBool("json")
			if err != nil {
				return err
			}

			opts := app.InspectOptions{
				JSON:   asJSON,
				Styled: styledOutput(),
			}
			return c.app.Inspect(cmd.Context(), args[0], opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().Bool("json", false, "Print the raw envelope as JSON")

	return cmd
}
