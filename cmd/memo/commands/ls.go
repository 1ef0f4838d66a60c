package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/memo/internal/app"
)

func (c *CLI) newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls <dir>",
		Short: "List artifacts under a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := c.app.List(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return renderRows(cmd.OutOrStdout(), rows)
		},
	}
}

func renderRows(w io.Writer, rows []app.Row) error {
	width := len("LOCATION")
	for _, row := range rows {
		if len(row.Location) > width {
			width = len(row.Location)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-*s  %-10s  %-20s  %s\n", width, "LOCATION", "TOOL", "STARTED", "DURATION")
	for _, row := range rows {
		if row.Err != nil {
			fmt.Fprintf(&sb, "%-*s  invalid artifact: %s\n", width, row.Location, flatten(row.Err))
			continue
		}
		fmt.Fprintf(&sb, "%-*s  %-10s  %-20s  %s\n",
			width, row.Location, row.ToolVersion, row.StartedAt.Format(time.RFC3339), row.Duration)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// flatten folds a joined error onto one line so it fits a table cell.
func flatten(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", ": ")
}
