package commands

import (
	"github.com/inspectwise/inspection-service/internal/sampling"
	"github.com/spf13/cobra"
)

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the sampling reference table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := sampling.Table()
			if wantJSON(cmd) {
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			return renderTable(cmd.OutOrStdout(), rows)
		},
	}
}
