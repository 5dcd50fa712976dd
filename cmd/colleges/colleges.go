// Package colleges implements the command-line interface for managing the
// college catalog: listing tracked colleges and seeding the catalog from a
// conferences file.
package colleges

import (
	"github.com/spf13/cobra"
)

// Command returns the colleges command with its subcommands.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colleges",
		Short: "Manage the college catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(listCommand())
	cmd.AddCommand(seedCommand())

	return cmd
}
