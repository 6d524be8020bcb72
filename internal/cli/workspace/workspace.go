// Package workspace holds all cli commands related to workspaces
//
// e.g., doable workspace ...
package workspace

import (
	"github.com/spf13/cobra"
)

// WorkspaceCmd returns the workspace parent command
func WorkspaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workspace",
		Aliases: []string{"ws"},
		Short:   "Manage workspaces",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
