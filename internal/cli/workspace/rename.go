package workspace

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/doable/internal/cli"
)

// RenameCmd returns the workspace rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename a workspace",
		Long: `Rename a workspace. The new name must not be taken.

Examples:
  doable workspace rename --id=2 --name="Personal"
`,
		RunE: runRename,
	}

	// Required flags
	cmd.Flags().Int("id", 0, "Workspace ID (required)")
	cmd.Flags().String("name", "", "New workspace name (required)")
	for _, name := range []string{"id", "name"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, _ := cmd.Flags().GetInt("id")
	name, _ := cmd.Flags().GetString("name")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}()

	if err := cliInstance.App.WorkspaceService.RenameWorkspace(ctx, id, name); err != nil {
		return formatter.Fail("WORKSPACE_RENAME_ERROR", err)
	}

	ws, err := cliInstance.App.WorkspaceService.GetWorkspace(ctx, id)
	if err != nil {
		return formatter.Fail("WORKSPACE_FETCH_ERROR", err)
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":   true,
			"workspace": ws,
		})
	}

	fmt.Printf("✓ Workspace %d renamed to '%s'\n", ws.ID, ws.Name)
	return nil
}
