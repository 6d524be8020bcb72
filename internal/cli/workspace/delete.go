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

// DeleteCmd returns the workspace delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a workspace and its tasks",
		Long:  "Delete a workspace by ID together with all of its tasks (requires confirmation unless --force or --quiet).",
		RunE:  runDelete,
	}

	// Required flags
	cmd.Flags().Int("id", 0, "Workspace ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().Bool("force", false, "Skip confirmation")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, _ := cmd.Flags().GetInt("id")
	force, _ := cmd.Flags().GetBool("force")
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

	// Get workspace details for confirmation
	ws, err := cliInstance.App.WorkspaceService.GetWorkspace(ctx, id)
	if err != nil {
		return formatter.Fail("WORKSPACE_NOT_FOUND", err)
	}

	// Ask for confirmation unless force, quiet or JSON mode
	if !force && !quietMode && !jsonOutput {
		count, err := cliInstance.App.WorkspaceService.TaskCount(ctx, id)
		if err != nil {
			return formatter.Fail("WORKSPACE_FETCH_ERROR", err)
		}
		prompt := fmt.Sprintf("Delete workspace #%d '%s' and its %d tasks?", ws.ID, ws.Name, count)
		if !cli.Confirm(cmd.OutOrStdout(), cmd.InOrStdin(), prompt) {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.WorkspaceService.DeleteWorkspace(ctx, id); err != nil {
		return formatter.Fail("DELETE_ERROR", err)
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":      true,
			"workspace_id": id,
		})
	}

	fmt.Printf("✓ Workspace %d deleted successfully\n", id)
	return nil
}
