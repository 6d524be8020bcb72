package workspace

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/doable/internal/cli"
	"github.com/thenoetrevino/doable/internal/cli/styles"
)

// ListCmd returns the workspace list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all workspaces",
		Long:  "List all workspaces with the number of tasks in each.",
		RunE:  runList,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

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

	workspaces, err := cliInstance.App.WorkspaceService.ListWorkspaces(ctx)
	if err != nil {
		return formatter.Fail("WORKSPACE_FETCH_ERROR", err)
	}

	if quietMode {
		// Just print IDs (one per line)
		for _, ws := range workspaces {
			fmt.Printf("%d\n", ws.ID)
		}
		return nil
	}

	type entry struct {
		ID        int    `json:"id"`
		Name      string `json:"name"`
		TaskCount int    `json:"task_count"`
	}
	entries := make([]entry, 0, len(workspaces))
	for _, ws := range workspaces {
		count, err := cliInstance.App.WorkspaceService.TaskCount(ctx, ws.ID)
		if err != nil {
			return formatter.Fail("WORKSPACE_FETCH_ERROR", err)
		}
		entries = append(entries, entry{ID: ws.ID, Name: ws.Name, TaskCount: count})
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":    true,
			"workspaces": entries,
		})
	}

	if len(entries) == 0 {
		fmt.Println("No workspaces found")
		return nil
	}

	styles.Init(cliInstance.ColorScheme())
	fmt.Printf("Found %d workspaces:\n\n", len(entries))
	for _, e := range entries {
		fmt.Printf("  [%d] %s %s\n", e.ID, e.Name,
			styles.SubtitleStyle.Render(fmt.Sprintf("(%d tasks)", e.TaskCount)))
	}

	return nil
}
