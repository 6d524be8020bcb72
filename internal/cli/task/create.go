package task

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/doable/internal/cli"
	taskservice "github.com/thenoetrevino/doable/internal/services/task"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new active task in a workspace.

Examples:
  # Simple task (human-readable output)
  doable task create --workspace=1 --text="Buy milk"

  # JSON output for agents
  doable task create --workspace=1 --text="Buy milk" --json

  # Quiet mode for bash capture
  TASK_ID=$(doable task create --workspace=1 --text="Buy milk" --quiet)

  # With a markdown description
  doable task create --workspace=1 --text="Release" \
    --description="- tag\n- publish notes"
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().Int("workspace", 0, "Workspace ID (required)")
	cmd.Flags().String("text", "", "Task text (required)")
	for _, name := range []string{"workspace", "text"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	// Optional flags
	cmd.Flags().String("description", "", "Task description (markdown)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	workspaceID, _ := cmd.Flags().GetInt("workspace")
	text, _ := cmd.Flags().GetString("text")
	description, _ := cmd.Flags().GetString("description")
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

	// The workspace must exist; storage does not enforce it
	if _, err := cliInstance.App.WorkspaceService.GetWorkspace(ctx, workspaceID); err != nil {
		return formatter.FailWithSuggestion("WORKSPACE_NOT_FOUND", err,
			"Use 'doable workspace list' to see available workspaces")
	}

	task, err := cliInstance.App.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
		Text:        text,
		Description: description,
		WorkspaceID: workspaceID,
	})
	if err != nil {
		return formatter.Fail("TASK_CREATE_ERROR", err)
	}

	if quietMode {
		fmt.Printf("%d\n", task.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"task":    task,
		})
	}

	fmt.Printf("✓ Task '%s' created successfully (ID: %d)\n", task.Text, task.ID)
	return nil
}
