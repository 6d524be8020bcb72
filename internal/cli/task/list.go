package task

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/doable/internal/cli"
	"github.com/thenoetrevino/doable/internal/cli/styles"
	"github.com/thenoetrevino/doable/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in a workspace",
		Long: `List the tasks of a workspace, newest first.

Without --status, active tasks are listed before done ones.

Examples:
  doable task list --workspace=1
  doable task list --workspace=1 --status=done --json
`,
		RunE: runList,
	}

	cmd.Flags().Int("workspace", 0, "Workspace ID (required)")
	if err := cmd.MarkFlagRequired("workspace"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("status", "", "Only list tasks with this status (active, done)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	workspaceID, _ := cmd.Flags().GetInt("workspace")
	statusFlag, _ := cmd.Flags().GetString("status")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	var status *models.TaskStatus
	if statusFlag != "" {
		parsed, err := models.ParseTaskStatus(statusFlag)
		if err != nil {
			return formatter.Fail("INVALID_STATUS", fmt.Errorf("%w: %w", cli.ErrInvalidArgument, err))
		}
		status = &parsed
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}()

	tasks, err := cliInstance.App.TaskService.ListTasks(ctx, workspaceID, status)
	if err != nil {
		return formatter.Fail("TASK_FETCH_ERROR", err)
	}

	if quietMode {
		for _, task := range tasks {
			fmt.Printf("%d\n", task.ID)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"tasks":   tasks,
		})
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	styles.Init(cliInstance.ColorScheme())
	fmt.Printf("Found %d tasks:\n\n", len(tasks))
	for _, task := range tasks {
		fmt.Println("  " + styles.RenderTaskLine(task))
	}

	return nil
}
