package task

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/doable/internal/cli"
	"github.com/thenoetrevino/doable/internal/models"
)

// DoneCmd returns the task done subcommand
func DoneCmd() *cobra.Command {
	return statusCmd("done", "Mark a task as done",
		`Mark a task as done and record when it was completed.

Examples:
  doable task done 42
  doable task done 42 --json
`,
		func(ctx context.Context, c *cli.CLI, id int) error {
			return c.App.TaskService.SetTaskStatus(ctx, id, models.TaskStatusDone)
		})
}

// ReopenCmd returns the task reopen subcommand
func ReopenCmd() *cobra.Command {
	return statusCmd("reopen", "Mark a task as active again",
		`Mark a task as active and clear its completion time.

Examples:
  doable task reopen 42
`,
		func(ctx context.Context, c *cli.CLI, id int) error {
			return c.App.TaskService.SetTaskStatus(ctx, id, models.TaskStatusActive)
		})
}

// ToggleCmd returns the task toggle subcommand
func ToggleCmd() *cobra.Command {
	return statusCmd("toggle", "Flip a task between active and done",
		`Flip a task between active and done.

Examples:
  doable task toggle 42 --quiet
`,
		func(ctx context.Context, c *cli.CLI, id int) error {
			_, err := c.App.TaskService.ToggleTaskStatus(ctx, id)
			return err
		})
}

type statusChange func(ctx context.Context, c *cli.CLI, id int) error

func statusCmd(use, short, long string, change statusChange) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <task_id>",
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatusChange(cmd, args, change)
		},
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runStatusChange(cmd *cobra.Command, args []string, change statusChange) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	taskID, err := cli.ParseID("task", args[0])
	if err != nil {
		return formatter.Fail("INVALID_TASK_ID", err)
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

	// Unknown ids are a silent no-op in the store; the CLI reports them
	if _, err := cliInstance.App.TaskService.GetTask(ctx, taskID); err != nil {
		return formatter.Fail("TASK_NOT_FOUND", err)
	}

	if err := change(ctx, cliInstance, taskID); err != nil {
		return formatter.Fail("TASK_UPDATE_ERROR", err)
	}

	task, err := cliInstance.App.TaskService.GetTask(ctx, taskID)
	if err != nil {
		return formatter.Fail("TASK_FETCH_ERROR", err)
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

	fmt.Printf("✓ Task %d is now %s\n", task.ID, task.Status)
	return nil
}
