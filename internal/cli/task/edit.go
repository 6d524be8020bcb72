package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/doable/internal/cli"
)

// EditCmd returns the task edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <task_id>",
		Short: "Change the text or description of a task",
		Long: `Change the text and/or description of a task. Timestamps and status
are left untouched.

Examples:
  doable task edit 42 --text="Buy oat milk"
  doable task edit 42 --description=""
`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().String("text", "", "New task text")
	cmd.Flags().String("description", "", "New task description (markdown)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	text, _ := cmd.Flags().GetString("text")
	description, _ := cmd.Flags().GetString("description")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	textChanged := cmd.Flags().Changed("text")
	descriptionChanged := cmd.Flags().Changed("description")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	taskID, err := cli.ParseID("task", args[0])
	if err != nil {
		return formatter.Fail("INVALID_TASK_ID", err)
	}
	if !textChanged && !descriptionChanged {
		return formatter.FailWithSuggestion("NO_CHANGES",
			fmt.Errorf("%w: nothing to update", cli.ErrInvalidArgument),
			"Pass --text and/or --description")
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

	if _, err := cliInstance.App.TaskService.GetTask(ctx, taskID); err != nil {
		return formatter.Fail("TASK_NOT_FOUND", err)
	}

	var errs []error
	if textChanged {
		errs = append(errs, cliInstance.App.TaskService.SetTaskText(ctx, taskID, text))
	}
	if descriptionChanged {
		errs = append(errs, cliInstance.App.TaskService.SetTaskDescription(ctx, taskID, description))
	}
	if err := errors.Join(errs...); err != nil {
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

	fmt.Printf("✓ Task %d updated\n", task.ID)
	return nil
}
