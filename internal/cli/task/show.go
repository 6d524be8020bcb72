package task

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/doable/internal/cli"
	"github.com/thenoetrevino/doable/internal/cli/styles"
	"github.com/thenoetrevino/doable/internal/models"
)

const timeLayout = "Jan 2, 2006 3:04 PM"

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task_id>",
		Short: "Show task details",
		Long:  "Display all details of a task. The description is rendered as markdown.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	taskID, err := cli.ParseID("task", args[0])
	if err != nil {
		return formatter.FailWithSuggestion("INVALID_TASK_ID", err, "Usage: doable task show <id>")
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

	task, err := cliInstance.App.TaskService.GetTask(ctx, taskID)
	if err != nil {
		return formatter.Fail("TASK_NOT_FOUND", err)
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

	workspaceName := fmt.Sprintf("#%d", task.WorkspaceID)
	if ws, err := cliInstance.App.WorkspaceService.GetWorkspace(ctx, task.WorkspaceID); err == nil {
		workspaceName = ws.Name
	}

	styles.Init(cliInstance.ColorScheme())
	card, err := renderTask(task, workspaceName)
	if err != nil {
		return formatter.Fail("RENDER_ERROR", err)
	}
	fmt.Println(card)
	return nil
}

// renderTask builds the human-readable card for a task
func renderTask(task *models.Task, workspaceName string) (string, error) {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d: %s", task.ID, task.Text)))
	content.WriteString("\n\n")

	status := styles.ActiveStyle.Render(string(task.Status))
	if task.IsDone() {
		status = styles.DoneStyle.Strikethrough(false).Render(string(task.Status))
	}
	fmt.Fprintf(&content, "%s %s  %s %s\n",
		styles.LabelStyle.Render("Status:"), status,
		styles.LabelStyle.Render("Workspace:"), styles.ValueStyle.Render(workspaceName))

	fmt.Fprintf(&content, "%s %s\n",
		styles.LabelStyle.Render("Created:"),
		styles.SubtitleStyle.Render(task.CreatedAt.Format(timeLayout)))
	if task.CompletedAt != nil {
		fmt.Fprintf(&content, "%s %s\n",
			styles.LabelStyle.Render("Completed:"),
			styles.SubtitleStyle.Render(task.CompletedAt.Format(timeLayout)))
	}

	if strings.TrimSpace(task.Description) != "" {
		content.WriteString(styles.SectionStyle.Render("Description"))
		content.WriteString("\n")

		rendered, err := renderMarkdown(task.Description, styles.CardWidth-6)
		if err != nil {
			return "", err
		}
		content.WriteString(strings.TrimRight(rendered, "\n"))
	}

	return styles.RenderCard(content.String()), nil
}

// renderMarkdown renders a task description with glamour
func renderMarkdown(md string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render description: %w", err)
	}
	return out, nil
}
