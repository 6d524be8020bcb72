package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

const defaultWidth = 80

// View implements tea.Model
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	width := m.width
	if width == 0 {
		width = defaultWidth
	}

	var body string
	switch m.mode {
	case AddTaskMode:
		body = m.renderInputDialog(CreateBoxStyle, "New task")
	case EditTaskMode:
		body = m.renderInputDialog(EditBoxStyle, "Edit task")
	case CreateWorkspaceMode:
		body = m.renderInputDialog(CreateBoxStyle, "New workspace")
	case RenameWorkspaceMode:
		body = m.renderInputDialog(EditBoxStyle, "Rename workspace")
	case DeleteConfirmMode:
		body = m.renderDeleteConfirm()
	case DeleteWorkspaceMode:
		body = m.renderDeleteWorkspaceConfirm()
	case HelpMode:
		body = m.renderHelp()
	default:
		body = m.renderTaskList()
	}

	view.Content = lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(width),
		body,
		"",
		statusLine(m.notification, width),
	)
	return view
}

func (m Model) renderHeader(width int) string {
	if len(m.Workspaces) == 0 {
		return TitleStyle.Render("doable")
	}
	names := make([]string, len(m.Workspaces))
	for i, ws := range m.Workspaces {
		names[i] = ws.Name
	}
	return renderTabs(names, m.selectedWorkspace, width)
}

func (m Model) renderTaskList() string {
	if len(m.Workspaces) == 0 {
		return SubtleStyle.Render(fmt.Sprintf("No workspaces yet. Press %s to create one.",
			displayKey(m.Config.KeyMappings.CreateWorkspace)))
	}

	var b strings.Builder
	b.WriteString(SubtleStyle.Render(fmt.Sprintf("%d tasks · filter: %s", len(m.Tasks), m.filter)))
	b.WriteString("\n\n")

	if len(m.Tasks) == 0 {
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("Nothing here. Press %s to add a task.",
			displayKey(m.Config.KeyMappings.AddTask))))
		return b.String()
	}

	for i, task := range m.Tasks {
		box := "[ ]"
		style := TaskStyle
		if task.IsDone() {
			box = "[x]"
			style = DoneTaskStyle
		}
		if i == m.selectedTask {
			style = style.Background(SelectedTaskStyle.GetBackground()).Bold(true)
		}
		b.WriteString(style.Render(box + " " + task.Text))
		if i < len(m.Tasks)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderInputDialog(box lipgloss.Style, title string) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render(title),
		"",
		m.input.View(),
		"",
		SubtleStyle.Render("enter: save · esc: cancel"),
	)
	return box.Render(content)
}

func (m Model) renderDeleteConfirm() string {
	text := ""
	if task := m.currentTask(); task != nil {
		text = task.Text
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("Delete task?"),
		"",
		text,
		"",
		SubtleStyle.Render("y: delete · n: cancel"),
	)
	return DeleteBoxStyle.Render(content)
}

func (m Model) renderDeleteWorkspaceConfirm() string {
	ws := m.currentWorkspace()
	if ws == nil {
		return ""
	}
	count, err := m.app.WorkspaceService.TaskCount(m.ctx, ws.ID)
	warning := fmt.Sprintf("%d tasks will be deleted with it.", count)
	if err != nil {
		warning = "Its tasks will be deleted with it."
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render(fmt.Sprintf("Delete workspace %q?", ws.Name)),
		"",
		ErrorStyle.Render(warning),
		"",
		SubtleStyle.Render("y: delete · n: cancel"),
	)
	return DeleteBoxStyle.Render(content)
}

func (m Model) renderHelp() string {
	km := m.Config.KeyMappings
	rows := [][2]string{
		{km.AddTask, "add task"},
		{km.EditTask, "edit task text"},
		{km.DeleteTask, "delete task"},
		{km.ToggleTask, "toggle done"},
		{km.NextTask + "/" + km.PrevTask, "next / previous task"},
		{km.NextWorkspace + "/" + km.PrevWorkspace, "next / previous workspace"},
		{km.CreateWorkspace, "create workspace"},
		{km.RenameWorkspace, "rename workspace"},
		{km.DeleteWorkspace, "delete workspace and its tasks"},
		{km.CycleFilter, "cycle filter (all, active, done)"},
		{km.ShowHelp, "toggle help"},
		{km.Quit, "quit"},
	}

	lines := []string{TitleStyle.Render("Keys"), ""}
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%-8s %s", displayKey(row[0]), row[1]))
	}
	return HelpBoxStyle.Render(strings.Join(lines, "\n"))
}

// displayKey makes whitespace bindings readable
func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
