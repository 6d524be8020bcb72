package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	taskservice "github.com/thenoetrevino/doable/internal/services/task"
)

var (
	errNoWorkspace = errors.New("no workspace selected, press the create workspace key first")
	errNoTask      = errors.New("no task selected")
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyPressMsg:
		switch m.mode {
		case AddTaskMode, EditTaskMode, CreateWorkspaceMode, RenameWorkspaceMode:
			return m.handleInputMode(msg)
		case DeleteConfirmMode:
			return m.handleDeleteConfirm(msg)
		case DeleteWorkspaceMode:
			return m.handleDeleteWorkspaceConfirm(msg)
		case HelpMode:
			return m.handleHelpMode(msg)
		default:
			return m.handleNormalMode(msg)
		}
	}
	return m, nil
}

// keyMatches compares a pressed key with a configured binding.
// A literal " " in the config means the space bar.
func keyMatches(key, binding string) bool {
	if binding == " " {
		binding = "space"
	}
	return key == binding
}

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.clearNotification()

	key := msg.String()
	km := m.Config.KeyMappings

	switch {
	case key == "ctrl+c" || keyMatches(key, km.Quit):
		return m, tea.Quit
	case keyMatches(key, km.ShowHelp):
		m.mode = HelpMode
		return m, nil
	case keyMatches(key, km.AddTask):
		return m.handleAddTask()
	case keyMatches(key, km.EditTask):
		return m.handleEditTask()
	case keyMatches(key, km.DeleteTask):
		return m.handleDeleteTask()
	case keyMatches(key, km.ToggleTask):
		return m.handleToggleTask()
	case keyMatches(key, km.CreateWorkspace):
		return m.startInput(CreateWorkspaceMode, "", "Workspace name")
	case keyMatches(key, km.RenameWorkspace):
		ws := m.currentWorkspace()
		if ws == nil {
			m.notifyError(errNoWorkspace)
			return m, nil
		}
		return m.startInput(RenameWorkspaceMode, ws.Name, "Workspace name")
	case keyMatches(key, km.DeleteWorkspace):
		if m.currentWorkspace() == nil {
			m.notifyError(errNoWorkspace)
			return m, nil
		}
		m.mode = DeleteWorkspaceMode
		return m, nil
	case key == "right" || keyMatches(key, km.NextWorkspace):
		return m.switchWorkspace(1)
	case key == "left" || keyMatches(key, km.PrevWorkspace):
		return m.switchWorkspace(-1)
	case key == "down" || keyMatches(key, km.NextTask):
		m.selectedTask = clamp(m.selectedTask+1, len(m.Tasks))
		return m, nil
	case key == "up" || keyMatches(key, km.PrevTask):
		m.selectedTask = clamp(m.selectedTask-1, len(m.Tasks))
		return m, nil
	case keyMatches(key, km.CycleFilter):
		m.filter = (m.filter + 1) % 3
		m.selectedTask = 0
		m.reloadTasks()
		return m, nil
	}

	return m, nil
}

func (m Model) handleAddTask() (tea.Model, tea.Cmd) {
	if m.currentWorkspace() == nil {
		m.notifyError(errNoWorkspace)
		return m, nil
	}
	return m.startInput(AddTaskMode, "", "What needs doing?")
}

func (m Model) handleEditTask() (tea.Model, tea.Cmd) {
	task := m.currentTask()
	if task == nil {
		m.notifyError(errNoTask)
		return m, nil
	}
	return m.startInput(EditTaskMode, task.Text, "Task text")
}

func (m Model) handleDeleteTask() (tea.Model, tea.Cmd) {
	if m.currentTask() == nil {
		m.notifyError(errNoTask)
		return m, nil
	}
	m.mode = DeleteConfirmMode
	return m, nil
}

func (m Model) handleToggleTask() (tea.Model, tea.Cmd) {
	task := m.currentTask()
	if task == nil {
		m.notifyError(errNoTask)
		return m, nil
	}
	updated, err := m.app.TaskService.ToggleTaskStatus(m.ctx, task.ID)
	if err != nil {
		slog.Error("failed to toggle task", "task_id", task.ID, "error", err)
		m.notifyError(err)
		return m, nil
	}
	m.reloadTasks()
	m.notifyInfo(fmt.Sprintf("%q is now %s", updated.Text, updated.Status))
	return m, nil
}

func (m Model) switchWorkspace(delta int) (tea.Model, tea.Cmd) {
	n := len(m.Workspaces)
	if n == 0 {
		return m, nil
	}
	m.selectedWorkspace = (m.selectedWorkspace + delta + n) % n
	m.selectedTask = 0
	m.reloadTasks()
	return m, nil
}

// startInput switches to an input mode with the text field primed
func (m Model) startInput(mode Mode, value, placeholder string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.input.Reset()
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) handleInputMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.leaveInput(), nil
	case "enter":
		return m.submitInput()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) leaveInput() Model {
	m.input.Blur()
	m.input.Reset()
	m.mode = NormalMode
	return m
}

// submitInput applies the text field to the store. On error the dialog
// stays open so the value can be corrected.
func (m Model) submitInput() (tea.Model, tea.Cmd) {
	value := m.input.Value()

	switch m.mode {
	case AddTaskMode:
		ws := m.currentWorkspace()
		if ws == nil {
			m.notifyError(errNoWorkspace)
			return m.leaveInput(), nil
		}
		task, err := m.app.TaskService.CreateTask(m.ctx, taskservice.CreateTaskRequest{
			Text:        value,
			WorkspaceID: ws.ID,
		})
		if err != nil {
			m.notifyError(err)
			return m, nil
		}
		m = m.leaveInput()
		m.reloadTasks()
		m.selectTask(task.ID)
		m.notifyInfo("task added")

	case EditTaskMode:
		task := m.currentTask()
		if task == nil {
			m.notifyError(errNoTask)
			return m.leaveInput(), nil
		}
		if err := m.app.TaskService.SetTaskText(m.ctx, task.ID, value); err != nil {
			m.notifyError(err)
			return m, nil
		}
		m = m.leaveInput()
		m.reloadTasks()
		m.notifyInfo("task updated")

	case CreateWorkspaceMode:
		ws, err := m.app.WorkspaceService.CreateWorkspace(m.ctx, value)
		if err != nil {
			m.notifyError(err)
			return m, nil
		}
		m = m.leaveInput()
		m.reloadWorkspaces()
		for i, w := range m.Workspaces {
			if w.ID == ws.ID {
				m.selectedWorkspace = i
			}
		}
		m.selectedTask = 0
		m.reloadTasks()
		m.notifyInfo(fmt.Sprintf("workspace %q created", strings.TrimSpace(ws.Name)))

	case RenameWorkspaceMode:
		ws := m.currentWorkspace()
		if ws == nil {
			m.notifyError(errNoWorkspace)
			return m.leaveInput(), nil
		}
		if err := m.app.WorkspaceService.RenameWorkspace(m.ctx, ws.ID, value); err != nil {
			m.notifyError(err)
			return m, nil
		}
		m = m.leaveInput()
		m.reloadWorkspaces()
		m.notifyInfo("workspace renamed")
	}

	return m, nil
}

// selectTask moves the cursor to the task with id if it is listed
func (m *Model) selectTask(id int) {
	for i, t := range m.Tasks {
		if t.ID == id {
			m.selectedTask = i
			return
		}
	}
}

func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = NormalMode
		task := m.currentTask()
		if task == nil {
			return m, nil
		}
		if err := m.app.TaskService.DeleteTask(m.ctx, task.ID); err != nil {
			slog.Error("failed to delete task", "task_id", task.ID, "error", err)
			m.notifyError(err)
			return m, nil
		}
		m.reloadTasks()
		m.notifyInfo("task deleted")
	case "n", "N", "esc":
		m.mode = NormalMode
	}
	return m, nil
}

// handleDeleteWorkspaceConfirm removes the selected workspace and its tasks
func (m Model) handleDeleteWorkspaceConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = NormalMode
		ws := m.currentWorkspace()
		if ws == nil {
			return m, nil
		}
		if err := m.app.WorkspaceService.DeleteWorkspace(m.ctx, ws.ID); err != nil {
			slog.Error("failed to delete workspace", "workspace_id", ws.ID, "error", err)
			m.notifyError(err)
			return m, nil
		}
		m.selectedTask = 0
		m.reloadWorkspaces()
		m.notifyInfo(fmt.Sprintf("workspace %q deleted", ws.Name))
	case "n", "N", "esc":
		m.mode = NormalMode
	}
	return m, nil
}

func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); {
	case key == "esc", keyMatches(key, m.Config.KeyMappings.ShowHelp), keyMatches(key, m.Config.KeyMappings.Quit):
		m.mode = NormalMode
	}
	return m, nil
}
