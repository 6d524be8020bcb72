package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/doable/internal/app"
	"github.com/thenoetrevino/doable/internal/config"
	"github.com/thenoetrevino/doable/internal/models"
)

// Mode is the current interaction mode of the TUI
type Mode int

const (
	NormalMode Mode = iota
	AddTaskMode
	EditTaskMode
	CreateWorkspaceMode
	RenameWorkspaceMode
	DeleteConfirmMode
	DeleteWorkspaceMode
	HelpMode
)

// Filter restricts which tasks of the current workspace are listed
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterDone
)

// String returns the label shown in the header
func (f Filter) String() string {
	switch f {
	case FilterActive:
		return "active"
	case FilterDone:
		return "done"
	default:
		return "all"
	}
}

// status maps the filter to the optional status argument of ListTasks
func (f Filter) status() *models.TaskStatus {
	var s models.TaskStatus
	switch f {
	case FilterActive:
		s = models.TaskStatusActive
	case FilterDone:
		s = models.TaskStatusDone
	default:
		return nil
	}
	return &s
}

// Model is the bubbletea model for the workspace/task browser
type Model struct {
	ctx    context.Context
	app    *app.App
	Config *config.Config

	Workspaces []*models.Workspace
	Tasks      []*models.Task

	selectedWorkspace int
	selectedTask      int
	filter            Filter
	mode              Mode

	input        textinput.Model
	notification notification

	width  int
	height int
}

// InitialModel builds the model and loads the first workspace
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config) Model {
	if cfg == nil {
		cfg = &config.Config{KeyMappings: config.DefaultKeyMappings(), ColorScheme: config.DefaultColorScheme()}
	}
	InitStyles(cfg.ColorScheme)

	input := textinput.New()
	input.CharLimit = 500

	m := Model{
		ctx:    ctx,
		app:    a,
		Config: cfg,
		input:  input,
	}
	m.reloadWorkspaces()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Mode returns the current interaction mode
func (m Model) Mode() Mode {
	return m.mode
}

// currentWorkspace returns the selected workspace or nil when there is none
func (m Model) currentWorkspace() *models.Workspace {
	if m.selectedWorkspace < 0 || m.selectedWorkspace >= len(m.Workspaces) {
		return nil
	}
	return m.Workspaces[m.selectedWorkspace]
}

// currentTask returns the selected task or nil when the list is empty
func (m Model) currentTask() *models.Task {
	if m.selectedTask < 0 || m.selectedTask >= len(m.Tasks) {
		return nil
	}
	return m.Tasks[m.selectedTask]
}

// reloadWorkspaces refreshes the workspace tabs and then the task list.
// On failure the previous data is kept and an error is shown.
func (m *Model) reloadWorkspaces() {
	workspaces, err := m.app.WorkspaceService.ListWorkspaces(m.ctx)
	if err != nil {
		slog.Error("failed to load workspaces", "error", err)
		m.notifyError(err)
		return
	}
	m.Workspaces = workspaces
	m.selectedWorkspace = clamp(m.selectedWorkspace, len(workspaces))
	m.reloadTasks()
}

// reloadTasks refreshes the task list of the selected workspace
func (m *Model) reloadTasks() {
	ws := m.currentWorkspace()
	if ws == nil {
		m.Tasks = []*models.Task{}
		m.selectedTask = 0
		return
	}
	tasks, err := m.app.TaskService.ListTasks(m.ctx, ws.ID, m.filter.status())
	if err != nil {
		slog.Error("failed to load tasks", "workspace_id", ws.ID, "error", err)
		m.notifyError(err)
		return
	}
	m.Tasks = tasks
	m.selectedTask = clamp(m.selectedTask, len(tasks))
}

// clamp keeps idx inside [0, n)
func clamp(idx, n int) int {
	if n == 0 || idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}
