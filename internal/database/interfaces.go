// Package database defines repository interfaces for data access
package database

import (
	"context"
	"time"

	"github.com/thenoetrevino/doable/internal/models"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	ListTasks(ctx context.Context, workspaceID int, status *models.TaskStatus) ([]*models.Task, error)
	ListAllTasks(ctx context.Context) ([]*models.Task, error)
	GetTask(ctx context.Context, id int) (*models.Task, error)
	CountTasks(ctx context.Context, workspaceID int) (int, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	CreateTask(ctx context.Context, task *models.Task) error
	SetTaskStatus(ctx context.Context, id int, status models.TaskStatus, completedAt *time.Time) error
	SetTaskText(ctx context.Context, id int, text string) error
	SetTaskDescription(ctx context.Context, id int, description string) error
	DeleteTask(ctx context.Context, id int) error
	DeleteTasksByWorkspace(ctx context.Context, workspaceID int) error
	DeleteAllTasks(ctx context.Context) error
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
}

// WorkspaceReader defines read operations for workspaces.
type WorkspaceReader interface {
	ListWorkspaces(ctx context.Context) ([]*models.Workspace, error)
	GetWorkspace(ctx context.Context, id int) (*models.Workspace, error)
	GetWorkspaceByName(ctx context.Context, name string) (*models.Workspace, error)
}

// WorkspaceWriter defines write operations for workspaces.
type WorkspaceWriter interface {
	CreateWorkspace(ctx context.Context, name string) (*models.Workspace, error)
	RenameWorkspace(ctx context.Context, id int, name string) error
	DeleteWorkspace(ctx context.Context, id int) error
	DeleteAllWorkspaces(ctx context.Context) error
}

// WorkspaceRepository combines all workspace-related operations.
type WorkspaceRepository interface {
	WorkspaceReader
	WorkspaceWriter
}

// DataStore is the unified interface the services depend on.
// InTx runs fn against a transaction-bound DataStore; fn must only use the
// store it is handed, never the outer one.
type DataStore interface {
	TaskRepository
	WorkspaceRepository
	InTx(ctx context.Context, fn func(DataStore) error) error
}
