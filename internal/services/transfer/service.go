package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/thenoetrevino/doable/internal/database"
	"github.com/thenoetrevino/doable/internal/models"
)

// Mode selects how Import treats existing data
type Mode string

const (
	// ModeMerge keeps existing data. Snapshot workspaces whose name is
	// already taken are merged into the stored workspace of that name.
	ModeMerge Mode = "merge"
	// ModeReplace deletes every task and workspace before inserting.
	ModeReplace Mode = "replace"
)

// ParseMode maps user input to a Mode
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeMerge:
		return ModeMerge, nil
	case ModeReplace:
		return ModeReplace, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// ImportResult summarizes what an import wrote
type ImportResult struct {
	Mode              Mode `json:"mode"`
	WorkspacesCreated int  `json:"workspacesCreated"`
	WorkspacesMerged  int  `json:"workspacesMerged"`
	TasksCreated      int  `json:"tasksCreated"`
}

// Service exports and imports whole-store snapshots
type Service interface {
	Export(ctx context.Context) (*models.Snapshot, error)
	Import(ctx context.Context, snapshot *models.Snapshot, mode Mode) (*ImportResult, error)
}

// Option configures the transfer service
type Option func(*service)

// WithClock overrides the time source used for exportedAt
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

type service struct {
	repo database.DataStore
	now  func() time.Time
}

// NewService creates a new transfer service
func NewService(repo database.DataStore, opts ...Option) Service {
	s := &service{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Export reads every workspace and every task inside one read transaction
// so the snapshot is consistent.
func (s *service) Export(ctx context.Context) (*models.Snapshot, error) {
	snapshot := &models.Snapshot{
		Version:    models.SnapshotVersion,
		ID:         uuid.NewString(),
		ExportedAt: s.now().UnixMilli(),
		Workspaces: []models.SnapshotWorkspace{},
		Tasks:      []models.SnapshotTask{},
	}

	err := s.repo.InTx(ctx, func(store database.DataStore) error {
		workspaces, err := store.ListWorkspaces(ctx)
		if err != nil {
			return fmt.Errorf("failed to list workspaces: %w", err)
		}

		known := make(map[int]struct{}, len(workspaces))
		for _, ws := range workspaces {
			known[ws.ID] = struct{}{}
			snapshot.Workspaces = append(snapshot.Workspaces, models.SnapshotWorkspace{
				ID:   ws.ID,
				Name: ws.Name,
			})
		}

		tasks, err := store.ListAllTasks(ctx)
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}
		for _, task := range tasks {
			// Rows left without a workspace cannot be referenced by the document
			if _, ok := known[task.WorkspaceID]; !ok {
				slog.Warn("skipping task without workspace", "task_id", task.ID, "workspace_id", task.WorkspaceID)
				continue
			}
			snapshot.Tasks = append(snapshot.Tasks, toSnapshotTask(task))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("snapshot exported",
		"id", snapshot.ID,
		"workspaces", len(snapshot.Workspaces),
		"tasks", len(snapshot.Tasks))
	return snapshot, nil
}

// Import validates snapshot and writes it in a single transaction.
// Snapshot ids are remapped to the ids assigned by storage.
func (s *service) Import(ctx context.Context, snapshot *models.Snapshot, mode Mode) (*ImportResult, error) {
	if mode != ModeMerge && mode != ModeReplace {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	if err := Validate(snapshot); err != nil {
		return nil, err
	}

	result := &ImportResult{Mode: mode}
	err := s.repo.InTx(ctx, func(store database.DataStore) error {
		if mode == ModeReplace {
			if err := store.DeleteAllTasks(ctx); err != nil {
				return fmt.Errorf("failed to clear tasks: %w", err)
			}
			if err := store.DeleteAllWorkspaces(ctx); err != nil {
				return fmt.Errorf("failed to clear workspaces: %w", err)
			}
		}

		idMap := make(map[int]int, len(snapshot.Workspaces))
		for _, ws := range snapshot.Workspaces {
			name := strings.TrimSpace(ws.Name)

			if mode == ModeMerge {
				existing, err := store.GetWorkspaceByName(ctx, name)
				if err == nil {
					idMap[ws.ID] = existing.ID
					result.WorkspacesMerged++
					continue
				}
				if !isNotFound(err) {
					return fmt.Errorf("failed to look up workspace %q: %w", name, err)
				}
			}

			created, err := store.CreateWorkspace(ctx, name)
			if err != nil {
				return fmt.Errorf("failed to create workspace %q: %w", name, err)
			}
			idMap[ws.ID] = created.ID
			result.WorkspacesCreated++
		}

		for _, st := range snapshot.Tasks {
			task := fromSnapshotTask(st, idMap[st.WorkspaceID])
			if err := store.CreateTask(ctx, task); err != nil {
				return fmt.Errorf("failed to import task %d: %w", st.ID, err)
			}
			result.TasksCreated++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("snapshot imported",
		"id", snapshot.ID,
		"mode", mode,
		"workspaces_created", result.WorkspacesCreated,
		"workspaces_merged", result.WorkspacesMerged,
		"tasks_created", result.TasksCreated)
	return result, nil
}

func toSnapshotTask(task *models.Task) models.SnapshotTask {
	st := models.SnapshotTask{
		ID:          task.ID,
		Text:        task.Text,
		Description: task.Description,
		WorkspaceID: task.WorkspaceID,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt.UnixMilli(),
	}
	if task.CompletedAt != nil {
		ms := task.CompletedAt.UnixMilli()
		st.CompletedAt = &ms
	}
	return st
}

func fromSnapshotTask(st models.SnapshotTask, workspaceID int) *models.Task {
	task := &models.Task{
		Text:        strings.TrimSpace(st.Text),
		Description: st.Description,
		WorkspaceID: workspaceID,
		Status:      st.Status,
		CreatedAt:   time.UnixMilli(st.CreatedAt),
	}
	if st.CompletedAt != nil {
		completed := time.UnixMilli(*st.CompletedAt)
		task.CompletedAt = &completed
	}
	return task
}
