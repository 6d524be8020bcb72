package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/doable/internal/database"
	"github.com/thenoetrevino/doable/internal/models"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	ListTasks(ctx context.Context, workspaceID int, status *models.TaskStatus) ([]*models.Task, error)
	GetTask(ctx context.Context, id int) (*models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	SetTaskStatus(ctx context.Context, id int, status models.TaskStatus) error
	ToggleTaskStatus(ctx context.Context, id int) (*models.Task, error)
	SetTaskText(ctx context.Context, id int, text string) error
	SetTaskDescription(ctx context.Context, id int, description string) error
	DeleteTask(ctx context.Context, id int) error
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Text        string
	Description string
	WorkspaceID int
}

// Option configures the task service
type Option func(*service)

// WithClock overrides the time source used for createdAt and completedAt
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// service implements Service interface
type service struct {
	repo database.DataStore
	now  func() time.Time
}

// NewService creates a new task service
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

// ListTasks returns the tasks of a workspace, newest first.
// A nil status returns every task in the workspace.
func (s *service) ListTasks(ctx context.Context, workspaceID int, status *models.TaskStatus) ([]*models.Task, error) {
	if status != nil && !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *status)
	}
	return s.repo.ListTasks(ctx, workspaceID, status)
}

// GetTask retrieves a single task
func (s *service) GetTask(ctx context.Context, id int) (*models.Task, error) {
	if id <= 0 {
		return nil, ErrInvalidTaskID
	}
	task, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return task, nil
}

// CreateTask validates and inserts a new active task
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if req.WorkspaceID <= 0 {
		return nil, ErrInvalidWorkspaceID
	}

	task := &models.Task{
		Text:        text,
		Description: strings.TrimSpace(req.Description),
		WorkspaceID: req.WorkspaceID,
		Status:      models.TaskStatusActive,
		CreatedAt:   s.now(),
	}
	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	slog.Debug("task created", "id", task.ID, "workspace_id", task.WorkspaceID)
	return task, nil
}

// SetTaskStatus moves a task to status, stamping completedAt on done and
// clearing it on active. Unknown ids are a no-op.
func (s *service) SetTaskStatus(ctx context.Context, id int, status models.TaskStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var completedAt *time.Time
	if status == models.TaskStatusDone {
		now := s.now()
		completedAt = &now
	}

	if err := s.repo.SetTaskStatus(ctx, id, status, completedAt); err != nil {
		return fmt.Errorf("failed to set status of task %d: %w", id, err)
	}

	slog.Debug("task status changed", "id", id, "status", status)
	return nil
}

// ToggleTaskStatus flips a task between active and done and returns the
// updated task
func (s *service) ToggleTaskStatus(ctx context.Context, id int) (*models.Task, error) {
	if id <= 0 {
		return nil, ErrInvalidTaskID
	}

	var updated *models.Task
	err := s.repo.InTx(ctx, func(store database.DataStore) error {
		task, err := store.GetTask(ctx, id)
		if err != nil {
			return notFound(err)
		}

		next := task.Status.Toggle()
		var completedAt *time.Time
		if next == models.TaskStatusDone {
			now := s.now()
			completedAt = &now
		}
		if err := store.SetTaskStatus(ctx, id, next, completedAt); err != nil {
			return fmt.Errorf("failed to set status of task %d: %w", id, err)
		}

		task.Status = next
		task.CompletedAt = completedAt
		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("task status toggled", "id", id, "status", updated.Status)
	return updated, nil
}

// SetTaskText replaces the text of a task. Timestamps are left untouched.
func (s *service) SetTaskText(ctx context.Context, id int, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyText
	}
	if err := s.repo.SetTaskText(ctx, id, text); err != nil {
		return fmt.Errorf("failed to update text of task %d: %w", id, err)
	}
	return nil
}

// SetTaskDescription replaces the description of a task
func (s *service) SetTaskDescription(ctx context.Context, id int, description string) error {
	if err := s.repo.SetTaskDescription(ctx, id, strings.TrimSpace(description)); err != nil {
		return fmt.Errorf("failed to update description of task %d: %w", id, err)
	}
	return nil
}

// DeleteTask removes a task. Deleting a missing task is not an error.
func (s *service) DeleteTask(ctx context.Context, id int) error {
	if err := s.repo.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	slog.Debug("task deleted", "id", id)
	return nil
}

func notFound(err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrTaskNotFound, err)
	}
	return err
}
