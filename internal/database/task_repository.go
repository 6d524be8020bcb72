package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/doable/internal/models"
)

const taskColumns = `id, title, COALESCE(description, ''), COALESCE(workspace_id, 0), status, created_at, completed_at`

// TaskRepo handles all task-related database operations.
// It performs no validation; callers are expected to pass clean input.
type TaskRepo struct {
	db querier
}

// ListTasks returns the tasks of a workspace, newest first.
// With a status only that status is returned; without one, active tasks
// come before done tasks. An unknown workspace yields an empty slice.
func (r *TaskRepo) ListTasks(ctx context.Context, workspaceID int, status *models.TaskStatus) ([]*models.Task, error) {
	if status != nil {
		return r.queryTasks(ctx,
			`SELECT `+taskColumns+` FROM tasks
			 WHERE workspace_id = ? AND status = ?
			 ORDER BY created_at DESC, id DESC`,
			workspaceID, string(*status),
		)
	}
	return r.queryTasks(ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE workspace_id = ?
		 ORDER BY status, created_at DESC, id DESC`,
		workspaceID,
	)
}

// ListAllTasks returns every task grouped by workspace, oldest first
func (r *TaskRepo) ListAllTasks(ctx context.Context) ([]*models.Task, error) {
	return r.queryTasks(ctx,
		`SELECT `+taskColumns+` FROM tasks ORDER BY workspace_id, created_at, id`,
	)
}

// GetTask retrieves a task by its ID
func (r *TaskRepo) GetTask(ctx context.Context, id int) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return task, nil
}

// CreateTask inserts task as given and stores the assigned ID back into it
func (r *TaskRepo) CreateTask(ctx context.Context, task *models.Task) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, status, created_at, completed_at, workspace_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		task.Text, task.Description, string(task.Status),
		toMillis(task.CreatedAt), nullMillis(task.CompletedAt), task.WorkspaceID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert task into workspace %d: %w", task.WorkspaceID, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get task ID after insert: %w", err)
	}
	task.ID = int(id)
	return nil
}

// SetTaskStatus updates status and completion time together
func (r *TaskRepo) SetTaskStatus(ctx context.Context, id int, status models.TaskStatus, completedAt *time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status = ?, completed_at = ? WHERE id = ?`,
		string(status), nullMillis(completedAt), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update status of task %d: %w", id, err)
	}
	return nil
}

// SetTaskText replaces the task text; timestamps are left alone
func (r *TaskRepo) SetTaskText(ctx context.Context, id int, text string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET title = ? WHERE id = ?`, text, id)
	if err != nil {
		return fmt.Errorf("failed to update text of task %d: %w", id, err)
	}
	return nil
}

// SetTaskDescription replaces the task description
func (r *TaskRepo) SetTaskDescription(ctx context.Context, id int, description string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET description = ? WHERE id = ?`, description, id)
	if err != nil {
		return fmt.Errorf("failed to update description of task %d: %w", id, err)
	}
	return nil
}

// DeleteTask removes a task. Deleting a missing task is not an error.
func (r *TaskRepo) DeleteTask(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return nil
}

// DeleteTasksByWorkspace removes every task of a workspace
func (r *TaskRepo) DeleteTasksByWorkspace(ctx context.Context, workspaceID int) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE workspace_id = ?`, workspaceID); err != nil {
		return fmt.Errorf("failed to delete tasks for workspace %d: %w", workspaceID, err)
	}
	return nil
}

// DeleteAllTasks empties the tasks table
func (r *TaskRepo) DeleteAllTasks(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("failed to delete all tasks: %w", err)
	}
	return nil
}

// CountTasks returns the number of tasks in a workspace
func (r *TaskRepo) CountTasks(ctx context.Context, workspaceID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE workspace_id = ?`, workspaceID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tasks for workspace %d: %w", workspaceID, err)
	}
	return count, nil
}

func (r *TaskRepo) queryTasks(ctx context.Context, query string, args ...any) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer closeRows(rows)

	tasks := make([]*models.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}
	return tasks, nil
}

func scanTask(s scanner) (*models.Task, error) {
	var (
		task        models.Task
		status      string
		createdAt   int64
		completedAt sql.NullInt64
	)
	if err := s.Scan(&task.ID, &task.Text, &task.Description, &task.WorkspaceID, &status, &createdAt, &completedAt); err != nil {
		return nil, err
	}
	task.Status = models.TaskStatus(status)
	task.CreatedAt = time.UnixMilli(createdAt)
	task.CompletedAt = nullMillisToPtr(completedAt)
	return &task, nil
}
