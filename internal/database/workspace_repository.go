package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/doable/internal/models"
)

// WorkspaceRepo handles all workspace-related database operations
type WorkspaceRepo struct {
	db querier
}

// ListWorkspaces retrieves all workspaces ordered by ID
func (r *WorkspaceRepo) ListWorkspaces(ctx context.Context) ([]*models.Workspace, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM workspaces ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query all workspaces: %w", err)
	}
	defer closeRows(rows)

	workspaces := make([]*models.Workspace, 0, 8)
	for rows.Next() {
		ws := &models.Workspace{}
		if err := rows.Scan(&ws.ID, &ws.Name); err != nil {
			return nil, fmt.Errorf("failed to scan workspace row: %w", err)
		}
		workspaces = append(workspaces, ws)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workspace rows: %w", err)
	}
	return workspaces, nil
}

// GetWorkspace retrieves a workspace by its ID
func (r *WorkspaceRepo) GetWorkspace(ctx context.Context, id int) (*models.Workspace, error) {
	ws := &models.Workspace{}
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM workspaces WHERE id = ?`, id).Scan(&ws.ID, &ws.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("workspace %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace %d: %w", id, err)
	}
	return ws, nil
}

// GetWorkspaceByName retrieves a workspace by its exact name
func (r *WorkspaceRepo) GetWorkspaceByName(ctx context.Context, name string) (*models.Workspace, error) {
	ws := &models.Workspace{}
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM workspaces WHERE name = ?`, name).Scan(&ws.ID, &ws.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("workspace '%s': %w", name, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace '%s': %w", name, err)
	}
	return ws, nil
}

// CreateWorkspace inserts a workspace and returns the stored row.
// A taken name fails with ErrDuplicateName wrapping the driver error.
func (r *WorkspaceRepo) CreateWorkspace(ctx context.Context, name string) (*models.Workspace, error) {
	result, err := r.db.ExecContext(ctx, `INSERT INTO workspaces (name) VALUES (?)`, name)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("failed to insert workspace '%s': %w: %w", name, ErrDuplicateName, err)
		}
		return nil, fmt.Errorf("failed to insert workspace '%s': %w", name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace ID after insert: %w", err)
	}
	return r.GetWorkspace(ctx, int(id))
}

// RenameWorkspace updates a workspace's name
func (r *WorkspaceRepo) RenameWorkspace(ctx context.Context, id int, name string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE workspaces SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to rename workspace %d: %w: %w", id, ErrDuplicateName, err)
		}
		return fmt.Errorf("failed to rename workspace %d: %w", id, err)
	}
	return nil
}

// DeleteWorkspace removes the workspace row only; tasks are the caller's job
func (r *WorkspaceRepo) DeleteWorkspace(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM workspaces WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete workspace %d: %w", id, err)
	}
	return nil
}

// DeleteAllWorkspaces empties the workspaces table
func (r *WorkspaceRepo) DeleteAllWorkspaces(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM workspaces`); err != nil {
		return fmt.Errorf("failed to delete all workspaces: %w", err)
	}
	return nil
}
