package workspace

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/doable/internal/database"
	"github.com/thenoetrevino/doable/internal/models"
)

// Service defines all workspace-related business operations
type Service interface {
	// Read operations
	ListWorkspaces(ctx context.Context) ([]*models.Workspace, error)
	GetWorkspace(ctx context.Context, id int) (*models.Workspace, error)
	TaskCount(ctx context.Context, id int) (int, error)

	// Write operations
	CreateWorkspace(ctx context.Context, name string) (*models.Workspace, error)
	RenameWorkspace(ctx context.Context, id int, name string) error
	DeleteWorkspace(ctx context.Context, id int) error
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new workspace service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// ListWorkspaces returns every workspace ordered by id
func (s *service) ListWorkspaces(ctx context.Context) ([]*models.Workspace, error) {
	return s.repo.ListWorkspaces(ctx)
}

// GetWorkspace retrieves a specific workspace
func (s *service) GetWorkspace(ctx context.Context, id int) (*models.Workspace, error) {
	if id <= 0 {
		return nil, ErrInvalidWorkspaceID
	}
	ws, err := s.repo.GetWorkspace(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return ws, nil
}

// TaskCount returns the number of tasks in a workspace
func (s *service) TaskCount(ctx context.Context, id int) (int, error) {
	if id <= 0 {
		return 0, ErrInvalidWorkspaceID
	}
	return s.repo.CountTasks(ctx, id)
}

// CreateWorkspace creates a new workspace with validation
func (s *service) CreateWorkspace(ctx context.Context, name string) (*models.Workspace, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	ws, err := s.repo.CreateWorkspace(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	slog.Debug("workspace created", "id", ws.ID, "name", ws.Name)
	return ws, nil
}

// RenameWorkspace changes the name of an existing workspace
func (s *service) RenameWorkspace(ctx context.Context, id int, name string) error {
	if id <= 0 {
		return ErrInvalidWorkspaceID
	}
	name, err := validateName(name)
	if err != nil {
		return err
	}

	if _, err := s.repo.GetWorkspace(ctx, id); err != nil {
		return notFound(err)
	}
	if err := s.repo.RenameWorkspace(ctx, id, name); err != nil {
		return fmt.Errorf("failed to rename workspace %d: %w", id, err)
	}

	slog.Debug("workspace renamed", "id", id, "name", name)
	return nil
}

// DeleteWorkspace removes a workspace and all of its tasks atomically
func (s *service) DeleteWorkspace(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidWorkspaceID
	}

	err := s.repo.InTx(ctx, func(store database.DataStore) error {
		if err := store.DeleteTasksByWorkspace(ctx, id); err != nil {
			return fmt.Errorf("failed to delete tasks: %w", err)
		}
		if err := store.DeleteWorkspace(ctx, id); err != nil {
			return fmt.Errorf("failed to delete workspace: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Debug("workspace deleted", "id", id)
	return nil
}

// validateName trims name and checks it against the naming rules
func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

func notFound(err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrWorkspaceNotFound, err)
	}
	return err
}
