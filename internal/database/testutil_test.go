package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/doable/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB opens a migrated in-memory database
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// createTestWorkspace inserts a workspace and returns its ID
func createTestWorkspace(t *testing.T, repo *Repository, name string) int {
	t.Helper()
	ws, err := repo.CreateWorkspace(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to create workspace %q: %v", name, err)
	}
	return ws.ID
}

// createTestTask inserts an active task created at the given offset from base
func createTestTask(t *testing.T, repo *Repository, workspaceID int, text string, createdAt time.Time) *models.Task {
	t.Helper()
	task := &models.Task{
		Text:        text,
		WorkspaceID: workspaceID,
		Status:      models.TaskStatusActive,
		CreatedAt:   createdAt,
	}
	if err := repo.CreateTask(context.Background(), task); err != nil {
		t.Fatalf("Failed to create task %q: %v", text, err)
	}
	return task
}

func statusPtr(s models.TaskStatus) *models.TaskStatus {
	return &s
}
