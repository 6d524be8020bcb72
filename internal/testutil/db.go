package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/doable/internal/database"
	"github.com/thenoetrevino/doable/internal/models"
)

// SetupTestDB creates an in-memory database with the full migrated schema.
// The handle is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// CreateTestWorkspace inserts a workspace and returns its ID
func CreateTestWorkspace(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	ws, err := database.NewRepository(db).CreateWorkspace(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to create test workspace %q: %v", name, err)
	}
	return ws.ID
}

// CreateTestTask inserts an active task and returns its ID
func CreateTestTask(t *testing.T, db *sql.DB, workspaceID int, text string) int {
	t.Helper()
	task := &models.Task{
		Text:        text,
		WorkspaceID: workspaceID,
		Status:      models.TaskStatusActive,
		CreatedAt:   time.Now(),
	}
	if err := database.NewRepository(db).CreateTask(context.Background(), task); err != nil {
		t.Fatalf("Failed to create test task %q: %v", text, err)
	}
	return task.ID
}
