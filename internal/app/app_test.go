package app

import (
	"context"
	"testing"
	"time"

	"github.com/thenoetrevino/doable/internal/services/task"
	"github.com/thenoetrevino/doable/internal/testutil"
)

func TestNew(t *testing.T) {
	db := testutil.SetupTestDB(t)

	app := New(db)

	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}
	if app.TaskService == nil {
		t.Error("Expected TaskService to be initialized")
	}
	if app.WorkspaceService == nil {
		t.Error("Expected WorkspaceService to be initialized")
	}
	if app.TransferService == nil {
		t.Error("Expected TransferService to be initialized")
	}
	if app.Repo() == nil {
		t.Error("Expected Repo to be initialized")
	}
	if app.Logger == nil {
		t.Error("Expected Logger to default to slog.Default")
	}
}

func TestWithClock(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixed := time.UnixMilli(1234567890000)
	app := New(db, WithClock(func() time.Time { return fixed }))
	ctx := context.Background()

	ws, err := app.WorkspaceService.CreateWorkspace(ctx, "Work")
	if err != nil {
		t.Fatalf("CreateWorkspace failed: %v", err)
	}
	created, err := app.TaskService.CreateTask(ctx, task.CreateTaskRequest{Text: "x", WorkspaceID: ws.ID})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if !created.CreatedAt.Equal(fixed) {
		t.Errorf("Expected createdAt %v, got %v", fixed, created.CreatedAt)
	}

	snapshot, err := app.TransferService.Export(ctx)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if snapshot.ExportedAt != fixed.UnixMilli() {
		t.Errorf("Expected exportedAt %d, got %d", fixed.UnixMilli(), snapshot.ExportedAt)
	}
}

func TestClose(t *testing.T) {
	db := testutil.SetupTestDB(t)
	app := New(db)

	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got %v", err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		t.Errorf("Expected database to stay open after app.Close, got %v", err)
	}
}
