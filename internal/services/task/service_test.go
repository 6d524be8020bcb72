package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thenoetrevino/doable/internal/database"
	"github.com/thenoetrevino/doable/internal/models"
	"github.com/thenoetrevino/doable/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// fakeClock returns a clock that advances one second per call
func fakeClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		now := current
		current = current.Add(time.Second)
		return now
	}
}

func setupService(t *testing.T) (Service, int) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	wsID := testutil.CreateTestWorkspace(t, db, "Work")
	svc := NewService(database.NewRepository(db), WithClock(fakeClock(time.UnixMilli(1700000000000))))
	return svc, wsID
}

func mustCreate(t *testing.T, svc Service, wsID int, text string) *models.Task {
	t.Helper()
	task, err := svc.CreateTask(context.Background(), CreateTaskRequest{Text: text, WorkspaceID: wsID})
	if err != nil {
		t.Fatalf("CreateTask(%q) failed: %v", text, err)
	}
	return task
}

// ============================================================================
// TESTS
// ============================================================================

func TestCreateTask(t *testing.T) {
	svc, wsID := setupService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, CreateTaskRequest{
		Text:        "  Buy milk  ",
		Description: "two litres",
		WorkspaceID: wsID,
	})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	if task.ID <= 0 {
		t.Errorf("Expected positive ID, got %d", task.ID)
	}
	if task.Text != "Buy milk" {
		t.Errorf("Expected trimmed text, got %q", task.Text)
	}
	if task.Status != models.TaskStatusActive {
		t.Errorf("Expected active status, got %s", task.Status)
	}
	if task.CompletedAt != nil {
		t.Error("Expected nil completedAt on new task")
	}

	tasks, err := svc.ListTasks(ctx, wsID, nil)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != task.ID {
		t.Errorf("Expected created task to be listed, got %+v", tasks)
	}
}

func TestCreateTask_Validation(t *testing.T) {
	svc, wsID := setupService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     CreateTaskRequest
		wantErr error
	}{
		{"empty text", CreateTaskRequest{Text: "", WorkspaceID: wsID}, ErrEmptyText},
		{"whitespace text", CreateTaskRequest{Text: "   ", WorkspaceID: wsID}, ErrEmptyText},
		{"zero workspace", CreateTaskRequest{Text: "x", WorkspaceID: 0}, ErrInvalidWorkspaceID},
		{"negative workspace", CreateTaskRequest{Text: "x", WorkspaceID: -3}, ErrInvalidWorkspaceID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateTask(ctx, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	tasks, err := svc.ListTasks(ctx, wsID, nil)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("Expected no tasks after rejected creates, got %d", len(tasks))
	}
}

func TestListTasks_NewestFirst(t *testing.T) {
	svc, wsID := setupService(t)
	ctx := context.Background()

	first := mustCreate(t, svc, wsID, "first")
	second := mustCreate(t, svc, wsID, "second")
	third := mustCreate(t, svc, wsID, "third")

	active := models.TaskStatusActive
	tasks, err := svc.ListTasks(ctx, wsID, &active)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}

	want := []int{third.ID, second.ID, first.ID}
	if len(tasks) != len(want) {
		t.Fatalf("Expected %d tasks, got %d", len(want), len(tasks))
	}
	for i, id := range want {
		if tasks[i].ID != id {
			t.Errorf("Position %d: expected %d, got %d", i, id, tasks[i].ID)
		}
	}
}

func TestListTasks_FilterPartitionsWorkspace(t *testing.T) {
	svc, wsID := setupService(t)
	ctx := context.Background()

	a := mustCreate(t, svc, wsID, "a")
	mustCreate(t, svc, wsID, "b")
	c := mustCreate(t, svc, wsID, "c")
	if err := svc.SetTaskStatus(ctx, a.ID, models.TaskStatusDone); err != nil {
		t.Fatalf("SetTaskStatus failed: %v", err)
	}
	if err := svc.SetTaskStatus(ctx, c.ID, models.TaskStatusDone); err != nil {
		t.Fatalf("SetTaskStatus failed: %v", err)
	}

	active, done := models.TaskStatusActive, models.TaskStatusDone
	activeTasks, err := svc.ListTasks(ctx, wsID, &active)
	if err != nil {
		t.Fatalf("ListTasks(active) failed: %v", err)
	}
	doneTasks, err := svc.ListTasks(ctx, wsID, &done)
	if err != nil {
		t.Fatalf("ListTasks(done) failed: %v", err)
	}
	all, err := svc.ListTasks(ctx, wsID, nil)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}

	if len(activeTasks)+len(doneTasks) != len(all) {
		t.Errorf("Filtered lists (%d + %d) do not cover all %d tasks",
			len(activeTasks), len(doneTasks), len(all))
	}
	for _, task := range activeTasks {
		if task.Status != models.TaskStatusActive {
			t.Errorf("Task %d in active list has status %s", task.ID, task.Status)
		}
	}
	for _, task := range doneTasks {
		if task.Status != models.TaskStatusDone {
			t.Errorf("Task %d in done list has status %s", task.ID, task.Status)
		}
	}
}

func TestListTasks_InvalidStatus(t *testing.T) {
	svc, wsID := setupService(t)

	bogus := models.TaskStatus("archived")
	_, err := svc.ListTasks(context.Background(), wsID, &bogus)
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("Expected ErrInvalidStatus, got %v", err)
	}
}

func TestListTasks_WorkspaceIsolation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	work := testutil.CreateTestWorkspace(t, db, "Work")
	home := testutil.CreateTestWorkspace(t, db, "Home")
	svc := NewService(database.NewRepository(db))
	ctx := context.Background()

	mustCreate(t, svc, work, "report")
	mustCreate(t, svc, home, "laundry")

	tasks, err := svc.ListTasks(ctx, home, nil)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Text != "laundry" {
		t.Errorf("Expected only the Home task, got %+v", tasks)
	}
}

func TestSetTaskStatus_CompletedAtInvariant(t *testing.T) {
	svc, wsID := setupService(t)
	ctx := context.Background()

	task := mustCreate(t, svc, wsID, "finish report")

	if err := svc.SetTaskStatus(ctx, task.ID, models.TaskStatusDone); err != nil {
		t.Fatalf("SetTaskStatus(done) failed: %v", err)
	}
	got, err := svc.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got.Status != models.TaskStatusDone || got.CompletedAt == nil {
		t.Fatalf("Expected done task with completedAt, got %+v", got)
	}
	if got.CompletedAt.Before(got.CreatedAt) {
		t.Errorf("completedAt %v precedes createdAt %v", got.CompletedAt, got.CreatedAt)
	}

	if err := svc.SetTaskStatus(ctx, task.ID, models.TaskStatusActive); err != nil {
		t.Fatalf("SetTaskStatus(active) failed: %v", err)
	}
	got, err = svc.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got.Status != models.TaskStatusActive || got.CompletedAt != nil {
		t.Errorf("Expected active task with nil completedAt, got %+v", got)
	}
	if !got.CreatedAt.Equal(task.CreatedAt) {
		t.Errorf("createdAt changed from %v to %v", task.CreatedAt, got.CreatedAt)
	}
}

func TestSetTaskStatus_MissingTaskIsNoop(t *testing.T) {
	svc, _ := setupService(t)

	if err := svc.SetTaskStatus(context.Background(), 9999, models.TaskStatusDone); err != nil {
		t.Errorf("Expected no error for missing task, got %v", err)
	}
}

func TestSetTaskStatus_Invalid(t *testing.T) {
	svc, wsID := setupService(t)
	task := mustCreate(t, svc, wsID, "x")

	err := svc.SetTaskStatus(context.Background(), task.ID, models.TaskStatus("blocked"))
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("Expected ErrInvalidStatus, got %v", err)
	}
}

func TestToggleTaskStatus(t *testing.T) {
	svc, wsID := setupService(t)
	ctx := context.Background()
	task := mustCreate(t, svc, wsID, "toggle me")

	toggled, err := svc.ToggleTaskStatus(ctx, task.ID)
	if err != nil {
		t.Fatalf("ToggleTaskStatus failed: %v", err)
	}
	if toggled.Status != models.TaskStatusDone || toggled.CompletedAt == nil {
		t.Errorf("Expected done with completedAt, got %+v", toggled)
	}

	toggled, err = svc.ToggleTaskStatus(ctx, task.ID)
	if err != nil {
		t.Fatalf("ToggleTaskStatus failed: %v", err)
	}
	if toggled.Status != models.TaskStatusActive || toggled.CompletedAt != nil {
		t.Errorf("Expected active with nil completedAt, got %+v", toggled)
	}

	_, err = svc.ToggleTaskStatus(ctx, 9999)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}
}

func TestSetTaskText(t *testing.T) {
	svc, wsID := setupService(t)
	ctx := context.Background()
	task := mustCreate(t, svc, wsID, "draft")

	if err := svc.SetTaskStatus(ctx, task.ID, models.TaskStatusDone); err != nil {
		t.Fatalf("SetTaskStatus failed: %v", err)
	}
	before, err := svc.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}

	if err := svc.SetTaskText(ctx, task.ID, "  final  "); err != nil {
		t.Fatalf("SetTaskText failed: %v", err)
	}
	after, err := svc.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}

	if after.Text != "final" {
		t.Errorf("Expected 'final', got %q", after.Text)
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Errorf("createdAt changed from %v to %v", before.CreatedAt, after.CreatedAt)
	}
	if after.CompletedAt == nil || !after.CompletedAt.Equal(*before.CompletedAt) {
		t.Errorf("completedAt changed from %v to %v", before.CompletedAt, after.CompletedAt)
	}

	if err := svc.SetTaskText(ctx, task.ID, " "); !errors.Is(err, ErrEmptyText) {
		t.Errorf("Expected ErrEmptyText, got %v", err)
	}
}

func TestSetTaskDescription(t *testing.T) {
	svc, wsID := setupService(t)
	ctx := context.Background()
	task := mustCreate(t, svc, wsID, "with notes")

	if err := svc.SetTaskDescription(ctx, task.ID, "# Notes\n- one"); err != nil {
		t.Fatalf("SetTaskDescription failed: %v", err)
	}
	got, err := svc.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got.Description != "# Notes\n- one" {
		t.Errorf("Unexpected description %q", got.Description)
	}
}

func TestDeleteTask_Idempotent(t *testing.T) {
	svc, wsID := setupService(t)
	ctx := context.Background()
	task := mustCreate(t, svc, wsID, "temporary")

	if err := svc.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	if err := svc.DeleteTask(ctx, task.ID); err != nil {
		t.Errorf("Second DeleteTask should succeed, got %v", err)
	}

	_, err := svc.GetTask(ctx, task.ID)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected error to wrap models.ErrNotFound, got %v", err)
	}
}

func TestGetTask_InvalidID(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.GetTask(context.Background(), 0)
	if !errors.Is(err, ErrInvalidTaskID) {
		t.Errorf("Expected ErrInvalidTaskID, got %v", err)
	}
}
