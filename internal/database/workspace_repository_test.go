package database

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWorkspaceRepo_CreateListRename(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	work := createTestWorkspace(t, repo, "Work")
	home := createTestWorkspace(t, repo, "Home")

	list, err := repo.ListWorkspaces(ctx)
	if err != nil {
		t.Fatalf("ListWorkspaces failed: %v", err)
	}
	if len(list) != 2 || list[0].ID != work || list[1].ID != home {
		t.Fatalf("Expected workspaces ordered by id, got %+v", list)
	}

	if err := repo.RenameWorkspace(ctx, home, "Personal"); err != nil {
		t.Fatalf("RenameWorkspace failed: %v", err)
	}
	ws, err := repo.GetWorkspaceByName(ctx, "Personal")
	if err != nil {
		t.Fatalf("GetWorkspaceByName failed: %v", err)
	}
	if ws.ID != home {
		t.Errorf("Expected renamed workspace %d, got %d", home, ws.ID)
	}
}

func TestWorkspaceRepo_DuplicateName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	createTestWorkspace(t, repo, "Work")
	other := createTestWorkspace(t, repo, "Home")

	_, err := repo.CreateWorkspace(ctx, "Work")
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName on create, got %v", err)
	}

	err = repo.RenameWorkspace(ctx, other, "Work")
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName on rename, got %v", err)
	}
}

func TestRepository_InTxRollsBack(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	wsID := createTestWorkspace(t, repo, "Work")
	createTestTask(t, repo, wsID, "keep me", time.Now())

	boom := errors.New("boom")
	err := repo.InTx(ctx, func(store DataStore) error {
		if err := store.DeleteTasksByWorkspace(ctx, wsID); err != nil {
			return err
		}
		if err := store.DeleteWorkspace(ctx, wsID); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Expected boom, got %v", err)
	}

	tasks, err := repo.ListTasks(ctx, wsID, nil)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("Expected rollback to keep 1 task, got %d", len(tasks))
	}
	if _, err := repo.GetWorkspace(ctx, wsID); err != nil {
		t.Errorf("Expected workspace to survive rollback: %v", err)
	}
}
