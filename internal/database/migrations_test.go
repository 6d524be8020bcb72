package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

func TestMigrate_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("Second migration run failed: %v", err)
	}

	var version int64
	err := db.QueryRowContext(ctx, `SELECT MAX(version_id) FROM goose_db_version`).Scan(&version)
	if err != nil {
		t.Fatalf("Failed to read migration version: %v", err)
	}
	if version != 3 {
		t.Errorf("Expected schema version 3, got %d", version)
	}
}

func TestMigrate_CreatesSchema(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for _, table := range []string{"workspaces", "tasks"} {
		var name string
		err := db.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		if err != nil {
			t.Errorf("Expected table %s to exist: %v", table, err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	ok, err := hasColumn(ctx, tx, "tasks", "workspace_id")
	if err != nil {
		t.Fatalf("hasColumn failed: %v", err)
	}
	if !ok {
		t.Error("Expected tasks.workspace_id to exist")
	}
}

// openLegacyDB writes a single-list database as shipped before workspaces existed
func openLegacyDB(t *testing.T, withWorkspaces bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "legacy.db")

	raw, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open legacy database: %v", err)
	}
	defer func() { _ = raw.Close() }()

	stmts := []string{
		`CREATE TABLE tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT,
			status TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			completed_at INTEGER
		)`,
		`INSERT INTO tasks (title, description, status, created_at) VALUES ('Buy milk', '', 'active', 1700000000000)`,
		`INSERT INTO tasks (title, description, status, created_at, completed_at) VALUES ('Call mom', '', 'done', 1700000000001, 1700000000500)`,
	}
	if withWorkspaces {
		stmts = append(stmts,
			`CREATE TABLE workspaces (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT NOT NULL UNIQUE)`,
			`INSERT INTO workspaces (id, name) VALUES (7, 'Home')`,
			`INSERT INTO workspaces (id, name) VALUES (9, 'Work')`,
		)
	}
	for _, stmt := range stmts {
		if _, err := raw.Exec(stmt); err != nil {
			t.Fatalf("Failed to seed legacy database: %v", err)
		}
	}
	return path
}

func TestMigrate_UpgradesLegacySchema(t *testing.T) {
	ctx := context.Background()
	path := openLegacyDB(t, false)

	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Failed to open legacy database: %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewRepository(db)
	tasks, err := repo.ListTasks(ctx, DefaultWorkspaceID, nil)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("Expected 2 backfilled tasks, got %d", len(tasks))
	}

	// The first workspace the user creates adopts the legacy tasks
	ws, err := repo.CreateWorkspace(ctx, "Inbox")
	if err != nil {
		t.Fatalf("CreateWorkspace failed: %v", err)
	}
	if ws.ID != DefaultWorkspaceID {
		t.Errorf("Expected first workspace ID %d, got %d", DefaultWorkspaceID, ws.ID)
	}
}

func TestMigrate_BackfillsToFirstWorkspace(t *testing.T) {
	ctx := context.Background()
	path := openLegacyDB(t, true)

	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Failed to open legacy database: %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewRepository(db)
	tasks, err := repo.ListTasks(ctx, 7, nil)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("Expected 2 tasks in workspace 7, got %d", len(tasks))
	}
	for _, task := range tasks {
		if task.WorkspaceID != 7 {
			t.Errorf("Task %d: expected workspace 7, got %d", task.ID, task.WorkspaceID)
		}
	}

	// Reopening must not run the backfill again or fail
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}
	db, err = Open(ctx, path)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	defer func() { _ = db.Close() }()
}
