package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// DefaultWorkspaceID receives orphaned legacy tasks when no workspace exists yet.
// AUTOINCREMENT hands out 1 to the first workspace, so those tasks reappear
// as soon as the user creates one.
const DefaultWorkspaceID = 1

// Migrate brings the schema up to date. Every step is additive and safe to
// run against databases written by older releases, including ones created
// before versioning existed (no goose_db_version table).
func Migrate(ctx context.Context, db *sql.DB) error {
	fsys, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load embedded migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys,
		goose.WithGoMigrations(
			goose.NewGoMigration(2, &goose.GoFunc{RunTx: upTasksTable, Mode: goose.TransactionEnabled}, nil),
			goose.NewGoMigration(3, &goose.GoFunc{RunTx: upBackfillWorkspace, Mode: goose.TransactionEnabled}, nil),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	for _, r := range results {
		slog.Info("applied migration", "version", r.Source.Version, "duration", r.Duration)
	}
	return nil
}

// upTasksTable creates the tasks table, or upgrades the single-list layout
// by adding the workspace_id column
func upTasksTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT,
			status TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			completed_at INTEGER,
			workspace_id INTEGER
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create tasks table: %w", err)
	}

	hasWorkspace, err := hasColumn(ctx, tx, "tasks", "workspace_id")
	if err != nil {
		return err
	}
	if !hasWorkspace {
		if _, err := tx.ExecContext(ctx, `ALTER TABLE tasks ADD COLUMN workspace_id INTEGER`); err != nil {
			return fmt.Errorf("failed to add workspace_id column: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_tasks_workspace_status
		ON tasks(workspace_id, status, created_at)
	`)
	if err != nil {
		return fmt.Errorf("failed to create tasks index: %w", err)
	}
	return nil
}

// upBackfillWorkspace assigns tasks without a workspace to the first one
func upBackfillWorkspace(ctx context.Context, tx *sql.Tx) error {
	defaultID := DefaultWorkspaceID
	err := tx.QueryRowContext(ctx, `SELECT id FROM workspaces ORDER BY id ASC LIMIT 1`).Scan(&defaultID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to find default workspace: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE tasks SET workspace_id = ? WHERE workspace_id IS NULL OR workspace_id = 0`,
		defaultID,
	)
	if err != nil {
		return fmt.Errorf("failed to backfill task workspaces: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		slog.Info("backfilled legacy tasks", "count", n, "workspace_id", defaultID)
	}
	return nil
}

// hasColumn reports whether table has a column with the given name
func hasColumn(ctx context.Context, tx *sql.Tx, table, column string) (bool, error) {
	rows, err := tx.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("failed to inspect table %s: %w", table, err)
	}
	defer closeRows(rows)

	for rows.Next() {
		var (
			cid        int
			name       string
			ctype      string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &defaultVal, &pk); err != nil {
			return false, fmt.Errorf("failed to scan table_info row: %w", err)
		}
		if name == column {
			return true, nil
		}
	}
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("error iterating table_info rows: %w", err)
	}
	return false, nil
}
