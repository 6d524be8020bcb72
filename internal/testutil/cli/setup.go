package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/doable/internal/app"
	"github.com/thenoetrevino/doable/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return db, app.New(db)
}

// CreateTestWorkspace wraps testutil.CreateTestWorkspace for CLI tests
func CreateTestWorkspace(t *testing.T, db *sql.DB, name string) int {
	t.Helper()
	return testutil.CreateTestWorkspace(t, db, name)
}

// CreateTestTask wraps testutil.CreateTestTask for CLI tests
func CreateTestTask(t *testing.T, db *sql.DB, workspaceID int, text string) int {
	t.Helper()
	return testutil.CreateTestTask(t, db, workspaceID, text)
}
