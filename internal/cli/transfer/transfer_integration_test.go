package transfer

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clipkg "github.com/thenoetrevino/doable/internal/cli"
	"github.com/thenoetrevino/doable/internal/testutil"
	"github.com/thenoetrevino/doable/internal/testutil/cli"
)

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestExport(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	ws := cli.CreateTestWorkspace(t, db, "Work")
	cli.CreateTestTask(t, db, ws, "report")

	t.Run("stdout defaults to json", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ExportCmd(), []string{})
		require.NoError(t, err)

		result := testutil.ParseJSON(t, output)
		assert.Equal(t, float64(1), result["version"])
		assert.NotEmpty(t, result["id"])
		assert.Len(t, result["workspaces"], 1)
		assert.Len(t, result["tasks"], 1)
	})

	t.Run("yaml file by extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "backup.yaml")
		output, err := cli.ExecuteCLICommand(t, app, ExportCmd(), []string{"--output", path})
		require.NoError(t, err)
		assert.Contains(t, output, "Exported 1 workspaces and 1 tasks")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "workspaces:")
		assert.Contains(t, string(data), "text: report")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, ExportCmd(), []string{"--format", "xml"})
		assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))
	})
}

func TestExportImportRoundTrip(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	work := cli.CreateTestWorkspace(t, db, "Work")
	home := cli.CreateTestWorkspace(t, db, "Home")
	cli.CreateTestTask(t, db, work, "report")
	cli.CreateTestTask(t, db, home, "laundry")

	path := filepath.Join(t.TempDir(), "backup.json")
	_, err := cli.ExecuteCLICommand(t, app, ExportCmd(), []string{"--output", path, "--quiet"})
	require.NoError(t, err)

	// Clobber the store, then restore it
	cli.CreateTestWorkspace(t, db, "Scratch")
	output, err := cli.ExecuteCLICommand(t, app, ImportCmd(), []string{
		"--file", path,
		"--mode", "replace",
		"--json",
	})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	summary := result["result"].(map[string]interface{})
	assert.Equal(t, "replace", summary["mode"])
	assert.Equal(t, float64(2), summary["workspacesCreated"])
	assert.Equal(t, float64(2), summary["tasksCreated"])

	assert.Equal(t, 2, countRows(t, db, "workspaces"))
	assert.Equal(t, 2, countRows(t, db, "tasks"))
}

func TestImportMergeFromStdin(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	work := cli.CreateTestWorkspace(t, db, "Work")
	cli.CreateTestTask(t, db, work, "existing")

	snapshot := `{
  "version": 1,
  "workspaces": [{"id": 7, "name": "Work"}, {"id": 8, "name": "Garden"}],
  "tasks": [
    {"id": 1, "text": "weed", "workspaceId": 8, "status": "active", "createdAt": 1700000000000, "completedAt": null},
    {"id": 2, "text": "plan", "workspaceId": 7, "status": "done", "createdAt": 1700000000000, "completedAt": 1700000001000}
  ]
}`

	output, err := cli.ExecuteCLICommandWithInput(t, app, ImportCmd(), []string{"--file", "-"}, snapshot)
	require.NoError(t, err)
	assert.Contains(t, output, "1 workspaces created, 1 merged")

	var count int
	err = db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM tasks WHERE workspace_id = ?", work).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, countRows(t, db, "workspaces"))
}

func TestImportMalformedLeavesStoreUntouched(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	work := cli.CreateTestWorkspace(t, db, "Work")
	cli.CreateTestTask(t, db, work, "keep me")

	cases := map[string]string{
		"garbage":            "not json at all",
		"empty object":       "{}",
		"unrelated document": `{"foo":"bar"}`,
		"json null":          "null",
		"dangling task ref":  `{"version":1,"workspaces":[],"tasks":[{"id":1,"text":"x","workspaceId":3,"status":"active","createdAt":1}]}`,
		"bad status":         `{"version":1,"workspaces":[{"id":1,"name":"A"}],"tasks":[{"id":1,"text":"x","workspaceId":1,"status":"later","createdAt":1}]}`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			output, err := cli.ExecuteCLICommandWithInput(t, app, ImportCmd(), []string{
				"--file", "-",
				"--mode", "replace",
				"--json",
			}, doc)
			require.Error(t, err)
			assert.Equal(t, clipkg.ExitDataErr, clipkg.ExitCode(err))
			assert.Contains(t, output, "MALFORMED_SNAPSHOT")

			assert.Equal(t, 1, countRows(t, db, "workspaces"))
			assert.Equal(t, 1, countRows(t, db, "tasks"))
		})
	}
}

func TestImportForcedReplaceOfEmptyObjectKeepsData(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	work := cli.CreateTestWorkspace(t, db, "Work")
	cli.CreateTestTask(t, db, work, "keep me")

	path := filepath.Join(t.TempDir(), "other.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))

	_, err := cli.ExecuteCLICommand(t, app, ImportCmd(), []string{
		"--file", path,
		"--mode", "replace",
		"--force",
	})
	require.Error(t, err)
	assert.Equal(t, clipkg.ExitDataErr, clipkg.ExitCode(err))
	assert.Equal(t, 1, countRows(t, db, "workspaces"))
	assert.Equal(t, 1, countRows(t, db, "tasks"))
}

func TestImportOptions(t *testing.T) {
	db, app := cli.SetupCLITest(t)
	cli.CreateTestWorkspace(t, db, "Work")

	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":1,"workspaces":[],"tasks":[]}`), 0o600))

	t.Run("invalid mode", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, ImportCmd(), []string{"--file", path, "--mode", "upsert"})
		assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, ImportCmd(), []string{"--file", filepath.Join(t.TempDir(), "nope.json")})
		assert.Equal(t, clipkg.ExitError, clipkg.ExitCode(err))
	})

	t.Run("replace from stdin needs force", func(t *testing.T) {
		_, err := cli.ExecuteCLICommandWithInput(t, app, ImportCmd(), []string{
			"--file", "-",
			"--mode", "replace",
		}, `{"version":1,"workspaces":[],"tasks":[]}`)
		assert.Equal(t, clipkg.ExitValidation, clipkg.ExitCode(err))
		assert.Equal(t, 1, countRows(t, db, "workspaces"))
	})

	t.Run("declined replace keeps data", func(t *testing.T) {
		output, err := cli.ExecuteCLICommandWithInput(t, app, ImportCmd(), []string{
			"--file", path,
			"--mode", "replace",
		}, "n\n")
		require.NoError(t, err)
		assert.Contains(t, output, "Cancelled")
		assert.Equal(t, 1, countRows(t, db, "workspaces"))
	})

	t.Run("forced replace empties store", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, ImportCmd(), []string{
			"--file", path,
			"--mode", "replace",
			"--force",
		})
		require.NoError(t, err)
		assert.Equal(t, 0, countRows(t, db, "workspaces"))
	})
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		flag, path string
		want       string
		wantErr    bool
	}{
		{"", "-", "json", false},
		{"", "a.yml", "yaml", false},
		{"", "a.txt", "json", false},
		{"YAML", "a.json", "yaml", false},
		{"toml", "a.json", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.flag+"|"+tt.path, func(t *testing.T) {
			got, err := resolveFormat(tt.flag, tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}
