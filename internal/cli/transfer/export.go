package transfer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/doable/internal/cli"
	"github.com/thenoetrevino/doable/internal/models"
	transferservice "github.com/thenoetrevino/doable/internal/services/transfer"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every workspace and task to a snapshot",
		Long: `Write every workspace and task to a snapshot document.

The format follows the file extension (.yaml/.yml or JSON) unless --format
is given. With --output=- the snapshot is written to stdout.

Examples:
  doable export --output=backup.json
  doable export --output=backup.yaml
  doable export --format=yaml > backup.yaml
`,
		RunE: runExport,
	}

	cmd.Flags().StringP("output", "o", "-", "Destination file, or - for stdout")
	cmd.Flags().String("format", "", "Snapshot format: json or yaml")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Print the summary as JSON")
	cmd.Flags().Bool("quiet", false, "Minimal output (snapshot ID only)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	output, _ := cmd.Flags().GetString("output")
	formatFlag, _ := cmd.Flags().GetString("format")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	format, err := resolveFormat(formatFlag, output)
	if err != nil {
		return formatter.FailWithSuggestion("INVALID_FORMAT", err, "Use --format=json or --format=yaml")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("error closing CLI", "error", err)
		}
	}()

	snapshot, err := cliInstance.App.TransferService.Export(ctx)
	if err != nil {
		return formatter.Fail("EXPORT_ERROR", err)
	}

	if output == "-" {
		if err := transferservice.Encode(os.Stdout, snapshot, format); err != nil {
			return formatter.Fail("ENCODE_ERROR", err)
		}
		return nil
	}

	var buf bytes.Buffer
	if err := transferservice.Encode(&buf, snapshot, format); err != nil {
		return formatter.Fail("ENCODE_ERROR", err)
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o600); err != nil {
		return formatter.Fail("WRITE_ERROR", fmt.Errorf("failed to write %s: %w", output, err))
	}
	slog.Info("exported snapshot", "id", snapshot.ID, "path", output, "format", format)

	if quietMode {
		fmt.Println(snapshot.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":    true,
			"id":         snapshot.ID,
			"path":       output,
			"format":     format,
			"workspaces": len(snapshot.Workspaces),
			"tasks":      len(snapshot.Tasks),
		})
	}

	fmt.Printf("✓ Exported %s to %s\n", summarize(snapshot), output)
	return nil
}

// resolveFormat prefers the explicit flag and falls back to the file extension
func resolveFormat(flag, path string) (transferservice.Format, error) {
	if flag != "" {
		return transferservice.ParseFormat(flag)
	}
	if path == "-" {
		return transferservice.FormatJSON, nil
	}
	return transferservice.FormatFromPath(path), nil
}

func summarize(snapshot *models.Snapshot) string {
	return fmt.Sprintf("%d workspaces and %d tasks", len(snapshot.Workspaces), len(snapshot.Tasks))
}
