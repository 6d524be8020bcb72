package transfer

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/doable/internal/cli"
	transferservice "github.com/thenoetrevino/doable/internal/services/transfer"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load a snapshot into the store",
		Long: `Load a snapshot document into the store.

Modes:
  merge    keep existing data; workspaces with a matching name are merged
  replace  delete every workspace and task first

The whole snapshot is validated before anything is written. A malformed
snapshot leaves the store untouched.

Examples:
  doable import --file=backup.json
  doable import --file=backup.yaml --mode=replace --force
  cat backup.json | doable import --file=- --json
`,
		RunE: runImport,
	}

	cmd.Flags().StringP("file", "f", "", "Snapshot file, or - for stdin (required)")
	if err := cmd.MarkFlagRequired("file"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cmd.Flags().String("mode", "", "Import mode: merge or replace (default from config)")
	cmd.Flags().String("format", "", "Snapshot format: json or yaml")
	cmd.Flags().Bool("force", false, "Skip confirmation for replace mode")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	file, _ := cmd.Flags().GetString("file")
	modeFlag, _ := cmd.Flags().GetString("mode")
	formatFlag, _ := cmd.Flags().GetString("format")
	force, _ := cmd.Flags().GetBool("force")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	format, err := resolveFormat(formatFlag, file)
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

	if modeFlag == "" {
		modeFlag = string(transferservice.ModeMerge)
		if cliInstance.Config != nil && cliInstance.Config.ImportMode != "" {
			modeFlag = cliInstance.Config.ImportMode
		}
	}
	mode, err := transferservice.ParseMode(modeFlag)
	if err != nil {
		return formatter.FailWithSuggestion("INVALID_MODE", err, "Use --mode=merge or --mode=replace")
	}

	var in io.Reader
	if file == "-" {
		in = cmd.InOrStdin()
	} else {
		f, err := os.Open(file)
		if err != nil {
			return formatter.Fail("READ_ERROR", fmt.Errorf("failed to open %s: %w", file, err))
		}
		defer func() {
			if err := f.Close(); err != nil {
				slog.Error("failed to close snapshot file", "error", err)
			}
		}()
		in = f
	}

	snapshot, err := transferservice.Decode(in, format)
	if err != nil {
		return formatter.Fail("MALFORMED_SNAPSHOT", err)
	}
	if err := transferservice.Validate(snapshot); err != nil {
		return formatter.Fail("MALFORMED_SNAPSHOT", err)
	}

	if mode == transferservice.ModeReplace && !force && !jsonOutput && !quietMode {
		if file == "-" {
			return formatter.FailWithSuggestion("CONFIRMATION_REQUIRED",
				fmt.Errorf("%w: replace from stdin needs --force", cli.ErrInvalidArgument),
				"Re-run with --force")
		}
		prompt := fmt.Sprintf("Replace ALL workspaces and tasks with %s from %s?", summarize(snapshot), file)
		if !cli.Confirm(cmd.OutOrStdout(), cmd.InOrStdin(), prompt) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
	}

	result, err := cliInstance.App.TransferService.Import(ctx, snapshot, mode)
	if err != nil {
		return formatter.Fail("IMPORT_ERROR", err)
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"result":  result,
		})
	}

	fmt.Printf("✓ Imported %d tasks (%s): %d workspaces created, %d merged\n",
		result.TasksCreated, result.Mode, result.WorkspacesCreated, result.WorkspacesMerged)
	return nil
}
