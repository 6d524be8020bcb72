package settings

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/doable/internal/cli"
	"github.com/thenoetrevino/doable/internal/config"
)

// InitCmd returns the config init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current configuration to the config file",
		Long: `Write the effective configuration (file values, environment overrides
and defaults) to the config file, so every key binding and color can be
edited in one place.

Examples:
  doable config init
  doable config init --force
`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	path, err := config.Path()
	if err != nil {
		return formatter.Fail("CONFIG_PATH_ERROR", err)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return formatter.FailWithSuggestion("CONFIG_EXISTS",
			fmt.Errorf("%w: %s already exists", cli.ErrInvalidArgument, path),
			"Re-run with --force to overwrite it")
	}

	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return formatter.Fail("CONFIG_LOAD_ERROR", err)
	}
	if err := cfg.Save(); err != nil {
		return formatter.Fail("CONFIG_WRITE_ERROR", fmt.Errorf("failed to write %s: %w", path, err))
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"path":    path,
		})
	}

	fmt.Printf("✓ Config written to %s\n", path)
	return nil
}
