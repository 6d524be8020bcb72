package settings

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/doable/internal/cli"
	"github.com/thenoetrevino/doable/internal/config"
)

// PathCmd returns the config path subcommand
func PathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the location of the config file",
		Args:  cobra.NoArgs,
		RunE:  runPath,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runPath(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	path, err := config.Path()
	if err != nil {
		return formatter.Fail("CONFIG_PATH_ERROR", err)
	}

	_, statErr := os.Stat(path)
	exists := statErr == nil

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"path":    path,
			"exists":  exists,
		})
	}

	fmt.Println(path)
	return nil
}
