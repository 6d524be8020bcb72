// Package settings holds the cli commands that manage the config file
//
// e.g., doable config ...
package settings

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/doable/internal/cli"
	"github.com/thenoetrevino/doable/internal/config"
)

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	cmd.AddCommand(PathCmd())
	cmd.AddCommand(InitCmd())

	return cmd
}

// effectiveConfig returns the config loaded by the root command, or loads it
func effectiveConfig(cmd *cobra.Command) (*config.Config, error) {
	if cfg, ok := cli.ConfigFromContext(cmd.Context()); ok {
		return cfg, nil
	}
	return config.Load()
}
