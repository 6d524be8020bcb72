package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/doable/internal/cli"
	"github.com/thenoetrevino/doable/internal/cli/settings"
	"github.com/thenoetrevino/doable/internal/cli/task"
	"github.com/thenoetrevino/doable/internal/cli/transfer"
	"github.com/thenoetrevino/doable/internal/cli/workspace"
	"github.com/thenoetrevino/doable/internal/config"
	"github.com/thenoetrevino/doable/internal/launcher"
	"github.com/thenoetrevino/doable/internal/logging"
)

// version is set at build time with -ldflags "-X .../cmd.version=..."
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "doable",
	Short: "doable - workspaces and tasks in your terminal",
	Long: `doable keeps task lists grouped into workspaces in a local SQLite store.

Run without arguments to open the interactive view, or use the subcommands
for scripting. Every subcommand accepts --json and --quiet.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadedConfig(cmd)
		if err != nil {
			return err
		}
		if err := launcher.Launch(cmd.Context(), cfg); err != nil {
			return fail(err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(workspace.WorkspaceCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(transfer.ExportCmd())
	rootCmd.AddCommand(transfer.ImportCmd())
	rootCmd.AddCommand(settings.ConfigCmd())

	if envHelp, err := config.EnvHelp(); err == nil {
		rootCmd.Long += "\n\n" + envHelp
	}
}

// setup loads the configuration once, starts file logging and hands the
// config to subcommands through the context
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fail(fmt.Errorf("failed to load configuration: %w", err))
	}
	if err := logging.Init(cfg.DataDir, cfg.LogLevel); err != nil {
		return fail(fmt.Errorf("failed to initialize logging: %w", err))
	}
	slog.Debug("starting", "command", cmd.CommandPath(), "version", version)

	cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
	return nil
}

// fail prints err and marks it as reported
func fail(err error) error {
	fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
	return cli.Exit(cli.ExitError, err)
}

func loadedConfig(cmd *cobra.Command) (*config.Config, error) {
	if cfg, ok := cli.ConfigFromContext(cmd.Context()); ok {
		return cfg, nil
	}
	return config.Load()
}

// Execute runs the root command
func Execute() error {
	defer logging.Close()
	return rootCmd.Execute()
}
