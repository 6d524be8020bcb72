package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/doable/internal/app"
	"github.com/thenoetrevino/doable/internal/config"
	"github.com/thenoetrevino/doable/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	// db is set only when the CLI opened the database itself
	db *sql.DB
}

// NewCLI opens the database the configuration points at. The config stored
// in ctx is used when present, otherwise it is loaded from disk.
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, _ := ctx.Value(configKey).(*config.Config)
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	}

	db, err := database.Open(ctx, database.DefaultDBPath(cfg.DataDir))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		App:    app.New(db),
		Config: cfg,
		db:     db,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if err := c.App.Close(); err != nil {
		return err
	}
	if c.db == nil {
		return nil
	}
	if err := c.db.Close(); err != nil {
		slog.Error("failed to close database", "error", err)
		return err
	}
	return nil
}

// ColorScheme returns the configured theme, or the default one when no
// config was loaded
func (c *CLI) ColorScheme() config.ColorScheme {
	if c.Config == nil {
		return config.DefaultColorScheme()
	}
	return c.Config.ColorScheme
}
