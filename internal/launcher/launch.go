package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/doable/internal/app"
	"github.com/thenoetrevino/doable/internal/config"
	"github.com/thenoetrevino/doable/internal/database"
	"github.com/thenoetrevino/doable/internal/tui"
)

// Launch opens the store configured in cfg and runs the TUI until the user
// quits or the process is interrupted
func Launch(ctx context.Context, cfg *config.Config) error {
	// Root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := database.Open(ctx, database.DefaultDBPath(cfg.DataDir))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	application := app.New(db, app.WithLogger(slog.Default()))
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing app", "error", err)
		}
	}()

	model := tui.InitialModel(ctx, application, cfg)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
