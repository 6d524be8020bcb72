package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/doable/internal/database"
	taskservice "github.com/thenoetrevino/doable/internal/services/task"
	transferservice "github.com/thenoetrevino/doable/internal/services/transfer"
	workspaceservice "github.com/thenoetrevino/doable/internal/services/workspace"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db   *sql.DB
	repo database.DataStore

	Logger *slog.Logger

	// Service layer (business logic)
	TaskService      taskservice.Service
	WorkspaceService workspaceservice.Service
	TransferService  transferservice.Service
}

// New creates a new App with all services initialized.
// The caller keeps ownership of db and closes it after Close.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	repo := database.NewRepository(db)

	var taskOpts []taskservice.Option
	var transferOpts []transferservice.Option
	if cfg.clock != nil {
		taskOpts = append(taskOpts, taskservice.WithClock(cfg.clock))
		transferOpts = append(transferOpts, transferservice.WithClock(cfg.clock))
	}

	return &App{
		db:               db,
		repo:             repo,
		Logger:           cfg.logger,
		TaskService:      taskservice.NewService(repo, taskOpts...),
		WorkspaceService: workspaceservice.NewService(repo),
		TransferService:  transferservice.NewService(repo, transferOpts...),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close releases application resources. The database handle is not closed.
func (a *App) Close() error {
	a.Logger.Debug("app closed")
	return nil
}
