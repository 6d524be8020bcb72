package cli

import (
	"context"

	"github.com/thenoetrevino/doable/internal/app"
	"github.com/thenoetrevino/doable/internal/config"
)

type contextKey string

const (
	appKey    contextKey = "app"
	configKey contextKey = "config"
)

// WithApp stores an already built App in ctx. Commands executed with this
// context use it instead of opening the database from the config.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithConfig stores a loaded config in ctx
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// GetCLIFromContext returns a CLI backed by the App in ctx, or opens a new
// one. The caller must Close it either way.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		cfg, _ := ctx.Value(configKey).(*config.Config)
		return &CLI{App: a, Config: cfg}, nil
	}
	return NewCLI(ctx)
}

// ConfigFromContext returns the config stored by WithConfig
func ConfigFromContext(ctx context.Context) (*config.Config, bool) {
	cfg, ok := ctx.Value(configKey).(*config.Config)
	return cfg, ok && cfg != nil
}
