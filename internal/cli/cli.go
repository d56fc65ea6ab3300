package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/paso-board/internal/app"
	"github.com/thenoetrevino/paso-board/internal/config"
	"github.com/thenoetrevino/paso-board/internal/database"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// RepoKey injects an open repository (tests, embedding hosts) instead of
// opening the configured database
const RepoKey ContextKey = "repo"

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services
}

// WithRepository returns a context that makes commands use repo
func WithRepository(ctx context.Context, repo *database.Repository) context.Context {
	return context.WithValue(ctx, RepoKey, repo)
}

// LoadConfig reads the file named by --config, or the default config
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	if path := FlagString(cmd, FlagConfig); path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// GetCLIFromContext builds the app for a command from its flags.
// An injected repository is used when present; otherwise the configured
// database is opened and closed with the CLI. extra options are applied last.
func GetCLIFromContext(ctx context.Context, cmd *cobra.Command, extra ...app.Option) (*CLI, error) {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	q, err := QueryFromFlags(cmd)
	if err != nil {
		return nil, err
	}

	opts := []app.Option{app.WithBoardConfig(cfg.Board)}
	if view := FlagString(cmd, FlagView); view != "" {
		opts = append(opts, app.WithView(view))
	}
	opts = append(opts, extra...)

	if repo, ok := ctx.Value(RepoKey).(*database.Repository); ok && repo != nil {
		return &CLI{App: app.New(repo, q, opts...)}, nil
	}

	application, err := app.Open(ctx, cfg, q, opts...)
	if err != nil {
		return nil, err
	}
	return &CLI{App: application}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}
