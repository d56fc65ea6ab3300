package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/paso-board/internal/board"
	"github.com/thenoetrevino/paso-board/internal/config"
	"github.com/thenoetrevino/paso-board/internal/database"
	"github.com/thenoetrevino/paso-board/internal/drag"
	"github.com/thenoetrevino/paso-board/internal/events"
	"github.com/thenoetrevino/paso-board/internal/notifications"
	"github.com/thenoetrevino/paso-board/internal/query"
	columnservice "github.com/thenoetrevino/paso-board/internal/services/column"
	mutationservice "github.com/thenoetrevino/paso-board/internal/services/mutation"
)

var (
	_ mutationservice.Mutator  = (*database.Repository)(nil)
	_ columnservice.ConfigSlot = (*database.ViewSlot)(nil)
	_ board.Source             = (*query.Engine)(nil)
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo *database.Repository
	db   *sql.DB // set when the app opened the database itself

	// Event system for live updates
	eventClient events.EventPublisher
	ownsEvents  bool

	view string

	// Service layer (business logic)
	Engine          *query.Engine
	ColumnService   columnservice.Service
	MutationService mutationservice.Service
	Board           *board.Board
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo *database.Repository, q query.Query, opts ...Option) *App {
	cfg := appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.view == "" {
		cfg.view = cfg.board.DefaultView
	}
	if cfg.view == "" {
		cfg.view = config.DefaultView
	}

	a := &App{repo: repo, view: cfg.view, eventClient: cfg.eventClient}
	if a.eventClient == nil {
		a.eventClient = events.NewBroker()
		a.ownsEvents = true
	}

	a.Engine = query.NewEngine(repo, q)
	a.ColumnService = columnservice.NewService(repo.Slot(cfg.view))
	a.MutationService = mutationservice.NewService(repo, a.eventClient, cfg.board.MutationConcurrency)

	boardOpts := []board.Option{board.WithDragManager(drag.NewManager(cfg.board.DragThreshold))}
	if cfg.notes != nil {
		boardOpts = append(boardOpts, board.WithNotifications(cfg.notes))
	}
	if cfg.onRefresh != nil {
		boardOpts = append(boardOpts, board.WithRefreshHook(cfg.onRefresh))
	}
	a.Board = board.New(a.Engine, a.ColumnService, a.MutationService, boardOpts...)

	cfg.logger.Debug("app initialized",
		"view", cfg.view,
		"group_by", q.GroupBy,
		"sorts", len(q.Sort),
		"concurrency", cfg.board.MutationConcurrency)
	return a
}

// Open initializes the database named by cfg and builds the app on top of it.
// The app owns the connection and closes it on Close.
func Open(ctx context.Context, cfg *config.Config, q query.Query, opts ...Option) (*App, error) {
	db, err := database.InitDB(ctx, cfg.Board.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	opts = append([]Option{WithBoardConfig(cfg.Board)}, opts...)
	a := New(database.NewRepository(db), q, opts...)
	a.db = db
	return a, nil
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() *database.Repository {
	return a.repo
}

// Events returns the publisher refresh events go through
func (a *App) Events() events.EventPublisher {
	return a.eventClient
}

// View returns the name of the view the board works on
func (a *App) View() string {
	return a.view
}

// Notifications returns the board's pending user-facing messages
func (a *App) Notifications() *notifications.State {
	return a.Board.Notifications()
}

// Close performs cleanup of application resources.
func (a *App) Close() error {
	var errs []error
	if a.ownsEvents {
		errs = append(errs, a.eventClient.Close())
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	return errors.Join(errs...)
}
