package app

import (
	"log/slog"

	"github.com/thenoetrevino/paso-board/internal/board"
	"github.com/thenoetrevino/paso-board/internal/config"
	"github.com/thenoetrevino/paso-board/internal/events"
	"github.com/thenoetrevino/paso-board/internal/notifications"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient events.EventPublisher
	logger      *slog.Logger
	board       config.BoardConfig
	view        string
	notes       *notifications.State
	onRefresh   func(*board.Snapshot)
}

// WithEventPublisher sets the event publisher for the application.
// Without one the app creates its own in-process broker.
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithBoardConfig sets drag threshold, batch concurrency and default view
func WithBoardConfig(bc config.BoardConfig) Option {
	return func(cfg *appConfig) {
		cfg.board = bc
	}
}

// WithView selects the view whose column order the board uses
func WithView(view string) Option {
	return func(cfg *appConfig) {
		cfg.view = view
	}
}

// WithNotifications sets where user-facing messages go
func WithNotifications(n *notifications.State) Option {
	return func(cfg *appConfig) {
		cfg.notes = n
	}
}

// WithRefreshHook is called with every snapshot the board loads
func WithRefreshHook(fn func(*board.Snapshot)) Option {
	return func(cfg *appConfig) {
		cfg.onRefresh = fn
	}
}
