package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/todolist"
	"github.com/MKhiriev/go-todo-keeper/internal/tui"
	"github.com/MKhiriev/go-todo-keeper/models"
)

var _ Client = (*App)(nil)

type App struct {
	ui     UI
	logger *logger.Logger
}

// NewApp builds the HTTP adapter for cfg, the todo list on top of it and
// the terminal UI showing that list.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	todoAdapter, err := adapter.NewHTTPTodoAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create todo adapter: %w", err)
	}

	todos := todolist.NewSynchronizer(todoAdapter, log)

	return newApp(tui.New(todos, buildInfo, log), log), nil
}

func newApp(ui UI, log *logger.Logger) *App {
	return &App{ui: ui, logger: log}
}

// Run blocks until the UI exits. SIGINT and SIGTERM cancel the context
// handed to the UI.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = a.logger.WithContext(ctx)

	a.logger.Info().Msg("client started")
	if err := a.ui.Run(ctx); err != nil {
		a.logger.Error().Err(err).Msg("client stopped with error")
		return err
	}
	a.logger.Info().Msg("client stopped")

	return nil
}
