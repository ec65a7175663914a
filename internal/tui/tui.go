// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface of the todo client.
//
// The screen shows the todo list, a form to add a todo and per-todo actions.
// Remote operations run as [tea.Cmd] values outside the UI loop; their
// results come back as messages and are rendered from the
// [todolist.TodoList] projection.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/todolist"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type TUI struct {
	todos     todolist.TodoList
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(todos todolist.TodoList, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{todos: todos, buildInfo: buildInfo, logger: log}
}

// Run shows the todo list and blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.todos, t.buildInfo, t.logger)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if ctx.Err() != nil {
			t.logger.Info().Msg("ui stopped: context done")
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}

	return nil
}
