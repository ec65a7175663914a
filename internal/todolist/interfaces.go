// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package todolist

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// ConfirmFunc is asked before a todo is deleted; returning false cancels the
// deletion.
type ConfirmFunc func(todo models.Todo) bool

// Confirmed is a ConfirmFunc for callers that already asked the user.
func Confirmed(models.Todo) bool { return true }

// TodoList is the todo list as seen by the user interface.
type TodoList interface {
	// Load fetches the full collection and replaces the list with it.
	Load(ctx context.Context) error
	// Create validates name, stores a new todo on the backend and appends it.
	Create(ctx context.Context, name, description string) (models.Todo, error)
	// Delete asks confirm, removes the todo on the backend and then locally.
	Delete(ctx context.Context, id models.TodoID, confirm ConfirmFunc) error

	// View returns a snapshot of what should be rendered.
	View() View
	// Get looks a displayed todo up by id.
	Get(id models.TodoID) (models.Todo, bool)
	// Len returns the number of displayed todos.
	Len() int
}
