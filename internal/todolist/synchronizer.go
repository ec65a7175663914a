// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package todolist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

var _ TodoList = (*Synchronizer)(nil)

// Synchronizer keeps the displayed todos in line with the backend.
//
// Every method is safe for concurrent use. Remote calls are made without
// holding the lock; the resulting change is applied as one locked update once
// the call returns. Operations in flight are not reconciled with each other.
type Synchronizer struct {
	adapter adapter.TodoAdapter
	logger  *logger.Logger

	mu    sync.RWMutex
	todos *orderedTodos
	// settled is set by the first successful operation; before that an empty
	// list is not known to be empty and the marker stays hidden.
	settled bool
	loaded  bool
}

// NewSynchronizer returns an empty, unsettled list backed by todoAdapter.
func NewSynchronizer(todoAdapter adapter.TodoAdapter, log *logger.Logger) *Synchronizer {
	return &Synchronizer{
		adapter: todoAdapter,
		logger:  log.WithComponent("todolist"),
		todos:   newOrderedTodos(),
	}
}

// Load requests the whole collection and appends every todo not displayed
// yet, in server order. Todos added while the request was in flight stay where
// they are. On failure the list is left untouched and the marker is not
// forced.
func (s *Synchronizer) Load(ctx context.Context) error {
	todos, err := s.adapter.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true

	if err != nil {
		return s.fail(OpLoad, err)
	}

	added, skipped := s.todos.merge(todos)
	if skipped > 0 {
		s.logger.Warn().Int("skipped", skipped).Msg("loaded todos with ids already displayed")
	}
	s.settled = true

	s.logger.Info().Int("added", added).Int("count", s.todos.len()).Msg("todos loaded")
	return nil
}

// Create sends a new todo to the backend and appends it with the id the
// backend assigned. The name is sent and stored exactly as typed; a name that
// is empty or only whitespace fails with [ErrNameRequired] before any request
// is made.
func (s *Synchronizer) Create(ctx context.Context, name, description string) (models.Todo, error) {
	if strings.TrimSpace(name) == "" {
		s.logger.Debug().Msg("create rejected: empty name")
		return models.Todo{}, &OperationError{Op: OpCreate, Err: ErrNameRequired}
	}

	id, err := s.adapter.Create(ctx, models.TodoData{Name: name, Description: description})
	if err != nil {
		return models.Todo{}, s.fail(OpCreate, err)
	}

	todo := models.Todo{ID: id, Name: name, Description: description}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.todos.add(todo) {
		return models.Todo{}, s.fail(OpCreate, fmt.Errorf("%w: %s", ErrDuplicateID, id))
	}
	s.settled = true

	s.logger.Info().Str("todo_id", id.String()).Msg("todo created")
	return todo, nil
}

// Delete removes the todo with id after confirm approves it and the backend
// confirms the deletion. A nil confirm counts as declined.
func (s *Synchronizer) Delete(ctx context.Context, id models.TodoID, confirm ConfirmFunc) error {
	todo, ok := s.Get(id)
	if !ok {
		return s.fail(OpDelete, fmt.Errorf("%w: %s", ErrUnknownTodo, id))
	}

	if confirm == nil || !confirm(todo) {
		s.logger.Debug().Str("todo_id", id.String()).Msg("delete not confirmed")
		return ErrNotConfirmed
	}

	if err := s.adapter.Delete(ctx, id); err != nil {
		return s.fail(OpDelete, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.todos.remove(id) {
		s.logger.Debug().Str("todo_id", id.String()).Msg("deleted todo was already gone")
	}
	s.settled = true

	s.logger.Info().Str("todo_id", id.String()).Msg("todo deleted")
	return nil
}

// View returns a snapshot of the current projection.
func (s *Synchronizer) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	todos := s.todos.values()
	return View{
		Todos:           todos,
		ShowEmptyMarker: s.settled && len(todos) == 0,
		Loaded:          s.loaded,
	}
}

// Get returns the displayed todo with id.
func (s *Synchronizer) Get(id models.TodoID) (models.Todo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.todos.get(id)
}

// Len returns the number of displayed todos.
func (s *Synchronizer) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.todos.len()
}

// fail logs err and wraps it.
func (s *Synchronizer) fail(op Op, err error) error {
	opErr := &OperationError{Op: op, Err: err}

	event := s.logger.Error().Err(err).Str("op", string(op))
	var srvErr *adapter.ServerError
	if errors.As(err, &srvErr) {
		event = event.Int("status", srvErr.StatusCode).Str("server_message", srvErr.Message())
	}
	event.Msg(opErr.Notification())

	return opErr
}
