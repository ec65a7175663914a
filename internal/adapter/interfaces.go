// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the todo client and
// the todos backend.
//
// The primary abstraction is [TodoAdapter], which decouples the todo list
// synchronizer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPTodoAdapter]) built on resty.
//
// Every backend response is a JSON envelope with a mandatory boolean
// "success" field. The envelope is checked against a JSON schema before it is
// trusted. Error values defined in errors.go let callers classify failures
// with [errors.Is] and [errors.As]:
//   - [ErrRejected] / [*ServerError] for envelopes with success=false;
//   - [ErrMalformedResponse] for bodies that are not a valid envelope;
//   - status sentinels ([ErrNotFound], [ErrInternalServerError], ...) for
//     non-2xx responses without a valid envelope;
//   - [ErrTransport] for network failures.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/todo_adapter_mock.go -package=mock

// TodoAdapter defines transport-agnostic communication with the todos
// backend. Every call is a single terminal attempt: implementations never
// retry.
type TodoAdapter interface {
	// List fetches the full todo collection in server order.
	List(ctx context.Context) ([]models.Todo, error)

	// Create asks the backend to store a new todo and returns the id the
	// backend assigned to it.
	Create(ctx context.Context, data models.TodoData) (models.TodoID, error)

	// Delete removes the todo with the given id on the backend.
	Delete(ctx context.Context, id models.TodoID) error
}
