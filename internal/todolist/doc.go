// Package todolist keeps the client-side todo list consistent with the todos
// backend.
//
// The [Synchronizer] owns an in-memory ordered mapping from todo id to todo.
// That mapping is the single source of truth for what is shown: the UI only
// renders the [View] projection of it. Remote operations (Load, Create,
// Delete) run through an [adapter.TodoAdapter]; the mapping is changed only
// after the backend confirms an operation, as one locked update.
//
// Failures are returned as [*OperationError] values, whose Notification
// method yields the text shown to the user. Every failure is logged.
package todolist
