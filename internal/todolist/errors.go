package todolist

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
)

var (
	// ErrNameRequired is returned by Create for an empty or whitespace-only
	// name. No request is sent.
	ErrNameRequired = errors.New("name is required")
	// ErrNotConfirmed is returned by Delete when the user declines the
	// confirmation. No request is sent and nothing is shown to the user.
	ErrNotConfirmed = errors.New("deletion not confirmed")
	// ErrUnknownTodo is returned by Delete for an id that is not displayed.
	ErrUnknownTodo = errors.New("unknown todo")
	// ErrDuplicateID is returned by Create when the backend assigns an id that
	// is already displayed.
	ErrDuplicateID = errors.New("duplicate todo id")
)

// Op names a synchronizer operation.
type Op string

const (
	OpLoad   Op = "load"
	OpCreate Op = "create"
	OpDelete Op = "delete"
)

// OperationError is a failed Load, Create or Delete.
type OperationError struct {
	Op  Op
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s todos: %v", e.Op, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Notification returns the message shown to the user for this failure.
func (e *OperationError) Notification() string {
	return FailureMessage(e.Op, e.Err)
}

// FailureMessage renders the user notification for a failed operation.
// Server rejections show the raw response so every backend detail reaches
// the user.
func FailureMessage(op Op, err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrNameRequired) {
		return MsgNameRequired
	}

	detail := err.Error()
	var serverErr *adapter.ServerError
	if errors.As(err, &serverErr) {
		detail = serverErr.Detail()
	}

	switch op {
	case OpLoad:
		return MsgFetchFailed + ": " + detail
	case OpCreate:
		return MsgCreateFailed + ": " + detail
	case OpDelete:
		return MsgDeleteFailed + ": " + detail
	default:
		return detail
	}
}

// Notification returns the user notification for any error returned by the
// synchronizer. It is empty for a declined deletion.
func Notification(err error) string {
	if err == nil || errors.Is(err, ErrNotConfirmed) {
		return ""
	}

	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Notification()
	}
	return err.Error()
}
