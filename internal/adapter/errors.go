package adapter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRejected is matched by every [*ServerError]: the backend answered
	// with a well-formed envelope whose success flag is false.
	ErrRejected = errors.New("server rejected request")
	// ErrMalformedResponse means the response body is not a valid envelope.
	ErrMalformedResponse = errors.New("malformed server response")
	// ErrTransport wraps network level failures (refused connection, timeout).
	ErrTransport = errors.New("transport failure")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// ServerError is returned when the backend reports a failure inside the
// response envelope.
type ServerError struct {
	// StatusCode is the HTTP status the envelope arrived with.
	StatusCode int
	// Messages holds the error details listed by the backend.
	Messages []string
	// Body is the compacted response body.
	Body string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRejected, e.Body)
}

func (e *ServerError) Unwrap() error {
	return ErrRejected
}

// Detail returns the text shown to the user: the raw response body, which
// always includes every message the backend sent.
func (e *ServerError) Detail() string {
	return e.Body
}

// Message joins the backend messages, falling back to the body.
func (e *ServerError) Message() string {
	if len(e.Messages) == 0 {
		return e.Body
	}
	return strings.Join(e.Messages, "; ")
}
