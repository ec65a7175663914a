// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidTodoID is returned when a todo identifier is neither a JSON
// string nor a JSON number.
var ErrInvalidTodoID = errors.New("todo id must be a string or a number")

// TodoID is the opaque, server-assigned identifier of a todo.
//
// The backend may hand out ids as JSON numbers or JSON strings. TodoID keeps
// the textual value together with the form it arrived in, so it marshals back
// exactly as the server sent it. TodoID is comparable and can be used as a map
// key; the zero value means "no id".
type TodoID struct {
	value   string
	numeric bool
}

// NewTodoID returns a string-form identifier.
func NewTodoID(value string) TodoID {
	return TodoID{value: value}
}

// NumericTodoID returns a number-form identifier.
func NumericTodoID(value int64) TodoID {
	return TodoID{value: strconv.FormatInt(value, 10), numeric: true}
}

// String returns the textual form of the id. It is used verbatim as the
// {id} path segment of delete requests.
func (id TodoID) String() string {
	return id.value
}

// IsZero reports whether the id is unset.
func (id TodoID) IsZero() bool {
	return id.value == ""
}

// IsNumeric reports whether the id was received as a JSON number.
func (id TodoID) IsNumeric() bool {
	return id.numeric
}

// MarshalJSON encodes the id in the form it was received in.
func (id TodoID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

// UnmarshalJSON accepts a JSON string or a JSON number.
func (id *TodoID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return ErrInvalidTodoID
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			return ErrInvalidTodoID
		}
		*id = TodoID{value: s}
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return ErrInvalidTodoID
	}
	*id = TodoID{value: n.String(), numeric: true}
	return nil
}

// Todo is a single task record as rendered by the client.
type Todo struct {
	// ID is assigned by the server and is unique among displayed todos.
	ID TodoID `json:"id"`

	// Name is the required, non-empty title of the todo.
	Name string `json:"name"`

	// Description is optional free text. An empty description is not rendered.
	Description string `json:"description,omitempty"`
}

// HasDescription reports whether the todo carries a description worth
// rendering.
func (t Todo) HasDescription() bool {
	return t.Description != ""
}

// TodoData is the body of a create request.
type TodoData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
