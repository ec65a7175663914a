// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Envelope is the wrapper around every response of the todos backend.
//
// Success is the only mandatory field. On success Data carries the payload of
// the endpoint (a list of todos, a newly assigned id, or nothing). On failure
// the backend reports details either as a list in Errors or as a single Error
// value.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Errors  []string        `json:"errors,omitempty"`
	Error   json.RawMessage `json:"error,omitempty"`
}

// HasData reports whether the envelope carries a non-null data payload.
func (e Envelope) HasData() bool {
	return len(e.Data) > 0 && string(e.Data) != "null"
}
