// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/todolist"
)

const serverUnavailableHint = "The network is down or the server is unavailable."

// failureText renders the overlay text for err. It is empty when nothing
// should be shown.
func failureText(err error) string {
	message := todolist.Notification(err)
	if message == "" {
		return ""
	}
	if isServerUnavailable(err) {
		return message + "\n\n" + serverUnavailableHint
	}
	return message
}

func isServerUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, adapter.ErrTransport) ||
		errors.Is(err, adapter.ErrBadGateway) ||
		errors.Is(err, adapter.ErrServiceUnavailable) {
		return true
	}

	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}
