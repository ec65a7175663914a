// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"

	"github.com/google/uuid"
)

// RequestIDHeader is the header every outbound request carries so that client
// log lines can be matched with backend logs.
const RequestIDHeader = "X-Request-ID"

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the key under which a caller-chosen request id is stored.
var RequestIDCtxKey = contextKey("requestID")

// NewRequestID returns a fresh, time-ordered request identifier.
func NewRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// WithRequestID stores requestID in ctx.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, requestID)
}

// GetRequestIDFromContext returns the request id stored in ctx.
// ok is false when no non-empty id was stored.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDCtxKey).(string)
	return requestID, ok && requestID != ""
}

// RequestIDFromContext returns the id stored in ctx or a new one.
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := GetRequestIDFromContext(ctx); ok {
		return requestID
	}
	return NewRequestID()
}
