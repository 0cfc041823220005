// Package context tags request contexts with an ID so every log line of
// one tool call can be correlated.
package context

import (
	stdctx "context"

	"github.com/google/uuid"
)

type ctxKey int

const requestIDKey ctxKey = iota

// NewRequestID generates a unique request ID.
func NewRequestID() string {
	return uuid.New().String()
}

// WithRequestID returns a context carrying the given request ID.
func WithRequestID(parent stdctx.Context, requestID string) stdctx.Context {
	return stdctx.WithValue(parent, requestIDKey, requestID)
}

// EnsureRequestID returns the context unchanged when it already carries a
// request ID, otherwise attaches a fresh one. Tool handlers call this at
// the top of every call.
func EnsureRequestID(ctx stdctx.Context) stdctx.Context {
	if RequestIDFromContext(ctx) != "" {
		return ctx
	}
	return WithRequestID(ctx, NewRequestID())
}

// RequestIDFromContext extracts the request ID, or "" when the context
// carries none.
func RequestIDFromContext(ctx stdctx.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}
