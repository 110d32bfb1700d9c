// Package utils provides helpers shared by the transport layers: context
// keys, HTTP response writers, the resty client wrapper and ID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so keys cannot collide with
// string keys set by other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the context key holding the request trace ID.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace ID stored in ctx. ok is false when
// the value is missing or is not a string.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
