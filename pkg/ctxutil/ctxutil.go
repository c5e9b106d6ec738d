// Package ctxutil carries request-scoped values through a context.
package ctxutil

import (
	"context"
	"log/slog"
)

type requestIDKey struct{}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// LogAttrs returns the request-scoped log attributes present in ctx.
func LogAttrs(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	if id := RequestIDFromCtx(ctx); id != "" {
		return []slog.Attr{slog.String("request_id", id)}
	}
	return nil
}
