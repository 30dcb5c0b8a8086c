package contextutil

import (
	"context"

	"go.uber.org/zap"
)

type contextKey string

const (
	requestIDKey   contextKey = "request_id"
	principalIDKey contextKey = "principal_id"
	loggerKey      contextKey = "logger"
)

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

func WithPrincipalID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, principalIDKey, id)
}

func GetPrincipalID(ctx context.Context) string {
	if id, ok := ctx.Value(principalIDKey).(string); ok {
		return id
	}
	return ""
}

// WithLogger stores a request-scoped logger, usually already decorated with
// request_id.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request logger, falling back to defaultLogger and then
// to a no-op logger so callers never get nil.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}
	if defaultLogger != nil {
		return defaultLogger
	}
	return zap.NewNop()
}
