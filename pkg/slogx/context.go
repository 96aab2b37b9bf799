package slogx

import (
	"context"
	"log/slog"
)

// loggerKey holds the request logger. HTTPMiddleware stores one carrying the
// request id; AuthnMiddleware later replaces it with one that also names the
// caller.
type loggerKey struct{}

// WithContext stores logger in ctx for FromContext to find.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger tagged for the current request. Code running
// outside a request (the CLI, housekeeping) gets slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// With adds attributes to the request logger in ctx. Tags already on it,
// such as req_id, are kept.
func With(ctx context.Context, args ...any) context.Context {
	return WithContext(ctx, FromContext(ctx).With(args...))
}

// WithUser tags the request logger with the authenticated caller, so service
// logs such as "vote recorded" can be traced to an account.
func WithUser(ctx context.Context, userID, role string) context.Context {
	return With(ctx, "user_id", userID, "role", role)
}
