// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/backlist/internal/platform/ctxkey"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok || logger == nil {
		return slog.Default()
	}
	return logger
}

// # Admin Session

// AdminSession describes how the current request was authenticated.
type AdminSession struct {
	// Method is "cookie", "bearer" or "basic".
	Method string
	// TokenID is the session token id; empty for basic credentials.
	TokenID string
}

// WithAdmin returns a new context marking the request as admin-authenticated.
func WithAdmin(ctx context.Context, session *AdminSession) context.Context {
	return context.WithValue(ctx, ctxkey.KeyAdmin, session)
}

// GetAdmin retrieves the [*AdminSession] from the context, or nil.
func GetAdmin(ctx context.Context) *AdminSession {
	session, ok := ctx.Value(ctxkey.KeyAdmin).(*AdminSession)
	if !ok {
		return nil
	}
	return session
}
