// Copyright (c) 2026 Moim. All rights reserved.

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/seonokim/moim/internal/platform/ctxkey"
	"github.com/seonokim/moim/internal/platform/sec"
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
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Identity & Session

// WithCurrentAccount returns a new context with the authenticated account attached.
func WithCurrentAccount(ctx context.Context, account *sec.CurrentAccount) context.Context {
	return context.WithValue(ctx, ctxkey.KeyAccount, account)
}

// GetCurrentAccount retrieves the [*sec.CurrentAccount] from the context.
// It returns nil for anonymous requests — presence of the reference is the
// sole authentication signal.
func GetCurrentAccount(ctx context.Context) *sec.CurrentAccount {
	account, ok := ctx.Value(ctxkey.KeyAccount).(*sec.CurrentAccount)
	if !ok {
		return nil
	}
	return account
}

// WithSessionID returns a new context with the opaque session ID attached.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxkey.KeySessionID, sessionID)
}

// GetSessionID retrieves the opaque session ID from the context.
// Returns an empty string when the client presented no session cookie.
func GetSessionID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeySessionID).(string)
	return id
}
