// Copyright (c) 2026 Moim. All rights reserved.

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seonokim/moim/internal/platform/ctxutil"
	"github.com/seonokim/moim/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_CurrentAccount verifies that the authenticated identity can be
stored in context, and that its absence reads as anonymous.
*/
func TestContext_CurrentAccount(t *testing.T) {
	ctx := context.Background()
	identity := &sec.CurrentAccount{
		AccountID: 123,
		Username:  "서노김",
		Nickname:  "노을",
	}

	// 1. Initially should be nil (anonymous)
	assert.Nil(t, ctxutil.GetCurrentAccount(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithCurrentAccount(ctx, identity)
	retrieved := ctxutil.GetCurrentAccount(ctx)

	assert.NotNil(t, retrieved)
	assert.Equal(t, int64(123), retrieved.AccountID)
	assert.Equal(t, "노을", retrieved.Nickname)
}

/*
TestContext_SessionID verifies storage of the raw session cookie value.
*/
func TestContext_SessionID(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, ctxutil.GetSessionID(ctx))

	ctx = ctxutil.WithSessionID(ctx, "opaque-session-id")
	assert.Equal(t, "opaque-session-id", ctxutil.GetSessionID(ctx))
}
