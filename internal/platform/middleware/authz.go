// Copyright (c) 2026 Moim. All rights reserved.

package middleware

import (
	"context"
	"net/http"

	"github.com/seonokim/moim/internal/platform/apperr"
	"github.com/seonokim/moim/internal/platform/constants"
	"github.com/seonokim/moim/internal/platform/ctxutil"
	"github.com/seonokim/moim/internal/platform/respond"
	"github.com/seonokim/moim/internal/platform/sec"
)

// SessionResolver defines the interface needed to resolve sessions in middleware.
//
// # Why an interface?
//
// Defining SessionResolver here decouples the middleware from the session
// service implementation, allowing us to easily inject fakes during unit testing.
type SessionResolver interface {
	// Resolve returns the account bound to the given session ID, or nil when
	// the session does not exist or has expired. A non-nil error indicates a
	// session-store failure, not an absent session.
	Resolve(ctx context.Context, sessionID string) (*sec.CurrentAccount, error)
}

// Authenticate extracts and resolves the session cookie.
//
// # Flow
//  1. Check for the session ID cookie.
//  2. If absent, request proceeds as anonymous.
//  3. If present, look the session up via [SessionResolver].
//  4. Inject [*sec.CurrentAccount] and the session ID into the request context.
//
// A stale or unknown session ID also proceeds as anonymous: the cookie is an
// opaque hint, never an authentication signal by itself.
func Authenticate(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			cookie, err := request.Cookie(constants.SessionCookieName)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Session Resolution ─────────────────────────────────────────
			ctx := ctxutil.WithSessionID(request.Context(), cookie.Value)

			current, err := resolver.Resolve(ctx, cookie.Value)
			if err != nil {
				respond.Error(writer, request, apperr.Internal(err))
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			if current != nil {
				ctx = ctxutil.WithCurrentAccount(ctx, current)
			}

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireLogin blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. Presence of the
// session-bound account reference is the sole authentication signal.
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		current := ctxutil.GetCurrentAccount(request.Context())
		if current == nil {
			respond.Error(writer, request, apperr.Unauthorized())
			return
		}
		next.ServeHTTP(writer, request)
	})
}
