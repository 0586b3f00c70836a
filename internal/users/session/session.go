// Copyright (c) 2026 Moim. All rights reserved.

/*
Package session implements server-side login state.

A session is an opaque ID handed to the client in a cookie, mapped
server-side to the identity of the logged-in account. The server-side
record is the only authentication signal: no claim carried by the client
is ever trusted on its own.

# Architecture

  - Store: Session record persistence (Redis in production, memory in tests).
  - Service: The login/logout state machine with its soft-failure outcomes.
  - HTTP: Cookie issuing and clearing around POST /login and POST /logout.

# Security

Every successful login issues a brand-new session ID, so an ID planted
before authentication never survives into an authenticated session.
*/
package session

import (
	"context"
	"time"

	"github.com/seonokim/moim/internal/platform/sec"
)

// Login and logout result codes. Failed credential checks are soft
// outcomes delivered in a 200 envelope, not HTTP errors: the request
// itself succeeded, the login attempt did not.
const (
	CodeLoggedIn        = "S-1" // Login succeeded, session issued
	CodeNotLoggedIn     = "S-1" // Logout without an active session is a no-op
	CodeLoggedOut       = "S-2" // Logout destroyed an active session
	CodeNoSuchAccount   = "F-1" // Unknown username
	CodeBadCredentials  = "F-2" // Password mismatch
	CodeAlreadyLoggedIn = "F-3" // Active session holders cannot log in again
)

// Outcome is the result of a login or logout attempt, successful or not.
type Outcome struct {
	ResultCode string
	Message    string
}

// # Store Contract

// Store defines the persistence contract for session records.
type Store interface {
	/*
		Set writes a session record with the given lifetime.

		Parameters:
		  - context: context.Context
		  - sessionID: string (Opaque ID; also the storage key)
		  - account: *sec.CurrentAccount
		  - ttl: time.Duration

		Returns:
		  - error: Storage failures
	*/
	Set(context context.Context, sessionID string, account *sec.CurrentAccount, ttl time.Duration) error

	/*
		Get loads the identity bound to a session ID.

		Description: An unknown or expired ID is not an error; it yields a
		nil identity so callers treat the request as anonymous.

		Parameters:
		  - context: context.Context
		  - sessionID: string

		Returns:
		  - *sec.CurrentAccount: The bound identity, or nil when absent
		  - error: Storage failures only
	*/
	Get(context context.Context, sessionID string) (*sec.CurrentAccount, error)

	/*
		Delete destroys a session record. Deleting an absent record is a no-op.

		Parameters:
		  - context: context.Context
		  - sessionID: string

		Returns:
		  - error: Storage failures
	*/
	Delete(context context.Context, sessionID string) error
}
