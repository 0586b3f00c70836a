// Copyright (c) 2026 Moim. All rights reserved.

package sec

// CurrentAccount is the identity record attached to an authenticated session.
//
// # Why a dedicated type?
//
// Middleware and handlers need the acting account's identity without pulling
// in the account domain package (which would create an import cycle through
// the authorization gates). Only the fields needed for authorization and
// personalized messages are carried.
type CurrentAccount struct {
	// AccountID is the identifier of the logged-in account.
	AccountID int64 `json:"accountId"`
	// Username is the login name of the account.
	Username string `json:"username"`
	// Nickname is the display alias used in user-facing messages.
	Nickname string `json:"nickname"`
}
