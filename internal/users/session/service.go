// Copyright (c) 2026 Moim. All rights reserved.

package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/seonokim/moim/internal/platform/constants"
	"github.com/seonokim/moim/internal/platform/sec"
	"github.com/seonokim/moim/internal/users/account"
)

// AccountDirectory is the slice of the account service needed for
// credential checks during login.
type AccountDirectory interface {
	FindByUsername(context context.Context, username string) (*account.Account, error)
}

// # Service Layer

// Service implements the login/logout state machine.
//
// Credential failures are Outcomes, not errors: an error return is
// reserved for infrastructure faults (storage, hashing), which surface
// to the client as HTTP 500.
type Service struct {
	accounts AccountDirectory
	sessions Store
	logger   *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(accounts AccountDirectory, sessions Store, logger *slog.Logger) *Service {
	return &Service{
		accounts: accounts,
		sessions: sessions,
		logger:   logger,
	}
}

/*
Login attempts to authenticate a username/password pair.

Description: Holders of an active session are turned away (F-3) before
any credential work happens; their session is left untouched. An unknown
username (F-1) and a wrong password (F-2) are distinct soft outcomes. On
success a brand-new session ID is generated and bound to the account, so
a pre-login cookie value never becomes an authenticated session.

Parameters:
  - context: context.Context
  - current: *sec.CurrentAccount (Identity of the caller; nil when anonymous)
  - username: string (Raw client input)
  - password: string

Returns:
  - Outcome: The result code and human-readable message
  - string: The freshly issued session ID; empty unless login succeeded
  - error: Infrastructure failures only
*/
func (service *Service) Login(context context.Context, current *sec.CurrentAccount, username, password string) (Outcome, string, error) {
	if current != nil {
		return Outcome{CodeAlreadyLoggedIn, "You are already logged in"}, "", nil
	}

	found, err := service.accounts.FindByUsername(context, username)
	if err != nil {
		return Outcome{}, "", fmt.Errorf("session_service_login_lookup_failed: %w", err)
	}
	if found == nil {
		return Outcome{CodeNoSuchAccount, "No such account exists"}, "", nil
	}

	if !sec.CheckPasswordHash(password, found.Password) {
		service.logger.Info("login_rejected", slog.String("username", found.Username))
		return Outcome{CodeBadCredentials, "The password does not match"}, "", nil
	}

	// Session fixation defense: the ID is always freshly generated here.
	sessionID := sec.NewSessionID()
	identity := &sec.CurrentAccount{
		AccountID: found.ID,
		Username:  found.Username,
		Nickname:  found.Nickname,
	}
	if err := service.sessions.Set(context, sessionID, identity, constants.SessionTTL); err != nil {
		return Outcome{}, "", fmt.Errorf("session_service_login_persist_failed: %w", err)
	}

	service.logger.Info("login_succeeded",
		slog.Int64("account_id", found.ID),
		slog.String("username", found.Username))

	return Outcome{CodeLoggedIn, fmt.Sprintf("Welcome, %s", found.Nickname)}, sessionID, nil
}

/*
Logout terminates the caller's session, if any.

Description: Logging out without an active session is a successful no-op
(S-1), not an error. With an active session the record is destroyed and
S-2 confirms the state change.

Parameters:
  - context: context.Context
  - current: *sec.CurrentAccount (nil when anonymous)
  - sessionID: string (The cookie value; ignored when anonymous)

Returns:
  - Outcome: The result code and human-readable message
  - error: Infrastructure failures only
*/
func (service *Service) Logout(context context.Context, current *sec.CurrentAccount, sessionID string) (Outcome, error) {
	if current == nil {
		return Outcome{CodeNotLoggedIn, "You are not logged in"}, nil
	}

	if err := service.sessions.Delete(context, sessionID); err != nil {
		return Outcome{}, fmt.Errorf("session_service_logout_failed: %w", err)
	}

	service.logger.Info("logout_succeeded", slog.Int64("account_id", current.AccountID))

	return Outcome{CodeLoggedOut, "You have been logged out"}, nil
}

/*
Resolve maps a session ID to the identity it authenticates.

Description: Satisfies the authentication middleware's resolver contract.
Stale or unknown IDs resolve to a nil identity without error.

Parameters:
  - context: context.Context
  - sessionID: string

Returns:
  - *sec.CurrentAccount: The authenticated identity, or nil
  - error: Storage failures
*/
func (service *Service) Resolve(context context.Context, sessionID string) (*sec.CurrentAccount, error) {
	return service.sessions.Get(context, sessionID)
}
