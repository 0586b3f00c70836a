// Copyright (c) 2026 Moim. All rights reserved.

package session_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seonokim/moim/internal/platform/sec"
	"github.com/seonokim/moim/internal/users/account"
	"github.com/seonokim/moim/internal/users/session"
)

// fixture wires a session service over in-memory stores with one
// registered account (username "서노김", password "correct horse battery").
func fixture(t *testing.T) (*session.Service, *sec.CurrentAccount) {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	accounts := account.NewService(account.NewMemoryRepository(), logger)

	registered, err := accounts.Register(context.Background(), account.RegisterInput{
		Username:     "서노김",
		Password:     "correct horse battery",
		Nickname:     "노을",
		Name:         "김서노",
		MobileNumber: "010-1234-5678",
		Email:        "seono@moim.app",
	})
	require.NoError(t, err)

	service := session.NewService(accounts, session.NewMemoryStore(), logger)
	identity := &sec.CurrentAccount{
		AccountID: registered.ID,
		Username:  registered.Username,
		Nickname:  registered.Nickname,
	}
	return service, identity
}

/*
TestService_Login tests the credential outcomes of the login state machine.
*/
func TestService_Login(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		password   string
		resultCode string
		hasSession bool
	}{
		{"success", "서노김", "correct horse battery", session.CodeLoggedIn, true},
		{"unknown_username", "없는사람", "correct horse battery", session.CodeNoSuchAccount, false},
		{"wrong_password", "서노김", "wrong password", session.CodeBadCredentials, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := fixture(t)

			outcome, sessionID, err := service.Login(context.Background(), nil, tt.username, tt.password)
			require.NoError(t, err)

			assert.Equal(t, tt.resultCode, outcome.ResultCode)
			if tt.hasSession {
				assert.NotEmpty(t, sessionID)
			} else {
				assert.Empty(t, sessionID)
			}
		})
	}
}

/*
TestService_Login_AlreadyAuthenticated tests that active session holders
are turned away without touching their session.
*/
func TestService_Login_AlreadyAuthenticated(t *testing.T) {
	service, _ := fixture(t)
	ctx := context.Background()

	_, sessionID, err := service.Login(ctx, nil, "서노김", "correct horse battery")
	require.NoError(t, err)

	current, err := service.Resolve(ctx, sessionID)
	require.NoError(t, err)
	require.NotNil(t, current)

	outcome, newID, err := service.Login(ctx, current, "서노김", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, session.CodeAlreadyLoggedIn, outcome.ResultCode)
	assert.Empty(t, newID)

	// The original session survives the rejected attempt.
	still, err := service.Resolve(ctx, sessionID)
	require.NoError(t, err)
	assert.NotNil(t, still)
}

/*
TestService_Login_IssuesFreshSessionIDs tests the fixation defense:
every successful login must mint a distinct session ID.
*/
func TestService_Login_IssuesFreshSessionIDs(t *testing.T) {
	service, _ := fixture(t)
	ctx := context.Background()

	_, first, err := service.Login(ctx, nil, "서노김", "correct horse battery")
	require.NoError(t, err)

	// Simulate the first session ending before a second login.
	current, err := service.Resolve(ctx, first)
	require.NoError(t, err)
	_, err = service.Logout(ctx, current, first)
	require.NoError(t, err)

	_, second, err := service.Login(ctx, nil, "서노김", "correct horse battery")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

/*
TestService_Resolve tests session resolution for live, destroyed, and
unknown session IDs.
*/
func TestService_Resolve(t *testing.T) {
	service, identity := fixture(t)
	ctx := context.Background()

	_, sessionID, err := service.Login(ctx, nil, "서노김", "correct horse battery")
	require.NoError(t, err)

	resolved, err := service.Resolve(ctx, sessionID)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, identity.AccountID, resolved.AccountID)
	assert.Equal(t, "노을", resolved.Nickname)

	// Unknown IDs resolve to anonymous, not an error.
	missing, err := service.Resolve(ctx, "never-issued")
	require.NoError(t, err)
	assert.Nil(t, missing)

	// A destroyed session no longer resolves.
	_, err = service.Logout(ctx, resolved, sessionID)
	require.NoError(t, err)

	gone, err := service.Resolve(ctx, sessionID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

/*
TestService_Logout tests both logout outcomes.
*/
func TestService_Logout(t *testing.T) {
	service, identity := fixture(t)
	ctx := context.Background()

	// Anonymous logout is a successful no-op.
	outcome, err := service.Logout(ctx, nil, "")
	require.NoError(t, err)
	assert.Equal(t, session.CodeNotLoggedIn, outcome.ResultCode)

	_, sessionID, err := service.Login(ctx, nil, "서노김", "correct horse battery")
	require.NoError(t, err)

	outcome, err = service.Logout(ctx, identity, sessionID)
	require.NoError(t, err)
	assert.Equal(t, session.CodeLoggedOut, outcome.ResultCode)
}
