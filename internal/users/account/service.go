// Copyright (c) 2026 Moim. All rights reserved.

package account

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/seonokim/moim/internal/platform/apperr"
	"github.com/seonokim/moim/internal/platform/sec"
	"github.com/seonokim/moim/internal/platform/validate"
)

// Password bounds enforced at registration. The upper bound is in bytes,
// not characters: bcrypt truncates input beyond 72 bytes and newer
// versions reject it outright.
const (
	MinPasswordLength = 8
	MaxPasswordBytes  = 72
)

// # Service Layer

// Service orchestrates business logic for member accounts.
//
// Registration is the only write path: it normalizes the username,
// validates the payload, enforces uniqueness, and hashes the password
// before anything touches storage.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
	}
}

// RegisterInput carries the client-supplied registration fields.
type RegisterInput struct {
	Username     string
	Password     string
	Nickname     string
	Name         string
	MobileNumber string
	Email        string
}

// # Registration

/*
Register validates and persists a new member account.

Description: The username is NFC-normalized before any rule runs, so
composed and decomposed Hangul spellings occupy the same identity. Each
violated uniqueness constraint contributes its own field error, carrying
the rejected value. The stored row is read back and returned, mirroring
the creation-verification rule of the board.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *Account: The stored account as read back from the repository
  - error: Validation, uniqueness, or storage failures
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*Account, error) {
	username := validate.NormalizeUsername(input.Username)

	v := &validate.Validator{}
	v.Required("username", username).Username("username", username)
	v.Required("password", input.Password).
		MinLen("password", input.Password, MinPasswordLength).
		MaxBytes("password", input.Password, MaxPasswordBytes)
	v.Required("nickname", input.Nickname).MaxLen("nickname", input.Nickname, 30)
	v.Required("name", input.Name).MaxLen("name", input.Name, 50)
	v.Required("mobileNumber", input.MobileNumber).MaxLen("mobileNumber", input.MobileNumber, 20)
	v.Required("email", input.Email).Email("email", input.Email)
	if err := v.Err(); err != nil {
		return nil, err
	}

	// Business: one field error per violated uniqueness constraint
	duplicates := &validate.Validator{}

	usernameTaken, err := service.repository.ExistsByUsername(context, username)
	if err != nil {
		return nil, fmt.Errorf("account_service_username_check_failed: %w", err)
	}
	duplicates.Custom("username", usernameTaken, username, "Username is already in use")

	emailTaken, err := service.repository.ExistsByEmail(context, input.Email)
	if err != nil {
		return nil, fmt.Errorf("account_service_email_check_failed: %w", err)
	}
	duplicates.Custom("email", emailTaken, input.Email, "Email is already in use")

	if err := duplicates.Err(); err != nil {
		return nil, err
	}

	passwordHash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("account_service_hash_failed: %w", err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	account := &Account{
		Username:     username,
		Password:     passwordHash,
		AuthLevel:    0,
		Nickname:     input.Nickname,
		Name:         input.Name,
		MobileNumber: input.MobileNumber,
		Email:        input.Email,
		RegDate:      now,
		UpdateDate:   now,
	}

	if err := service.repository.Create(context, account); err != nil {
		return nil, fmt.Errorf("account_service_register_failed: %w", err)
	}

	// Verify the write by reading the row back. A failure here is a
	// persistence inconsistency, never a client error, so it must not
	// surface as the directory's not-found condition.
	created, err := service.repository.FindByID(context, account.ID)
	if err != nil {
		service.logger.Error("account_register_verification_failed",
			slog.Int64("account_id", account.ID),
			slog.String("error", err.Error()))
		return nil, apperr.Internal(fmt.Errorf("account_service_register_verification_failed: %w", err))
	}

	service.logger.Info("account_registered",
		slog.Int64("account_id", created.ID),
		slog.String("username", created.Username))

	return created, nil
}

// # Directory Lookups

/*
Get retrieves a single live account by ID.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *Account: The hydrated account
  - error: apperr.AccountNotFound or storage failures
*/
func (service *Service) Get(context context.Context, id int64) (*Account, error) {
	account, err := service.repository.FindByID(context, id)
	if err != nil {
		if apperr.IsAppError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("account_service_get_failed: %w", err)
	}
	return account, nil
}

/*
FindByUsername retrieves a live account by username, normalizing first.

Description: Used by the session service during login. An unknown
username yields (nil, nil) so the caller can map absence to its own
soft-failure semantics.

Parameters:
  - context: context.Context
  - username: string (raw client input)

Returns:
  - *Account: The matching account, or nil when none exists
  - error: Storage failures only
*/
func (service *Service) FindByUsername(context context.Context, username string) (*Account, error) {
	account, err := service.repository.FindByUsername(context, validate.NormalizeUsername(username))
	if err != nil {
		return nil, fmt.Errorf("account_service_find_by_username_failed: %w", err)
	}
	return account, nil
}

/*
List retrieves the full member directory in ascending ID order.

Parameters:
  - context: context.Context

Returns:
  - []*Account: All live accounts; empty slice when none exist, never nil
  - error: Storage failures
*/
func (service *Service) List(context context.Context) ([]*Account, error) {
	accounts, err := service.repository.List(context)
	if err != nil {
		return nil, fmt.Errorf("account_service_list_failed: %w", err)
	}
	if accounts == nil {
		accounts = []*Account{}
	}
	return accounts, nil
}
