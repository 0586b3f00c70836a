// Copyright (c) 2026 Moim. All rights reserved.

/*
Package account handles member registration and account directory lookups.

It owns the account entity, its uniqueness rules (username and email), and
password hashing at the storage boundary. Authentication state lives in the
session package; this package only answers who an account is.

# Architecture

  - Entities: Account.
  - Repository: Repository contract with PostgreSQL and in-memory backends.
  - Service: Registration validation, uniqueness enforcement, hashing.
  - HTTP: Form-encoded registration and JSON directory endpoints.
*/
package account

import (
	"context"
	"time"
)

// # Domain Entities

// Account represents a registered member.
//
// Password holds the bcrypt hash, never plaintext, and is excluded from
// every serialized representation.
type Account struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"` // NFC-normalized; unique among live accounts
	Password     string     `json:"-"`
	AuthLevel    int        `json:"authLevel"`
	Nickname     string     `json:"nickname"`
	Name         string     `json:"name"`
	MobileNumber string     `json:"mobileNumber"`
	Email        string     `json:"email"` // Unique among live accounts
	DelStatus    bool       `json:"delStatus"`
	DelDate      *time.Time `json:"delDate"`
	RegDate      time.Time  `json:"regDate"`
	UpdateDate   time.Time  `json:"updateDate"`
}

// # Repository Contract

// Repository defines the persistence contract for member accounts.
type Repository interface {
	/*
		Create persists a new account and assigns its generated ID.

		Parameters:
		  - context: context.Context
		  - account: *Account (ID populated on success)

		Returns:
		  - error: Storage or constraint failures
	*/
	Create(context context.Context, account *Account) error

	/*
		FindByID retrieves a live account by its numeric ID.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *Account: Loaded account entity
		  - error: apperr.AccountNotFound or storage failures
	*/
	FindByID(context context.Context, id int64) (*Account, error)

	/*
		FindByUsername retrieves a live account by its exact username.

		Description: Absence is not an error here. Login treats an unknown
		username as a soft failure, so the repository reports it as a nil
		account with a nil error.

		Parameters:
		  - context: context.Context
		  - username: string (NFC-normalized)

		Returns:
		  - *Account: The matching account, or nil when none exists
		  - error: Storage failures only
	*/
	FindByUsername(context context.Context, username string) (*Account, error)

	/*
		ExistsByUsername reports whether a live account holds the username.

		Parameters:
		  - context: context.Context
		  - username: string (NFC-normalized)

		Returns:
		  - bool: True when the username is taken
		  - error: Storage failures
	*/
	ExistsByUsername(context context.Context, username string) (bool, error)

	/*
		ExistsByEmail reports whether a live account holds the email address.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - bool: True when the address is taken
		  - error: Storage failures
	*/
	ExistsByEmail(context context.Context, email string) (bool, error)

	/*
		List retrieves every live account ordered by ascending ID.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Account: All live accounts; empty slice when none exist
		  - error: Storage failures
	*/
	List(context context.Context) ([]*Account, error)
}
