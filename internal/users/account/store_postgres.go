// Copyright (c) 2026 Moim. All rights reserved.

/*
Package account (Postgres) implements the storage layer for member accounts.

# Schema Table Mapping
  - users.account: Identity, credentials, contact data, soft-delete flags.
*/
package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seonokim/moim/internal/platform/apperr"
	"github.com/seonokim/moim/internal/platform/database/schema"
)

// # Repository Implementation

// PostgresRepository implements [Repository] using pgx.
//
// Every query filters on delstatus so soft-deleted accounts are invisible
// to lookups and do not block username or email reuse.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres implementation for accounts.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// accountColumns is the SELECT list shared by every account read.
func accountColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.UserAccount.ID, schema.UserAccount.Username, schema.UserAccount.Password,
		schema.UserAccount.AuthLevel, schema.UserAccount.Nickname, schema.UserAccount.Name,
		schema.UserAccount.MobileNumber, schema.UserAccount.Email, schema.UserAccount.DelStatus,
		schema.UserAccount.DelDate, schema.UserAccount.RegDate, schema.UserAccount.UpdateDate,
	)
}

// scanAccount hydrates one account from a row.
func scanAccount(row pgx.Row) (*Account, error) {
	account := &Account{}
	err := row.Scan(
		&account.ID,
		&account.Username,
		&account.Password,
		&account.AuthLevel,
		&account.Nickname,
		&account.Name,
		&account.MobileNumber,
		&account.Email,
		&account.DelStatus,
		&account.DelDate,
		&account.RegDate,
		&account.UpdateDate,
	)
	if err != nil {
		return nil, err
	}
	return account, nil
}

/*
Create inserts a new row into users.account and backfills the generated ID.

Parameters:
  - context: context.Context
  - account: *Account

Returns:
  - error: Insert or constraint failures
*/
func (repository *PostgresRepository) Create(context context.Context, account *Account) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s`,
		schema.UserAccount.Table,
		schema.UserAccount.Username, schema.UserAccount.Password, schema.UserAccount.AuthLevel,
		schema.UserAccount.Nickname, schema.UserAccount.Name, schema.UserAccount.MobileNumber,
		schema.UserAccount.Email, schema.UserAccount.DelStatus,
		schema.UserAccount.RegDate, schema.UserAccount.UpdateDate,
		schema.UserAccount.ID,
	)

	err := repository.pool.QueryRow(context, query,
		account.Username,
		account.Password,
		account.AuthLevel,
		account.Nickname,
		account.Name,
		account.MobileNumber,
		account.Email,
		account.DelStatus,
		account.RegDate,
		account.UpdateDate,
	).Scan(&account.ID)

	// If the insert fails, return an error
	if err != nil {
		return fmt.Errorf("postgres_account_repo_create_failed: %w", err)
	}

	return nil
}

/*
FindByID retrieves a live account row by ID.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *Account: Hydrated account entity
  - error: apperr.AccountNotFound or database execution failure
*/
func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Account, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s = FALSE`,
		accountColumns(),
		schema.UserAccount.Table,
		schema.UserAccount.ID, schema.UserAccount.DelStatus,
	)

	account, err := scanAccount(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.AccountNotFound()
		}
		return nil, fmt.Errorf("postgres_account_repo_find_by_id_failed: %w", err)
	}

	return account, nil
}

/*
FindByUsername retrieves a live account row by exact username.

Description: Absence is reported as (nil, nil) so the login flow can map
an unknown username to its soft-failure result code.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - *Account: The matching account, or nil when none exists
  - error: Database execution failures only
*/
func (repository *PostgresRepository) FindByUsername(context context.Context, username string) (*Account, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s = FALSE`,
		accountColumns(),
		schema.UserAccount.Table,
		schema.UserAccount.Username, schema.UserAccount.DelStatus,
	)

	account, err := scanAccount(repository.pool.QueryRow(context, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("postgres_account_repo_find_by_username_failed: %w", err)
	}

	return account, nil
}

/*
ExistsByUsername reports whether a live account already holds the username.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - bool: True when taken
  - error: Database execution failures
*/
func (repository *PostgresRepository) ExistsByUsername(context context.Context, username string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = FALSE)`,
		schema.UserAccount.Table, schema.UserAccount.Username, schema.UserAccount.DelStatus)

	var exists bool
	if err := repository.pool.QueryRow(context, query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres_account_repo_exists_username_failed: %w", err)
	}
	return exists, nil
}

/*
ExistsByEmail reports whether a live account already holds the email address.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - bool: True when taken
  - error: Database execution failures
*/
func (repository *PostgresRepository) ExistsByEmail(context context.Context, email string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = FALSE)`,
		schema.UserAccount.Table, schema.UserAccount.Email, schema.UserAccount.DelStatus)

	var exists bool
	if err := repository.pool.QueryRow(context, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres_account_repo_exists_email_failed: %w", err)
	}
	return exists, nil
}

/*
List retrieves every live account in ascending ID order.

Parameters:
  - context: context.Context

Returns:
  - []*Account: All live accounts; empty slice when none exist
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context) ([]*Account, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = FALSE
		ORDER BY %s ASC`,
		accountColumns(),
		schema.UserAccount.Table,
		schema.UserAccount.DelStatus,
		schema.UserAccount.ID,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_account_repo_list_failed: %w", err)
	}
	defer rows.Close()

	accounts := []*Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres_account_repo_scan_failed: %w", err)
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}
