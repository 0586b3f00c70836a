// Copyright (c) 2026 Moim. All rights reserved.

package account

import (
	"context"
	"sync"

	"github.com/seonokim/moim/internal/platform/apperr"
)

// # In-Memory Repository

// MemoryRepository implements [Repository] with process-local state.
//
// Each instance owns its own storage, so independent instances never
// observe each other's writes. Intended for tests and local development.
type MemoryRepository struct {
	mutex    sync.RWMutex
	accounts []*Account
	nextID   int64
}

// NewMemoryRepository creates an empty in-memory account store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

// Create stores a new account and assigns the next sequential ID.
func (repository *MemoryRepository) Create(_ context.Context, account *Account) error {
	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	account.ID = repository.nextID
	repository.nextID++
	repository.accounts = append(repository.accounts, cloneAccount(account))
	return nil
}

// FindByID returns the live account with the given ID, or apperr.AccountNotFound.
func (repository *MemoryRepository) FindByID(_ context.Context, id int64) (*Account, error) {
	repository.mutex.RLock()
	defer repository.mutex.RUnlock()

	for _, stored := range repository.accounts {
		if stored.ID == id && !stored.DelStatus {
			return cloneAccount(stored), nil
		}
	}
	return nil, apperr.AccountNotFound()
}

// FindByUsername returns the live account with the given username, or nil.
func (repository *MemoryRepository) FindByUsername(_ context.Context, username string) (*Account, error) {
	repository.mutex.RLock()
	defer repository.mutex.RUnlock()

	for _, stored := range repository.accounts {
		if stored.Username == username && !stored.DelStatus {
			return cloneAccount(stored), nil
		}
	}
	return nil, nil
}

// ExistsByUsername reports whether a live account holds the username.
func (repository *MemoryRepository) ExistsByUsername(context context.Context, username string) (bool, error) {
	account, err := repository.FindByUsername(context, username)
	return account != nil, err
}

// ExistsByEmail reports whether a live account holds the email address.
func (repository *MemoryRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	repository.mutex.RLock()
	defer repository.mutex.RUnlock()

	for _, stored := range repository.accounts {
		if stored.Email == email && !stored.DelStatus {
			return true, nil
		}
	}
	return false, nil
}

// List returns all live accounts in insertion order.
func (repository *MemoryRepository) List(_ context.Context) ([]*Account, error) {
	repository.mutex.RLock()
	defer repository.mutex.RUnlock()

	accounts := make([]*Account, 0, len(repository.accounts))
	for _, stored := range repository.accounts {
		if !stored.DelStatus {
			accounts = append(accounts, cloneAccount(stored))
		}
	}
	return accounts, nil
}

// cloneAccount copies an entity so callers cannot mutate stored state.
func cloneAccount(account *Account) *Account {
	clone := *account
	return &clone
}
