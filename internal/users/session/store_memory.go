// Copyright (c) 2026 Moim. All rights reserved.

package session

import (
	"context"
	"sync"
	"time"

	"github.com/seonokim/moim/internal/platform/sec"
)

// # In-Memory Store

// memoryRecord pairs an identity with its expiry instant.
type memoryRecord struct {
	account   sec.CurrentAccount
	expiresAt time.Time
}

// MemoryStore implements [Store] with process-local state.
//
// Expiry is checked lazily on read. Each instance owns its own records,
// so independent instances never observe each other's sessions.
type MemoryStore struct {
	mutex   sync.RWMutex
	records map[string]memoryRecord
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]memoryRecord)}
}

// Set writes the identity record with the given lifetime.
func (store *MemoryStore) Set(_ context.Context, sessionID string, account *sec.CurrentAccount, ttl time.Duration) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	store.records[sessionID] = memoryRecord{
		account:   *account,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Get loads the identity bound to a session ID, or nil when absent or expired.
func (store *MemoryStore) Get(_ context.Context, sessionID string) (*sec.CurrentAccount, error) {
	store.mutex.RLock()
	record, ok := store.records[sessionID]
	store.mutex.RUnlock()

	if !ok || time.Now().After(record.expiresAt) {
		return nil, nil
	}

	account := record.account
	return &account, nil
}

// Delete destroys a session record. Absent keys are a no-op.
func (store *MemoryStore) Delete(_ context.Context, sessionID string) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()

	delete(store.records, sessionID)
	return nil
}
