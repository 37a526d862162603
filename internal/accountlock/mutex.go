// Package accountlock provides mutual exclusion keyed by account id.
//
// Two implementations are available: an in-process keyed mutex for
// single-instance deployments and a Redis lease lock for deployments with
// more than one instance. There is deliberately no no-op implementation;
// the transfer protocol relies on the lock for correctness.
package accountlock

import (
	"context"
	"errors"
	"sync"

	"github.com/moneyport/moneyport/internal/domain"
)

// ErrNotLocked indicates a release of a lock the caller does not hold.
var ErrNotLocked = errors.New("account lock is not held")

// KeyedMutex is an in-process account lock. It is correct for a
// single-process deployment only.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[domain.AccountID]*mutexEntry
}

type mutexEntry struct {
	sem  chan struct{}
	refs int
}

// NewKeyedMutex returns an in-process account lock.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[domain.AccountID]*mutexEntry),
	}
}

// Acquire blocks until the lock for the given account is held or ctx is done.
func (k *KeyedMutex) Acquire(ctx context.Context, id domain.AccountID) error {
	k.mu.Lock()

	e, ok := k.locks[id]
	if !ok {
		e = &mutexEntry{sem: make(chan struct{}, 1)}
		k.locks[id] = e
	}

	e.refs++
	k.mu.Unlock()

	select {
	case e.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		k.unref(id, e)
		return ctx.Err()
	}
}

// Release relinquishes the lock for the given account.
func (k *KeyedMutex) Release(_ context.Context, id domain.AccountID) error {
	k.mu.Lock()
	e, ok := k.locks[id]
	k.mu.Unlock()

	if !ok {
		return ErrNotLocked
	}

	select {
	case <-e.sem:
	default:
		return ErrNotLocked
	}

	k.unref(id, e)

	return nil
}

func (k *KeyedMutex) unref(id domain.AccountID, e *mutexEntry) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(k.locks, id)
	}
}
