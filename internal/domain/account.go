// Package domain provides the entities and value types of the account ledger.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrMissingAccountID indicates a balance query on an account without an id.
	ErrMissingAccountID = errors.New("account has no id")
)

// AccountID identifies an account. The zero value means the account has not
// been identified yet.
type AccountID struct {
	value int64
}

// NewAccountID validates and wraps a raw account identifier.
func NewAccountID(value int64) (AccountID, error) {
	if value <= 0 {
		return AccountID{}, ErrInvalidID
	}

	return AccountID{value: value}, nil
}

// Int64 returns the raw identifier value.
func (id AccountID) Int64() int64 {
	return id.value
}

// IsZero reports whether the identifier is absent.
func (id AccountID) IsZero() bool {
	return id.value == 0
}

// Account is the aggregate root of the ledger. Its balance is the baseline
// balance (the net of all activity before the window's cutoff) plus the net
// effect of the activity window. Withdraw and Deposit only mutate the window
// in memory; nothing becomes durable until the new activities are explicitly
// persisted.
type Account struct {
	id              AccountID
	baselineBalance Money
	window          *ActivityWindow
}

// NewAccount rebuilds an identified account from its baseline balance and
// activity window.
func NewAccount(id AccountID, baselineBalance Money, window *ActivityWindow) *Account {
	return &Account{id: id, baselineBalance: baselineBalance, window: window}
}

// NewAccountWithoutID builds an account that has not been identified yet.
func NewAccountWithoutID(baselineBalance Money, window *ActivityWindow) *Account {
	return &Account{baselineBalance: baselineBalance, window: window}
}

// ID returns the account id; zero for an unidentified account.
func (a *Account) ID() AccountID {
	return a.id
}

// BaselineBalance returns the net of all activity before the window.
func (a *Account) BaselineBalance() Money {
	return a.baselineBalance
}

// Window returns the account's activity window.
func (a *Account) Window() *ActivityWindow {
	return a.window
}

// Balance returns the account's current balance. It fails for an account
// without an id because the window cannot tell which side of each activity
// counts without one.
func (a *Account) Balance() (Money, error) {
	if a.id.IsZero() {
		return Money{}, ErrMissingAccountID
	}

	return a.baselineBalance.Add(a.window.BalanceFor(a.id)), nil
}

// Withdraw tries to move money out of this account towards the counterparty.
// It returns false and leaves the window untouched when the withdrawal would
// push the balance below zero. This is the only admission check in the
// transfer protocol.
func (a *Account) Withdraw(money Money, counterparty AccountID) (bool, error) {
	balance, err := a.Balance()
	if err != nil {
		return false, err
	}

	if balance.Subtract(money).IsNegative() {
		return false, nil
	}

	withdrawal, err := NewActivity(a.id, a.id, counterparty, time.Now(), money)
	if err != nil {
		return false, err
	}

	a.window.Append(withdrawal)

	return true, nil
}

// Deposit moves money from the counterparty into this account. There is no
// business rule that rejects a deposit, so it always succeeds.
func (a *Account) Deposit(money Money, counterparty AccountID) (bool, error) {
	if a.id.IsZero() {
		return false, ErrMissingAccountID
	}

	deposit, err := NewActivity(a.id, counterparty, a.id, time.Now(), money)
	if err != nil {
		return false, err
	}

	a.window.Append(deposit)

	return true, nil
}

// UnpersistedActivities returns the window's activities that have not been
// assigned an id yet, i.e. the ones created in memory during this unit of
// work.
func (a *Account) UnpersistedActivities() []Activity {
	var out []Activity

	for _, activity := range a.window.Activities() {
		if !activity.IsPersisted() {
			out = append(out, activity)
		}
	}

	return out
}
