package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidID indicates a non-positive account or activity identifier.
	ErrInvalidID = errors.New("identifier must be a positive integer")
	// ErrInvalidActivity indicates an activity constructed with missing fields.
	ErrInvalidActivity = errors.New("activity is missing mandatory fields")
)

// ActivityID identifies a persisted activity. The zero value means the
// activity has not been persisted yet.
type ActivityID struct {
	value int64
}

// NewActivityID validates and wraps a raw activity identifier.
func NewActivityID(value int64) (ActivityID, error) {
	if value <= 0 {
		return ActivityID{}, ErrInvalidID
	}

	return ActivityID{value: value}, nil
}

// Int64 returns the raw identifier value.
func (id ActivityID) Int64() int64 {
	return id.value
}

// IsZero reports whether the identifier is absent.
func (id ActivityID) IsZero() bool {
	return id.value == 0
}

// Activity is one ledger posting: a movement of money between a source and a
// target account, recorded from the perspective of the owner account.
// It is immutable after construction. An activity whose id is zero has not
// been persisted yet; persistence is the only way it acquires an id.
type Activity struct {
	id              ActivityID
	ownerAccountID  AccountID
	sourceAccountID AccountID
	targetAccountID AccountID
	timestamp       time.Time
	money           Money
}

// NewActivity builds a not-yet-persisted activity.
func NewActivity(owner, source, target AccountID, timestamp time.Time, money Money) (Activity, error) {
	return newActivity(ActivityID{}, owner, source, target, timestamp, money)
}

// NewPersistedActivity rebuilds an activity that already has a durable id.
func NewPersistedActivity(id ActivityID, owner, source, target AccountID, timestamp time.Time, money Money) (Activity, error) {
	if id.IsZero() {
		return Activity{}, ErrInvalidActivity
	}

	return newActivity(id, owner, source, target, timestamp, money)
}

func newActivity(id ActivityID, owner, source, target AccountID, timestamp time.Time, money Money) (Activity, error) {
	if owner.IsZero() || source.IsZero() || target.IsZero() {
		return Activity{}, ErrInvalidActivity
	}

	if timestamp.IsZero() {
		return Activity{}, ErrInvalidActivity
	}

	if !money.IsPositive() {
		return Activity{}, ErrInvalidActivity
	}

	return Activity{
		id:              id,
		ownerAccountID:  owner,
		sourceAccountID: source,
		targetAccountID: target,
		timestamp:       timestamp,
		money:           money,
	}, nil
}

// ID returns the activity id; zero until persisted.
func (a Activity) ID() ActivityID {
	return a.id
}

// IsPersisted reports whether the activity has been assigned a durable id.
func (a Activity) IsPersisted() bool {
	return !a.id.IsZero()
}

// OwnerAccountID returns the account from whose perspective this posting is recorded.
func (a Activity) OwnerAccountID() AccountID {
	return a.ownerAccountID
}

// SourceAccountID returns the account the money moved out of.
func (a Activity) SourceAccountID() AccountID {
	return a.sourceAccountID
}

// TargetAccountID returns the account the money moved into.
func (a Activity) TargetAccountID() AccountID {
	return a.targetAccountID
}

// Timestamp returns the moment the activity happened.
func (a Activity) Timestamp() time.Time {
	return a.timestamp
}

// Money returns the amount moved; always positive, direction comes from
// source and target.
func (a Activity) Money() Money {
	return a.money
}
