package domain

import (
	"errors"
	"time"
)

// ErrEmptyWindow indicates a timestamp query against a window with no activities.
var ErrEmptyWindow = errors.New("activity window is empty")

// ActivityWindow holds the bounded list of activities loaded for one account
// during one unit of work, in insertion order. Append is the only mutation.
type ActivityWindow struct {
	activities []Activity
}

// NewActivityWindow builds a window over the given activities.
func NewActivityWindow(activities ...Activity) *ActivityWindow {
	w := &ActivityWindow{activities: make([]Activity, len(activities))}
	copy(w.activities, activities)

	return w
}

// Append adds an activity to the end of the window.
func (w *ActivityWindow) Append(activity Activity) {
	w.activities = append(w.activities, activity)
}

// Activities returns a copy of the window's contents.
func (w *ActivityWindow) Activities() []Activity {
	out := make([]Activity, len(w.activities))
	copy(out, w.activities)

	return out
}

// Len returns the number of activities in the window.
func (w *ActivityWindow) Len() int {
	return len(w.activities)
}

// FirstTimestamp returns the earliest activity timestamp in the window.
func (w *ActivityWindow) FirstTimestamp() (time.Time, error) {
	if len(w.activities) == 0 {
		return time.Time{}, ErrEmptyWindow
	}

	first := w.activities[0].Timestamp()

	for _, a := range w.activities[1:] {
		if a.Timestamp().Before(first) {
			first = a.Timestamp()
		}
	}

	return first, nil
}

// LastTimestamp returns the latest activity timestamp in the window.
func (w *ActivityWindow) LastTimestamp() (time.Time, error) {
	if len(w.activities) == 0 {
		return time.Time{}, ErrEmptyWindow
	}

	last := w.activities[0].Timestamp()

	for _, a := range w.activities[1:] {
		if a.Timestamp().After(last) {
			last = a.Timestamp()
		}
	}

	return last, nil
}

// BalanceFor returns the net effect of the window's activities on the given
// account: deposits into it minus withdrawals out of it. Ownership of the
// activities does not matter here; a self transfer nets to zero.
func (w *ActivityWindow) BalanceFor(accountID AccountID) Money {
	balance := ZeroMoney()

	for _, a := range w.activities {
		if a.TargetAccountID() == accountID {
			balance = balance.Add(a.Money())
		}

		if a.SourceAccountID() == accountID {
			balance = balance.Subtract(a.Money())
		}
	}

	return balance
}
