package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func mustAccountID(t *testing.T, value int64) AccountID {
	t.Helper()

	id, err := NewAccountID(value)
	require.NoError(t, err)

	return id
}

func mustActivity(t *testing.T, owner, source, target AccountID, ts time.Time, amount int64) Activity {
	t.Helper()

	a, err := NewActivity(owner, source, target, ts, NewMoney(amount))
	require.NoError(t, err)

	return a
}

func TestWindowBalanceFor(t *testing.T) {
	account1 := mustAccountID(t, 1)
	account2 := mustAccountID(t, 2)
	now := time.Now()

	testCases := []struct {
		name       string
		activities []Activity
		forAccount AccountID
		want       Money
	}{
		{
			name:       "Empty window",
			forAccount: account1,
			want:       ZeroMoney(),
		},
		{
			name: "Deposits minus withdrawals",
			activities: []Activity{
				mustActivity(t, account1, account2, account1, now, 500), // deposit 500
				mustActivity(t, account1, account1, account2, now, 200), // withdrawal 200
				mustActivity(t, account1, account2, account1, now, 100), // deposit 100
			},
			forAccount: account1,
			want:       NewMoney(400),
		},
		{
			name: "Counterparty view of the same postings",
			activities: []Activity{
				mustActivity(t, account1, account2, account1, now, 500),
				mustActivity(t, account1, account1, account2, now, 200),
			},
			forAccount: account2,
			want:       NewMoney(-300),
		},
		{
			name: "Self transfer nets to zero",
			activities: []Activity{
				mustActivity(t, account1, account1, account1, now, 250),
			},
			forAccount: account1,
			want:       ZeroMoney(),
		},
		{
			name: "Owner field does not matter",
			activities: []Activity{
				mustActivity(t, account2, account2, account1, now, 42),
			},
			forAccount: account1,
			want:       NewMoney(42),
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			window := NewActivityWindow(tc.activities...)

			got := window.BalanceFor(tc.forAccount)
			require.True(t, got.Equal(tc.want), "got %s, want %s", got, tc.want)
		})
	}
}

func TestWindowTimestamps(t *testing.T) {
	account1 := mustAccountID(t, 1)
	account2 := mustAccountID(t, 2)

	early := time.Date(2023, 2, 1, 10, 0, 0, 0, time.UTC)
	middle := early.Add(24 * time.Hour)
	late := early.Add(48 * time.Hour)

	// Insertion order is not timestamp order.
	window := NewActivityWindow(
		mustActivity(t, account1, account1, account2, middle, 1),
		mustActivity(t, account1, account1, account2, late, 1),
		mustActivity(t, account1, account1, account2, early, 1),
	)

	first, err := window.FirstTimestamp()
	require.NoError(t, err)
	require.Equal(t, early, first)

	last, err := window.LastTimestamp()
	require.NoError(t, err)
	require.Equal(t, late, last)
}

func TestWindowTimestampsEmpty(t *testing.T) {
	window := NewActivityWindow()

	_, err := window.FirstTimestamp()
	require.ErrorIs(t, err, ErrEmptyWindow)

	_, err = window.LastTimestamp()
	require.ErrorIs(t, err, ErrEmptyWindow)
}

func TestWindowActivitiesIsACopy(t *testing.T) {
	account1 := mustAccountID(t, 1)
	account2 := mustAccountID(t, 2)

	window := NewActivityWindow(
		mustActivity(t, account1, account1, account2, time.Now(), 10),
	)

	view := window.Activities()
	view[0] = Activity{}

	require.Equal(t, 1, window.Len())
	require.True(t, window.BalanceFor(account2).Equal(NewMoney(10)))
}

func TestWindowAppendKeepsInsertionOrder(t *testing.T) {
	account1 := mustAccountID(t, 1)
	account2 := mustAccountID(t, 2)
	now := time.Now()

	window := NewActivityWindow()

	first := mustActivity(t, account1, account1, account2, now.Add(time.Hour), 1)
	second := mustActivity(t, account1, account1, account2, now, 2)

	window.Append(first)
	window.Append(second)

	got := window.Activities()
	require.Len(t, got, 2)
	require.Equal(t, first, got[0])
	require.Equal(t, second, got[1])
}
