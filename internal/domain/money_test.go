package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoneyArithmetic(t *testing.T) {
	testCases := []struct {
		name string
		got  Money
		want Money
	}{
		{name: "Add", got: NewMoney(2).Add(NewMoney(3)), want: NewMoney(5)},
		{name: "AddNegative", got: NewMoney(2).Add(NewMoney(-3)), want: NewMoney(-1)},
		{name: "Subtract", got: NewMoney(2).Subtract(NewMoney(3)), want: NewMoney(-1)},
		{name: "Negate", got: NewMoney(7).Negate(), want: NewMoney(-7)},
		{name: "NegateZero", got: ZeroMoney().Negate(), want: NewMoney(0)},
		{name: "ZeroValueIsZero", got: Money{}, want: ZeroMoney()},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			require.True(t, tc.got.Equal(tc.want), "got %s, want %s", tc.got, tc.want)
		})
	}
}

func TestMoneyPredicates(t *testing.T) {
	require.True(t, NewMoney(1).IsPositive())
	require.False(t, ZeroMoney().IsPositive())
	require.True(t, ZeroMoney().IsPositiveOrZero())
	require.False(t, NewMoney(-1).IsPositiveOrZero())
	require.True(t, NewMoney(-1).IsNegative())
	require.False(t, ZeroMoney().IsNegative())

	require.True(t, NewMoney(2).GreaterThan(NewMoney(1)))
	require.False(t, NewMoney(2).GreaterThan(NewMoney(2)))
	require.True(t, NewMoney(2).GreaterThanOrEqual(NewMoney(2)))
	require.False(t, NewMoney(1).GreaterThanOrEqual(NewMoney(2)))
}

func TestMoneyImmutable(t *testing.T) {
	m := NewMoney(10)

	_ = m.Add(NewMoney(5))
	_ = m.Negate()

	require.True(t, m.Equal(NewMoney(10)))
}
