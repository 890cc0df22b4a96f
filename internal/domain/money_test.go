package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMoneyFromFloat(t *testing.T) {
	assert.Equal(t, Money(9843), NewMoneyFromFloat(98.43))
	assert.Equal(t, Money(7689), NewMoneyFromFloat(76.89))
	assert.Equal(t, Money(5365), NewMoneyFromFloat(53.65))
	assert.Equal(t, 492.15, Money(49215).Float64())
}

func TestMoney_DivRound(t *testing.T) {
	tests := []struct {
		amount Money
		n      int
		want   Money
	}{
		{amount: 49215, n: 5, want: 9843},
		{amount: 40599, n: 5, want: 8120},
		{amount: 5, n: 2, want: 3},
		{amount: 4, n: 2, want: 2},
		{amount: 100, n: 3, want: 33},
		{amount: 200, n: 3, want: 67},
		{amount: -5, n: 2, want: -3},
	}

	for _, tt := range tests {
		t.Run(tt.amount.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.amount.DivRound(tt.n))
		})
	}
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "492.15", Money(49215).String())
	assert.Equal(t, "0.05", Money(5).String())
	assert.Equal(t, "-1.20", Money(-120).String())
}
