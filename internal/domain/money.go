package domain

import (
	"fmt"
	"math"
)

// Money is an amount in cents. Prices are kept in integer minor units so that
// summing daily rates is exact.
type Money int64

// NewMoneyFromFloat converts a decimal amount to cents, rounding half away from zero
func NewMoneyFromFloat(amount float64) Money {
	return Money(math.Round(amount * 100))
}

// Float64 returns the amount in currency units
func (m Money) Float64() float64 {
	return float64(m) / 100
}

// IsPositive returns true for amounts above zero
func (m Money) IsPositive() bool {
	return m > 0
}

// DivRound divides the amount by n and rounds half up to the nearest cent.
// n must be positive.
func (m Money) DivRound(n int) Money {
	d := int64(n)
	v := int64(m)
	if v >= 0 {
		return Money((2*v + d) / (2 * d))
	}
	return -Money((-2*v + d) / (2 * d))
}

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
