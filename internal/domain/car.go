package domain

import (
	"time"

	"github.com/google/uuid"
)

// Car represents a rentable car model with a number of physical units in stock
type Car struct {
	ID        uuid.UUID
	Brand     string
	Model     string
	Stock     int
	PeakPrice Money
	MidPrice  Money
	OffPrice  Money

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RateFor returns the daily rate for the season
func (c *Car) RateFor(season Season) Money {
	switch season {
	case SeasonPeak:
		return c.PeakPrice
	case SeasonMid:
		return c.MidPrice
	default:
		return c.OffPrice
	}
}

// IsAvailable returns true if at least one unit exists globally
func (c *Car) IsAvailable() bool {
	return c.Stock > 0
}

// DecrementStock takes one unit out of stock
func (c *Car) DecrementStock() error {
	if c.Stock <= 0 {
		return ErrStockExhausted
	}
	c.Stock--
	return nil
}

// IncrementStock returns one unit to stock
func (c *Car) IncrementStock() {
	c.Stock++
}

// HasValidRates returns true if all three season rates are positive
func (c *Car) HasValidRates() bool {
	return c.PeakPrice.IsPositive() && c.MidPrice.IsPositive() && c.OffPrice.IsPositive()
}
