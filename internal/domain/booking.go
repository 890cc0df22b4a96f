package domain

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a priced reservation of one car by one user.
// User and Car are snapshots taken at booking time: the price stays fixed
// even if the car's rates change later.
type Booking struct {
	ID         uuid.UUID
	User       User
	Car        Car
	Range      DateRange
	TotalPrice Money
	CreatedAt  time.Time
}

// NewBooking builds a booking and checks that the user's license covers the range
func NewBooking(id uuid.UUID, user User, car Car, r DateRange, totalPrice Money, createdAt time.Time) (*Booking, error) {
	if !user.CanDriveFor(r) {
		return nil, ErrLicenseInvalid
	}

	return &Booking{
		ID:         id,
		User:       user,
		Car:        car,
		Range:      r,
		TotalPrice: totalPrice,
		CreatedAt:  createdAt,
	}, nil
}

// AverageDailyPrice returns the booked price per day rounded half up to the cent
func (b *Booking) AverageDailyPrice() Money {
	return b.TotalPrice.DivRound(b.Range.Days())
}

// BelongsTo returns true if the booking was made by the user
func (b *Booking) BelongsTo(userID uuid.UUID) bool {
	return b.User.ID == userID
}
