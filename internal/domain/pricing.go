package domain

import "time"

// Quote is the price of renting one car over a date range
type Quote struct {
	Days              int
	TotalPrice        Money
	AverageDailyPrice Money
}

// PriceForRange sums the car's seasonal rate for every day of the range.
// The total is exact in cents; the average daily price is rounded half up to
// the cent.
func PriceForRange(car Car, r DateRange) Quote {
	var (
		total Money
		days  int
	)

	r.EachDay(func(day time.Time) {
		total += car.RateFor(SeasonFor(day))
		days++
	})

	if days == 0 {
		return Quote{}
	}

	return Quote{
		Days:              days,
		TotalPrice:        total,
		AverageDailyPrice: total.DivRound(days),
	}
}
