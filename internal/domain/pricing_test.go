package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixtureCar() Car {
	return Car{
		Brand:     "Toyota",
		Model:     "Corolla",
		Stock:     3,
		PeakPrice: NewMoneyFromFloat(98.43),
		MidPrice:  NewMoneyFromFloat(76.89),
		OffPrice:  NewMoneyFromFloat(53.65),
	}
}

func TestPriceForRange(t *testing.T) {
	car := fixtureCar()

	tests := []struct {
		name      string
		start     time.Time
		end       time.Time
		wantDays  int
		wantTotal Money
		wantAvg   Money
	}{
		{
			name:      "peak only",
			start:     date(2028, 6, 1),
			end:       date(2028, 6, 5),
			wantDays:  5,
			wantTotal: 49215,
			wantAvg:   9843,
		},
		{
			// Sep 15 is peak, Sep 16-19 are mid: 98.43 + 4 * 76.89
			name:      "peak to mid boundary",
			start:     date(2028, 9, 15),
			end:       date(2028, 9, 19),
			wantDays:  5,
			wantTotal: 40599,
			wantAvg:   8120,
		},
		{
			name:      "single off day",
			start:     date(2028, 12, 24),
			end:       date(2028, 12, 24),
			wantDays:  1,
			wantTotal: 5365,
			wantAvg:   5365,
		},
		{
			// Feb 28, Feb 29 off; Mar 1, Mar 2 mid
			name:      "off to mid over leap day",
			start:     date(2028, 2, 28),
			end:       date(2028, 3, 2),
			wantDays:  4,
			wantTotal: 2*5365 + 2*7689,
			wantAvg:   6527,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := PriceForRange(car, mustRange(t, tt.start, tt.end))
			assert.Equal(t, tt.wantDays, q.Days)
			assert.Equal(t, tt.wantTotal, q.TotalPrice)
			assert.Equal(t, tt.wantAvg, q.AverageDailyPrice)
		})
	}
}

func TestPriceForRange_SumOfDailyRates(t *testing.T) {
	car := fixtureCar()
	r := mustRange(t, date(2028, 5, 20), date(2028, 11, 10))

	var want Money
	r.EachDay(func(d time.Time) { want += car.RateFor(SeasonFor(d)) })

	q := PriceForRange(car, r)
	assert.Equal(t, want, q.TotalPrice)
	assert.Equal(t, r.Days(), q.Days)
}

func TestPriceForRange_SingleSeason(t *testing.T) {
	car := fixtureCar()
	r := mustRange(t, date(2028, 11, 3), date(2028, 11, 19))

	q := PriceForRange(car, r)
	assert.Equal(t, Money(int64(r.Days()))*car.OffPrice, q.TotalPrice)
	assert.Equal(t, car.OffPrice, q.AverageDailyPrice)
}
