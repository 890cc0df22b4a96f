package domain

// EffectiveStock returns the number of units left for the requested range:
// the car's stock minus one unit per booking of this car whose range overlaps
// the requested one, never below zero. The number of overlapping days does
// not matter.
func EffectiveStock(car Car, requested DateRange, bookings []*Booking) int {
	overlapping := 0
	for _, b := range bookings {
		if b == nil || b.Car.ID != car.ID {
			continue
		}
		if b.Range.Overlaps(requested) {
			overlapping++
		}
	}

	if effective := car.Stock - overlapping; effective > 0 {
		return effective
	}
	return 0
}

// IsAvailableFor returns true if at least one unit is left for the range
func IsAvailableFor(car Car, requested DateRange, bookings []*Booking) bool {
	return EffectiveStock(car, requested, bookings) > 0
}

// HasOverlap returns true if any booking's range overlaps r
func HasOverlap(bookings []*Booking, r DateRange) bool {
	for _, b := range bookings {
		if b != nil && b.Range.Overlaps(r) {
			return true
		}
	}
	return false
}
