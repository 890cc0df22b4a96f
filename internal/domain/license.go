package domain

import "time"

// DrivingLicense is a value owned by a user
type DrivingLicense struct {
	Number     string
	ExpiryDate time.Time
}

// IsValid reports whether the license is still valid on the given date.
// The comparison is strict: a license expiring on onDate is not valid that day.
func (l DrivingLicense) IsValid(onDate time.Time) bool {
	return dateOf(l.ExpiryDate).After(dateOf(onDate))
}

// IsValidFor reports whether the license covers the whole range, i.e. it is
// still valid on the last rental day
func (l DrivingLicense) IsValidFor(r DateRange) bool {
	return l.IsValid(r.End())
}
