package domain

import (
	"fmt"
	"time"
)

// DateRange is an immutable closed interval of calendar dates [start, end].
// A range whose start equals its end is a one-day rental.
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange validates and builds a range. Time of day is dropped: every
// bound is the calendar date it falls on, as midnight UTC.
func NewDateRange(start, end time.Time) (DateRange, error) {
	s, e := dateOf(start), dateOf(end)
	if s.After(e) {
		return DateRange{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange, s.Format(DateFormat), e.Format(DateFormat))
	}
	return DateRange{start: s, end: e}, nil
}

// ParseDateRange builds a range from two YYYY-MM-DD strings
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse(DateFormat, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("parse start date: %w", err)
	}
	e, err := time.Parse(DateFormat, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("parse end date: %w", err)
	}
	return NewDateRange(s, e)
}

func (r DateRange) Start() time.Time { return r.start }

func (r DateRange) End() time.Time { return r.end }

// IsZero returns true for a range that was never constructed
func (r DateRange) IsZero() bool {
	return r.start.IsZero() && r.end.IsZero()
}

// Days returns the number of calendar days, both ends included
func (r DateRange) Days() int {
	return int(r.end.Sub(r.start).Hours()/24) + 1
}

// Contains reports whether date falls inside the range (bounds included)
func (r DateRange) Contains(date time.Time) bool {
	d := dateOf(date)
	return !d.Before(r.start) && !d.After(r.end)
}

// ContainsRange reports whether other lies entirely inside r
func (r DateRange) ContainsRange(other DateRange) bool {
	return !other.start.Before(r.start) && !other.end.After(r.end)
}

// Overlaps uses closed-interval semantics: ranges that only touch at an
// endpoint (r.end == other.start) overlap. The car is handed over and returned
// on whole days, so a shared day is a conflict.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !r.end.Before(other.start)
}

// EachDay calls fn for every date from start to end inclusive
func (r DateRange) EachDay(fn func(day time.Time)) {
	for d := r.start; !d.After(r.end); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.start.Format(DateFormat), r.end.Format(DateFormat))
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
