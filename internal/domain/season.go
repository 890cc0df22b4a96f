package domain

import "time"

// Season drives the daily rental rate
type Season string

const (
	SeasonPeak Season = "peak"
	SeasonMid  Season = "mid"
	SeasonOff  Season = "off"
)

// SeasonFor maps a calendar date to its season. Only month and day matter:
//
//	Peak: Jun 1 - Sep 15
//	Mid:  Sep 16 - Oct 31, Mar 1 - May 31
//	Off:  Nov 1 - Feb 28/29
func SeasonFor(date time.Time) Season {
	_, month, day := date.Date()

	switch month {
	case time.June, time.July, time.August:
		return SeasonPeak
	case time.September:
		if day <= 15 {
			return SeasonPeak
		}
		return SeasonMid
	case time.October, time.March, time.April, time.May:
		return SeasonMid
	default:
		return SeasonOff
	}
}
