// Package calendar provides pure date arithmetic shared by the booking store:
// calendar-quarter boundaries and inclusive point-in-range tests.
package calendar

import "time"

// QuarterBounds returns the inclusive start and exclusive end of the calendar
// quarter containing now. Quarters begin on the first of January, April, July,
// and October. The end bound of Q4 rolls into January 1 of the next year.
//
// Bounds are computed in now's location at midnight.
func QuarterBounds(now time.Time) (start, end time.Time) {
	startMonth := (int(now.Month())-1)/3*3 + 1
	start = time.Date(now.Year(), time.Month(startMonth), 1, 0, 0, 0, 0, now.Location())

	endMonth := startMonth + 3
	endYear := now.Year()
	if endMonth > 12 {
		endMonth = 1
		endYear++
	}
	end = time.Date(endYear, time.Month(endMonth), 1, 0, 0, 0, 0, now.Location())
	return start, end
}

// Contains reports whether point lies within [start, end], inclusive on both
// ends. Note the asymmetry with booking creation, which requires a strictly
// positive range: a booking's exact from and to instants both count as
// "contained" when querying.
func Contains(point, start, end time.Time) bool {
	return !point.Before(start) && !point.After(end)
}
