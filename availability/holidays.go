package availability

import "time"

// Colombian public holidays that block booking regardless of the weekly
// schedule. Month/day pairs, replicated across a small window of years.
var holidayTable = []struct {
	Month time.Month
	Day   int
}{
	{time.January, 1},
	{time.May, 1},
	{time.July, 20},
	{time.August, 7},
	{time.December, 8},
	{time.December, 25},
}

// HolidaySet is a set of calendar dates that are never bookable.
type HolidaySet map[string]struct{}

// Holidays builds the holiday set for the given years.
func Holidays(years ...int) HolidaySet {
	set := make(HolidaySet, len(years)*len(holidayTable))
	for _, year := range years {
		for _, h := range holidayTable {
			d := time.Date(year, h.Month, h.Day, 0, 0, 0, 0, time.UTC)
			set[d.Format("2006-01-02")] = struct{}{}
		}
	}
	return set
}

// HolidaysAround returns the holiday set for the reference year and the
// two years after it, matching the booking window the calendar exposes.
func HolidaysAround(now time.Time) HolidaySet {
	year := now.Year()
	return Holidays(year, year+1, year+2)
}

// Contains reports whether the date (its calendar day) is a holiday.
func (s HolidaySet) Contains(date time.Time) bool {
	_, ok := s[date.Format("2006-01-02")]
	return ok
}
