package availability

import "time"

// DurationBetween computes billable whole hours between two instants.
// End at or before start is invalid and yields 0; any positive range bills
// at least one hour, and partial hours round up.
func DurationBetween(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}
	minutes := int(end.Sub(start) / time.Minute)
	hours := minutes / 60
	if minutes%60 != 0 {
		hours++
	}
	if hours < 1 {
		hours = 1
	}
	return hours
}

// DurationHours parses a start and end selection ("HH:MM" on a calendar
// date) and returns the billable whole hours. Malformed input is a caller
// contract violation and is answered with 0 rather than an error, since 0
// already blocks confirmation.
func DurationHours(startDate time.Time, startTime string, endDate time.Time, endTime string) int {
	start, err := ParseSlot(startDate, startTime)
	if err != nil {
		return 0
	}
	end, err := ParseSlot(endDate, endTime)
	if err != nil {
		return 0
	}
	return DurationBetween(start, end)
}

// Price computes the total amount for a booking. Hourly-rate categories
// bill rate per elapsed hour; flat-rate categories bill the rate alone,
// the duration being informational only.
func Price(rate float64, isHourly bool, hours int) float64 {
	if isHourly {
		return rate * float64(hours)
	}
	return rate
}
