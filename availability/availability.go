package availability

import (
	"time"
)

// DayStatus classifies a calendar day for the booking calendar.
type DayStatus string

const (
	StatusUnavailable DayStatus = "unavailable"
	StatusAvailable   DayStatus = "available"
	StatusPartial     DayStatus = "partial"
	StatusOccupied    DayStatus = "occupied"
)

// Weekly maps a weekday to its recurring bookable start times, each in
// "HH:MM" 24h format and nominally increasing within a day.
type Weekly map[time.Weekday][]string

// Decorator lets a caller downgrade a bookable day (e.g. to partial) with
// business rules layered on top of the classification. The classifier never
// upgrades: decorators only see days that came out available.
type Decorator func(date time.Time, status DayStatus) DayStatus

// ParseSlot resolves an "HH:MM" slot label to an instant on the given date,
// in the date's location.
func ParseSlot(date time.Time, slot string) (time.Time, error) {
	t, err := time.Parse("15:04", slot)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SlotsForDay returns the bookable start times remaining on a date. Slots
// are the weekday's configured list verbatim, except that on the current
// day every slot whose instant is not strictly after now is dropped. A
// weekday with no configured slots yields an empty list, not an error.
func SlotsForDay(weekly Weekly, date time.Time, now time.Time) []string {
	configured := weekly[date.Weekday()]
	if len(configured) == 0 {
		return []string{}
	}
	if !sameDay(date, now) {
		out := make([]string, len(configured))
		copy(out, configured)
		return out
	}

	remaining := []string{}
	for _, slot := range configured {
		instant, err := ParseSlot(date, slot)
		if err != nil {
			continue
		}
		if instant.After(now) {
			remaining = append(remaining, slot)
		}
	}
	return remaining
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// ClassifyMonth computes the booking status of every day in the given
// month. Days strictly before today, holidays and weekdays with no
// configured slots are unavailable; days whose remaining slots are all
// consumed are occupied; everything else is available, subject to the
// optional decorator.
func ClassifyMonth(weekly Weekly, holidays HolidaySet, now time.Time, year int, month time.Month, decorate Decorator) map[string]DayStatus {
	result := make(map[string]DayStatus)
	today := dayOf(now)

	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	for date := first; date.Month() == month; date = date.AddDate(0, 0, 1) {
		result[date.Format("2006-01-02")] = classifyDay(weekly, holidays, now, today, date, decorate)
	}
	return result
}

// ClassifyDay is the single-date form of ClassifyMonth.
func ClassifyDay(weekly Weekly, holidays HolidaySet, now time.Time, date time.Time) DayStatus {
	return classifyDay(weekly, holidays, now, dayOf(now), dayOf(date), nil)
}

func classifyDay(weekly Weekly, holidays HolidaySet, now, today, date time.Time, decorate Decorator) DayStatus {
	if date.Before(today) {
		return StatusUnavailable
	}
	if holidays.Contains(date) {
		return StatusUnavailable
	}
	if len(weekly[date.Weekday()]) == 0 {
		return StatusUnavailable
	}
	if len(SlotsForDay(weekly, date, now)) == 0 {
		return StatusOccupied
	}
	if decorate != nil {
		return decorate(date, StatusAvailable)
	}
	return StatusAvailable
}

// Collapse maps the four-state classification down to the two states the
// service browse surface shows: partial counts as available.
func Collapse(days map[string]DayStatus) map[string]DayStatus {
	out := make(map[string]DayStatus, len(days))
	for date, status := range days {
		if status == StatusPartial {
			status = StatusAvailable
		}
		out[date] = status
	}
	return out
}
