package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func bogota(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Bogota")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestSlotsForDay_FutureDateReturnsConfiguredSlots(t *testing.T) {
	loc := bogota(t)
	weekly := Weekly{time.Monday: {"09:00", "10:00", "11:00"}}

	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, loc)   // Sunday
	monday := time.Date(2025, time.June, 2, 0, 0, 0, 0, loc) // Monday

	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, SlotsForDay(weekly, monday, now))
}

func TestSlotsForDay_TodayDropsElapsedSlots(t *testing.T) {
	loc := bogota(t)
	weekly := Weekly{time.Monday: {"09:00", "10:00"}}

	// June 2, 2025 is a Monday; now is 09:30 on that day.
	now := time.Date(2025, time.June, 2, 9, 30, 0, 0, loc)
	monday := time.Date(2025, time.June, 2, 0, 0, 0, 0, loc)

	assert.Equal(t, []string{"10:00"}, SlotsForDay(weekly, monday, now))
}

func TestSlotsForDay_SlotEqualToNowIsExcluded(t *testing.T) {
	loc := bogota(t)
	weekly := Weekly{time.Monday: {"09:00", "10:00"}}

	now := time.Date(2025, time.June, 2, 9, 0, 0, 0, loc)
	monday := time.Date(2025, time.June, 2, 0, 0, 0, 0, loc)

	// 09:00 is not strictly after now, so only 10:00 survives.
	assert.Equal(t, []string{"10:00"}, SlotsForDay(weekly, monday, now))
}

func TestSlotsForDay_EmptyWeekday(t *testing.T) {
	loc := bogota(t)
	weekly := Weekly{time.Monday: {"09:00"}}

	now := time.Date(2025, time.June, 1, 8, 0, 0, 0, loc)
	tuesday := time.Date(2025, time.June, 3, 0, 0, 0, 0, loc)

	assert.Empty(t, SlotsForDay(weekly, tuesday, now))
}

func TestSlotsForDay_DoesNotMutateInput(t *testing.T) {
	loc := bogota(t)
	configured := []string{"09:00", "10:00"}
	weekly := Weekly{time.Monday: configured}

	now := time.Date(2025, time.June, 2, 9, 30, 0, 0, loc)
	monday := time.Date(2025, time.June, 2, 0, 0, 0, 0, loc)

	_ = SlotsForDay(weekly, monday, now)
	assert.Equal(t, []string{"09:00", "10:00"}, configured)
}

func TestClassifyMonth_PastAndHolidayNeverBookable(t *testing.T) {
	loc := bogota(t)
	weekly := Weekly{}
	for d := time.Sunday; d <= time.Saturday; d++ {
		weekly[d] = []string{"09:00", "10:00"}
	}
	holidays := Holidays(2025)

	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, loc)
	days := ClassifyMonth(weekly, holidays, now, 2025, time.June, nil)

	for date, status := range days {
		parsed, err := time.ParseInLocation("2006-01-02", date, loc)
		assert.NoError(t, err)
		if parsed.Day() < 15 || holidays.Contains(parsed) {
			assert.Equal(t, StatusUnavailable, status, "date %s", date)
			assert.NotEqual(t, StatusAvailable, status)
			assert.NotEqual(t, StatusPartial, status)
		}
	}
}

func TestClassifyMonth_HolidayWins(t *testing.T) {
	loc := bogota(t)
	weekly := Weekly{}
	for d := time.Sunday; d <= time.Saturday; d++ {
		weekly[d] = []string{"09:00"}
	}
	holidays := Holidays(2025)

	now := time.Date(2025, time.July, 1, 8, 0, 0, 0, loc)
	days := ClassifyMonth(weekly, holidays, now, 2025, time.July, nil)

	// July 20 is in the holiday table.
	assert.Equal(t, StatusUnavailable, days["2025-07-20"])
	assert.Equal(t, StatusAvailable, days["2025-07-21"])
}

func TestClassifyMonth_WeekdayWithoutSlotsIsUnavailable(t *testing.T) {
	loc := bogota(t)
	weekly := Weekly{time.Monday: {"09:00"}}

	now := time.Date(2025, time.June, 1, 8, 0, 0, 0, loc)
	days := ClassifyMonth(weekly, Holidays(2025), now, 2025, time.June, nil)

	// June 2 is a Monday, June 3 a Tuesday with no configured slots.
	assert.Equal(t, StatusAvailable, days["2025-06-02"])
	assert.Equal(t, StatusUnavailable, days["2025-06-03"])
}

func TestClassifyMonth_TodayWithAllSlotsElapsedIsOccupied(t *testing.T) {
	loc := bogota(t)
	weekly := Weekly{time.Monday: {"09:00", "10:00"}}

	// Monday June 2, after the last slot.
	now := time.Date(2025, time.June, 2, 11, 0, 0, 0, loc)
	days := ClassifyMonth(weekly, Holidays(2025), now, 2025, time.June, nil)

	assert.Equal(t, StatusOccupied, days["2025-06-02"])
	assert.Equal(t, StatusAvailable, days["2025-06-09"])
}

func TestClassifyMonth_DecoratorOnlySeesBookableDays(t *testing.T) {
	loc := bogota(t)
	weekly := Weekly{time.Saturday: {"09:00"}}

	now := time.Date(2025, time.June, 1, 8, 0, 0, 0, loc)
	days := ClassifyMonth(weekly, Holidays(2025), now, 2025, time.June, func(date time.Time, status DayStatus) DayStatus {
		return StatusPartial
	})

	// Saturdays downgrade to partial, everything else stays unavailable.
	assert.Equal(t, StatusPartial, days["2025-06-07"])
	assert.Equal(t, StatusUnavailable, days["2025-06-06"])
}

func TestCollapse(t *testing.T) {
	in := map[string]DayStatus{
		"2025-06-07": StatusPartial,
		"2025-06-08": StatusOccupied,
		"2025-06-09": StatusAvailable,
		"2025-06-10": StatusUnavailable,
	}
	out := Collapse(in)
	assert.Equal(t, StatusAvailable, out["2025-06-07"])
	assert.Equal(t, StatusOccupied, out["2025-06-08"])
	assert.Equal(t, StatusAvailable, out["2025-06-09"])
	assert.Equal(t, StatusUnavailable, out["2025-06-10"])
}

func TestHolidaysAround(t *testing.T) {
	loc := bogota(t)
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, loc)
	set := HolidaysAround(now)

	assert.True(t, set.Contains(time.Date(2025, time.December, 25, 0, 0, 0, 0, loc)))
	assert.True(t, set.Contains(time.Date(2027, time.January, 1, 0, 0, 0, 0, loc)))
	assert.False(t, set.Contains(time.Date(2025, time.June, 2, 0, 0, 0, 0, loc)))
}
