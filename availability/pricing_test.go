package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationHours_EqualInstantsInvalid(t *testing.T) {
	d := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, DurationHours(d, "10:00", d, "10:00"))
}

func TestDurationHours_EndBeforeStartInvalid(t *testing.T) {
	d := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, DurationHours(d, "10:00", d, "09:00"))
}

func TestDurationHours_SubHourBillsMinimumOneHour(t *testing.T) {
	d := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, DurationHours(d, "10:00", d, "10:30"))
}

func TestDurationHours_WholeHours(t *testing.T) {
	d := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, DurationHours(d, "10:00", d, "12:00"))
}

func TestDurationHours_PartialHoursRoundUp(t *testing.T) {
	d := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, DurationHours(d, "10:00", d, "12:30"))
}

func TestDurationHours_SpansDays(t *testing.T) {
	start := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 26, DurationHours(start, "10:00", end, "12:00"))
}

func TestDurationHours_MalformedInputYieldsZero(t *testing.T) {
	d := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, DurationHours(d, "not-a-time", d, "12:00"))
	assert.Equal(t, 0, DurationHours(d, "10:00", d, ""))
}

func TestPrice_HourlyMultipliesByDuration(t *testing.T) {
	assert.Equal(t, float64(150000), Price(50000, true, 3))
}

func TestPrice_FlatRateIgnoresDuration(t *testing.T) {
	assert.Equal(t, float64(150000), Price(150000, false, 3))
	assert.Equal(t, float64(150000), Price(150000, false, 1))
}
