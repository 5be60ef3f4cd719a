package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyAvailability_ScanValue(t *testing.T) {
	w := WeeklyAvailability{
		time.Monday:   {"09:00", "10:00"},
		time.Saturday: {"08:00"},
	}

	v, err := w.Value()
	require.NoError(t, err)

	var scanned WeeklyAvailability
	require.NoError(t, scanned.Scan(v))

	assert.Equal(t, w, scanned)
	assert.Equal(t, []string{"09:00", "10:00"}, scanned.Weekly()[time.Monday])
}
