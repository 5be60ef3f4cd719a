package utils

import "time"

// Bogota returns the market timezone. All calendar math runs in Colombia
// local time.
func Bogota() *time.Location {
	loc, err := time.LoadLocation("America/Bogota")
	if err != nil {
		return time.UTC // Fallback if tzdata is not available
	}
	return loc
}

// ToBogota converts a time to Colombia local time
func ToBogota(t time.Time) time.Time {
	return t.In(Bogota())
}

// NowBogota returns the current instant in Colombia local time.
func NowBogota() time.Time {
	return time.Now().In(Bogota())
}
