package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/camiloreyes/servimarket-app/availability"
)

// WeeklyAvailability maps a weekday (0=Sunday..6=Saturday) to the
// recurring bookable start times for that day, "HH:MM" 24h format.
// Stored as JSONB.
type WeeklyAvailability map[time.Weekday][]string

// Value implements the driver.Valuer interface
func (w WeeklyAvailability) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(w)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil // Return as string for JSONB type
}

// Scan implements the sql.Scanner interface
func (w *WeeklyAvailability) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal WeeklyAvailability: unsupported type %T", value)
	}

	return json.Unmarshal(data, w)
}

// Weekly converts the column type to the calculator's input type.
func (w WeeklyAvailability) Weekly() availability.Weekly {
	return availability.Weekly(w)
}
