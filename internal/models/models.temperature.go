// FilePath: internal/models/models.temperature.go
package models

import "time"

// TemperatureReading represents a single temperature measurement for a room
type TemperatureReading struct {
	ID          int64     `json:"id" db:"id"`
	RoomID      int64     `json:"room_id" db:"room_id"`
	Temperature float64   `json:"temperature" db:"temperature"`
	Date        time.Time `json:"date" db:"date"`
}

// AverageReport holds an arithmetic mean of readings and the number of
// distinct calendar days they span
type AverageReport struct {
	Average float64 `json:"average"`
	Days    int     `json:"days"`
}

// DayBucket collapses one calendar day of readings to a single averaged value
type DayBucket struct {
	Date        string  `json:"date"` // YYYY-MM-DD
	Temperature float64 `json:"temperature"`
}

// RoomTermReport is the windowed per-room response: one bucket per calendar
// day inside the term window plus the unweighted mean of the bucket averages
type RoomTermReport struct {
	Name         string      `json:"name"`
	Temperatures []DayBucket `json:"temperatures"`
	Average      float64     `json:"average"`
}
