// FilePath: internal/models/models.room.go
package models

// Room represents a monitored physical space
type Room struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// RoomSummary is the unfiltered per-room average response.
// Name is null when the room does not exist; Average is 0 when the
// room has no readings.
type RoomSummary struct {
	Name    *string `json:"name"`
	Average float64 `json:"average"`
	Days    int     `json:"days"`
}
