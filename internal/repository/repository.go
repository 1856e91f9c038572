// FilePath: internal/repository/repository.go
package repository

import (
	"context"
	"time"

	"github.com/roomclimate/hub/internal/database"
	"github.com/roomclimate/hub/internal/models"
)

// RoomRepository defines the interface for room data operations
type RoomRepository interface {
	database.Repository
	Create(ctx context.Context, room *models.Room) error
	GetName(ctx context.Context, id int64) (string, error)
}

// TemperatureRepository defines the interface for temperature readings
// and the aggregation queries over them
type TemperatureRepository interface {
	database.Repository
	InsertReading(ctx context.Context, roomID int64, temperature float64, date time.Time) error
	GlobalAverage(ctx context.Context) (*models.AverageReport, error)
	RoomAverage(ctx context.Context, roomID int64) (*models.AverageReport, error)
	DayBuckets(ctx context.Context, roomID int64, windowDays int) ([]models.DayBucket, error)
}
