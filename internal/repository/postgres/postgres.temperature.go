// FilePath: internal/repository/postgres/postgres.temperature.go
package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/roomclimate/hub/internal/database"
	"github.com/roomclimate/hub/internal/errors"
	"github.com/roomclimate/hub/internal/models"
)

// Postgres error code for foreign key violations
const pqForeignKeyViolation = "23503"

type TemperatureRepo struct {
	PostgresBaseRepo
}

func NewTemperatureRepository(db database.DB) (*TemperatureRepo, error) {
	repo := &TemperatureRepo{PostgresBaseRepo: PostgresBaseRepo{db: db}}
	if err := repo.initializeSchema(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *TemperatureRepo) initializeSchema() error {
	// Readings carry their own generated id so a room can hold any number
	// of measurements; room_id is a plain foreign key.
	queries := []string{
		`CREATE TABLE IF NOT EXISTS temperatures (
			id BIGSERIAL PRIMARY KEY,
			room_id BIGINT NOT NULL REFERENCES rooms(id),
			temperature DOUBLE PRECISION NOT NULL,
			date TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_temperatures_room_date
		 ON temperatures(room_id, date)`,
	}

	for _, query := range queries {
		_, err := r.db.GetDB().Exec(query)
		if err != nil {
			return errors.NewDatabaseError("failed to initialize temperatures schema", err)
		}
	}
	return nil
}

func (r *TemperatureRepo) InsertReading(ctx context.Context, roomID int64, temperature float64, date time.Time) error {
	query := `
		INSERT INTO temperatures (room_id, temperature, date)
		VALUES ($1, $2, $3)`

	_, err := r.db.GetDB().ExecContext(ctx, query, roomID, temperature, date)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqForeignKeyViolation {
			return errors.NewForeignKeyError("room does not exist", err)
		}
		return errors.NewDatabaseError("failed to insert temperature reading", err)
	}
	return nil
}

// averageRow separates the NULL average of an empty set from a real value
type averageRow struct {
	Average sql.NullFloat64 `db:"average"`
	Days    int             `db:"days"`
}

// GlobalAverage returns the mean over all readings in the store and the
// number of distinct calendar days any reading was recorded on. With zero
// readings the average is the defined no-data value 0.
func (r *TemperatureRepo) GlobalAverage(ctx context.Context) (*models.AverageReport, error) {
	var row averageRow
	query := `
		SELECT AVG(temperature) AS average,
		       COUNT(DISTINCT DATE(date)) AS days
		FROM temperatures`

	err := r.db.GetDB().GetContext(ctx, &row, query)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to compute global average", err)
	}
	return &models.AverageReport{Average: row.Average.Float64, Days: row.Days}, nil
}

// RoomAverage is GlobalAverage restricted to one room. A room with no
// readings yields average 0 and days 0, not an error.
func (r *TemperatureRepo) RoomAverage(ctx context.Context, roomID int64) (*models.AverageReport, error) {
	var row averageRow
	query := `
		SELECT AVG(temperature) AS average,
		       COUNT(DISTINCT DATE(date)) AS days
		FROM temperatures
		WHERE room_id = $1`

	err := r.db.GetDB().GetContext(ctx, &row, query, roomID)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to compute room average", err)
	}
	return &models.AverageReport{Average: row.Average.Float64, Days: row.Days}, nil
}

type dayBucketRow struct {
	Day         time.Time `db:"day"`
	Temperature float64   `db:"temperature"`
}

// DayBuckets groups a room's readings by calendar day and keeps only the
// buckets newer than the room's latest reading day minus windowDays. The
// window is anchored at the room's own data, not at wall-clock time.
func (r *TemperatureRepo) DayBuckets(ctx context.Context, roomID int64, windowDays int) ([]models.DayBucket, error) {
	rows := []dayBucketRow{}
	query := `
		SELECT DATE(date) AS day,
		       AVG(temperature) AS temperature
		FROM temperatures
		WHERE room_id = $1
		GROUP BY DATE(date)
		HAVING DATE(date) > (
			SELECT MAX(DATE(date)) - $2::int
			FROM temperatures
			WHERE room_id = $1
		)
		ORDER BY day ASC`

	err := r.db.GetDB().SelectContext(ctx, &rows, query, roomID, windowDays)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to compute day buckets", err)
	}

	buckets := make([]models.DayBucket, 0, len(rows))
	for _, row := range rows {
		buckets = append(buckets, models.DayBucket{
			Date:        row.Day.Format("2006-01-02"),
			Temperature: row.Temperature,
		})
	}
	return buckets, nil
}
