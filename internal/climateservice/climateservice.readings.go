// FilePath: internal/climateservice/climateservice.readings.go
package climateservice

import (
	"context"
	"strconv"
	"time"

	"github.com/roomclimate/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// ReadingDateLayout is the accepted format for caller-supplied reading
// timestamps (MM-DD-YYYY HH:MM:SS)
const ReadingDateLayout = "01-02-2006 15:04:05"

// RecordReading stores a temperature reading for a room. An absent or
// unparseable date defaults to the current UTC time.
func (s *ClimateService) RecordReading(ctx context.Context, roomID int64, temperature float64, date string) error {
	timestamp := time.Now().UTC()
	if date != "" {
		parsed, err := time.Parse(ReadingDateLayout, date)
		if err != nil {
			nuts.L.Warnf("[ClimateService] Unparseable reading date %q, defaulting to now: %v", date, err)
		} else {
			timestamp = parsed
		}
	}

	if err := s.Temperatures.InsertReading(ctx, roomID, temperature, timestamp); err != nil {
		return err
	}

	nuts.L.Infof("[ClimateService] Recorded %.2f for room %d at %s", temperature, roomID, timestamp.Format(time.RFC3339))
	s.events.Emit("reading.recorded", strconv.FormatInt(roomID, 10))
	return nil
}

// GetGlobalAverage returns the mean of every reading in the store and the
// number of distinct calendar days covered. Zero readings yield the defined
// no-data result {0, 0}.
func (s *ClimateService) GetGlobalAverage(ctx context.Context) (*models.AverageReport, error) {
	report, err := s.Temperatures.GlobalAverage(ctx)
	if err != nil {
		return nil, err
	}
	report.Average = round2(report.Average)
	return report, nil
}
