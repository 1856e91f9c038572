// FilePath: internal/climateservice/climateservice.rooms.go
package climateservice

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/roomclimate/hub/internal/errors"
	"github.com/roomclimate/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// Terms maps the recognized aggregation windows to their length in days.
// An explicit table so an unknown term is a validation failure, never a
// lookup panic.
var Terms = map[string]int{
	"week":  7,
	"month": 30,
}

// CreateRoom inserts a new room and returns its generated id
func (s *ClimateService) CreateRoom(ctx context.Context, name string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, errors.NewValidationError("name is required", nil)
	}

	room := &models.Room{Name: name}
	if err := s.Rooms.Create(ctx, room); err != nil {
		return 0, err
	}

	nuts.L.Infof("[ClimateService] Created room %d (%s)", room.ID, room.Name)
	s.events.Emit("room.created", strconv.FormatInt(room.ID, 10))
	return room.ID, nil
}

// GetRoomSummary returns the unfiltered per-room view: name (null when the
// room does not exist), mean temperature (0 with no readings) and the count
// of distinct calendar days with at least one reading.
func (s *ClimateService) GetRoomSummary(ctx context.Context, roomID int64) (*models.RoomSummary, error) {
	summary := &models.RoomSummary{}

	name, err := s.Rooms.GetName(ctx, roomID)
	if err != nil {
		if !errors.IsNotFound(err) {
			return nil, err
		}
		// Missing room is not an error on this path; name stays null
	} else {
		summary.Name = &name
	}

	report, err := s.Temperatures.RoomAverage(ctx, roomID)
	if err != nil {
		return nil, err
	}
	summary.Average = round2(report.Average)
	summary.Days = report.Days

	return summary, nil
}

// GetRoomTermReport returns the windowed per-room view: one averaged bucket
// per calendar day inside the term window, newest window anchored at the
// room's latest reading day, plus the unweighted mean of the bucket averages.
func (s *ClimateService) GetRoomTermReport(ctx context.Context, roomID int64, term string) (*models.RoomTermReport, error) {
	windowDays, ok := Terms[term]
	if !ok {
		return nil, errors.NewValidationError(
			fmt.Sprintf("unrecognized term %q: valid terms are \"week\" and \"month\"", term), nil)
	}

	name, err := s.Rooms.GetName(ctx, roomID)
	if err != nil {
		return nil, err
	}

	buckets, err := s.Temperatures.DayBuckets(ctx, roomID, windowDays)
	if err != nil {
		return nil, err
	}

	report := &models.RoomTermReport{
		Name:         name,
		Temperatures: buckets,
	}
	if report.Temperatures == nil {
		// Marshals as [] rather than null
		report.Temperatures = []models.DayBucket{}
	}

	// Empty window is a defined no-data result, not a division error
	if len(buckets) > 0 {
		sum := 0.0
		for _, bucket := range buckets {
			sum += bucket.Temperature
		}
		report.Average = round2(sum / float64(len(buckets)))
	}

	return report, nil
}
