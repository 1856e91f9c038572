package climateservice

import (
	"math"

	"github.com/roomclimate/hub/internal/errors"
	"github.com/roomclimate/hub/internal/repository"
	nuts "github.com/vaudience/go-nuts"
)

// ClimateService contains all repositories and service-wide dependencies
type ClimateService struct {
	Rooms        repository.RoomRepository
	Temperatures repository.TemperatureRepository
	events       *nuts.EventEmitter
}

// New creates a new ClimateService instance
func New(rooms repository.RoomRepository, temperatures repository.TemperatureRepository) *ClimateService {
	return &ClimateService{
		Rooms:        rooms,
		Temperatures: temperatures,
		events:       nuts.NewEventEmitter(),
	}
}

// Validate checks if all required repositories are initialized
func (s *ClimateService) Validate() error {
	if s.Rooms == nil {
		return ErrMissingRepository("rooms")
	}
	if s.Temperatures == nil {
		return ErrMissingRepository("temperatures")
	}
	return nil
}

// OnEvent registers a callback for service events ("room.created",
// "reading.recorded")
func (s *ClimateService) OnEvent(event string, handler func(id string)) {
	s.events.On(event, "service_handler", func(args ...interface{}) {
		if len(args) > 0 {
			if id, ok := args[0].(string); ok {
				handler(id)
			}
		}
	})
}

func ErrMissingRepository(name string) error {
	return errors.NewInternalError("missing repository: "+name, nil)
}

// round2 trims an average to two decimals for response bodies
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
