// FilePath: api/resources/api.resource.temperatures.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/roomclimate/hub/internal/climateservice"
	"github.com/roomclimate/hub/internal/errors"
	nuts "github.com/vaudience/go-nuts"
)

// TemperatureHandlers encapsulates the reading-related HTTP handlers
type TemperatureHandlers struct {
	service *climateservice.ClimateService
}

type recordTemperatureRequest struct {
	Room        *int64   `json:"room"`
	Temperature *float64 `json:"temperature"`
	Date        string   `json:"date"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// @Summary Record a temperature reading
// @Description Store a reading for a room. Date is optional (MM-DD-YYYY HH:MM:SS) and defaults to the current UTC time.
// @Tags temperature
// @Accept json
// @Produce json
// @Param reading body recordTemperatureRequest true "Reading details"
// @Success 201 {object} messageResponse
// @Failure 400 {object} errors.APIError
// @Router /api/temperature [post]
func (h *TemperatureHandlers) AddTemperature(w http.ResponseWriter, r *http.Request) {
	var req recordTemperatureRequest
	requestID := nuts.NID("req", 12)

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}
	if req.Room == nil {
		respondWithError(w, errors.NewValidationError("room is required", nil).WithRequestID(requestID))
		return
	}
	if req.Temperature == nil {
		respondWithError(w, errors.NewValidationError("temperature is required", nil).WithRequestID(requestID))
		return
	}

	err := h.service.RecordReading(r.Context(), *req.Room, *req.Temperature, req.Date)
	if err != nil {
		respondWithError(w, errors.AsAPIError(err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusCreated, messageResponse{Message: "Temperature added."})
}

// @Summary Get the global average temperature
// @Description Mean over all readings in the store and the count of distinct reading days. Returns {0, 0} when no readings exist.
// @Tags rooms
// @Produce json
// @Success 200 {object} models.AverageReport
// @Router /api/average [get]
func (h *TemperatureHandlers) GetGlobalAverage(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	report, err := h.service.GetGlobalAverage(r.Context())
	if err != nil {
		respondWithError(w, errors.AsAPIError(err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}
