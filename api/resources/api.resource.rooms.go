// FilePath: api/resources/api.resource.rooms.go
package resources

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/roomclimate/hub/internal/climateservice"
	"github.com/roomclimate/hub/internal/errors"
	nuts "github.com/vaudience/go-nuts"
)

// RoomHandlers encapsulates the room-related HTTP handlers
type RoomHandlers struct {
	service *climateservice.ClimateService
}

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return decoder
}

type createRoomRequest struct {
	Name *string `json:"name"`
}

type createRoomResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type roomQuery struct {
	Term string `schema:"term"`
}

// @Summary Create a new room
// @Description Create a new room with the provided name
// @Tags rooms
// @Accept json
// @Produce json
// @Param room body createRoomRequest true "Room details"
// @Success 201 {object} createRoomResponse
// @Failure 400 {object} errors.APIError
// @Router /api/room [post]
func (h *RoomHandlers) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	requestID := nuts.NID("req", 12)

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}
	if req.Name == nil {
		respondWithError(w, errors.NewValidationError("name is required", nil).WithRequestID(requestID))
		return
	}

	id, err := h.service.CreateRoom(r.Context(), *req.Name)
	if err != nil {
		respondWithError(w, errors.AsAPIError(err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusCreated, createRoomResponse{
		ID:      id,
		Message: fmt.Sprintf("Room: %s", *req.Name),
	})
}

// @Summary Get a room's average temperature
// @Description Without term: name, overall average and distinct reading days. With term (week|month): per-day buckets inside the window and their mean.
// @Tags rooms
// @Produce json
// @Param room_id path int true "Room ID"
// @Param term query string false "Aggregation window" Enums(week, month)
// @Success 200 {object} models.RoomTermReport
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Router /api/room/{room_id} [get]
func (h *RoomHandlers) GetRoom(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)

	roomID, err := strconv.ParseInt(vars["room_id"], 10, 64)
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid room id", err).WithRequestID(requestID))
		return
	}

	var query roomQuery
	if err := queryDecoder.Decode(&query, r.URL.Query()); err != nil {
		respondWithError(w, errors.NewValidationError("invalid query parameters", err).WithRequestID(requestID))
		return
	}

	if query.Term == "" {
		summary, err := h.service.GetRoomSummary(r.Context(), roomID)
		if err != nil {
			respondWithError(w, errors.AsAPIError(err).WithRequestID(requestID))
			return
		}
		respondWithJSON(w, http.StatusOK, summary)
		return
	}

	report, err := h.service.GetRoomTermReport(r.Context(), roomID, query.Term)
	if err != nil {
		respondWithError(w, errors.AsAPIError(err).WithRequestID(requestID))
		return
	}
	respondWithJSON(w, http.StatusOK, report)
}
