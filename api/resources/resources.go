// FilePath: api/resources/resources.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/roomclimate/hub/internal/climateservice"
	"github.com/roomclimate/hub/internal/errors"
	"github.com/swaggo/swag"
	nuts "github.com/vaudience/go-nuts"
)

// Resources holds all HTTP resource handlers
type Resources struct {
	Rooms        *RoomHandlers
	Temperatures *TemperatureHandlers
}

// NewResources creates a new Resources instance
func NewResources(svc *climateservice.ClimateService) *Resources {
	return &Resources{
		Rooms:        &RoomHandlers{service: svc},
		Temperatures: &TemperatureHandlers{service: svc},
	}
}

// @Summary Hello world endpoint
// @Description Plain text greeting
// @Tags example
// @Produce plain
// @Success 200 {string} string "Hello, world!"
// @Router / [get]
func (res *Resources) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Hello, world!"))
}

// HealthCheck reports service liveness and version
func (res *Resources) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok","version":"` + nuts.GetVersion() + `"}`))
}

// SwaggerSpec serves the registered swagger document as JSON
func (res *Resources) SwaggerSpec(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		respondWithError(w, errors.NewInternalError("swagger spec unavailable", err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}

// Helper functions

func respondWithError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
	nuts.L.Errorf("[API] %s", err.Error())
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
