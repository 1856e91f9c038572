package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/roomclimate/hub/api/resources"
	"github.com/roomclimate/hub/internal/climateservice"
	"github.com/roomclimate/hub/internal/monitoring"
)

type Router struct {
	router    *mux.Router
	resources *resources.Resources
}

func NewRouter(svc *climateservice.ClimateService, mon *monitoring.Service) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		resources: resources.NewResources(svc),
	}

	r.router.Use(mon.Instrument)
	r.setupRoutes(mon)
	return r
}

func (r *Router) setupRoutes(mon *monitoring.Service) {
	// Root and operational routes
	r.router.HandleFunc("/", r.resources.Home).Methods(http.MethodGet)
	r.router.Handle("/metrics", mon.Handler()).Methods(http.MethodGet)
	r.router.HandleFunc("/swagger", r.resources.SwaggerSpec).Methods(http.MethodGet)

	// API routes
	api := r.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", r.resources.HealthCheck).Methods(http.MethodGet)

	// Rooms
	api.HandleFunc("/room", r.resources.Rooms.CreateRoom).Methods(http.MethodPost)
	api.HandleFunc("/room/{room_id:[0-9]+}", r.resources.Rooms.GetRoom).Methods(http.MethodGet)

	// Temperatures
	api.HandleFunc("/temperature", r.resources.Temperatures.AddTemperature).Methods(http.MethodPost)
	api.HandleFunc("/average", r.resources.Temperatures.GetGlobalAverage).Methods(http.MethodGet)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
