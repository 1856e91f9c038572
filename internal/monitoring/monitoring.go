package monitoring

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	nuts "github.com/vaudience/go-nuts"
)

// Config holds monitoring configuration
type Config struct {
	MetricNamespace string
}

// Service provides metrics collection and exposition
type Service struct {
	config   Config
	registry *prometheus.Registry
	events   *prometheus.CounterVec
	requests *prometheus.CounterVec
}

// NewService creates a new monitoring service with its own registry
func NewService(config Config) *Service {
	if config.MetricNamespace == "" {
		config.MetricNamespace = "roomtemp"
	}

	registry := prometheus.NewRegistry()

	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: config.MetricNamespace,
		Name:      "events_total",
		Help:      "Service events by type.",
	}, []string{"event"})

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: config.MetricNamespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	registry.MustRegister(events, requests)

	return &Service{
		config:   config,
		registry: registry,
		events:   events,
		requests: requests,
	}
}

// RecordEvent counts a monitored event and logs it with its labels
func (s *Service) RecordEvent(eventName string, labels map[string]string) {
	s.events.WithLabelValues(eventName).Inc()
	nuts.L.Infof("[Monitoring] Event %s recorded with labels: %v", eventName, labels)
}

// Handler exposes the registry in Prometheus text format
func (s *Service) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}

// Instrument is a mux middleware counting requests per route template
func (s *Service) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		route := "unmatched"
		if current := mux.CurrentRoute(r); current != nil {
			if template, err := current.GetPathTemplate(); err == nil {
				route = template
			}
		}
		s.requests.WithLabelValues(route, r.Method, strconv.Itoa(sw.status)).Inc()
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
