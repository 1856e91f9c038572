package monitoring

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRecordEventAppearsInExposition(t *testing.T) {
	svc := NewService(Config{MetricNamespace: "roomtemp"})

	svc.RecordEvent("room_created", map[string]string{"room_id": "1"})
	svc.RecordEvent("room_created", map[string]string{"room_id": "2"})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	svc.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `roomtemp_events_total{event="room_created"} 2`) {
		t.Fatalf("expected event counter in exposition, got:\n%s", body)
	}
}

func TestInstrumentCountsRequests(t *testing.T) {
	svc := NewService(Config{})

	handler := svc.Instrument(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	metricsReq := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	metricsRec := httptest.NewRecorder()
	svc.Handler().ServeHTTP(metricsRec, metricsReq)

	body := metricsRec.Body.String()
	if !strings.Contains(body, `status="418"`) {
		t.Fatalf("expected instrumented status label, got:\n%s", body)
	}
}
