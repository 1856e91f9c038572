package resources

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/roomclimate/hub/internal/climateservice"
	"github.com/roomclimate/hub/internal/database"
	"github.com/roomclimate/hub/internal/errors"
	"github.com/roomclimate/hub/internal/models"
)

type stubRoomRepo struct {
	nextID int64
	names  map[int64]string
}

func (s *stubRoomRepo) BeginTx(_ context.Context) (database.Transaction, error) {
	return nil, nil
}

func (s *stubRoomRepo) Create(_ context.Context, room *models.Room) error {
	s.nextID++
	room.ID = s.nextID
	if s.names == nil {
		s.names = map[int64]string{}
	}
	s.names[room.ID] = room.Name
	return nil
}

func (s *stubRoomRepo) GetName(_ context.Context, id int64) (string, error) {
	name, ok := s.names[id]
	if !ok {
		return "", errors.NewNotFoundError("room not found", sql.ErrNoRows)
	}
	return name, nil
}

type stubTemperatureRepo struct {
	inserted   int
	insertErr  error
	average    models.AverageReport
	buckets    []models.DayBucket
	lastWindow int
}

func (s *stubTemperatureRepo) BeginTx(_ context.Context) (database.Transaction, error) {
	return nil, nil
}

func (s *stubTemperatureRepo) InsertReading(_ context.Context, _ int64, _ float64, _ time.Time) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.inserted++
	return nil
}

func (s *stubTemperatureRepo) GlobalAverage(_ context.Context) (*models.AverageReport, error) {
	report := s.average
	return &report, nil
}

func (s *stubTemperatureRepo) RoomAverage(_ context.Context, _ int64) (*models.AverageReport, error) {
	report := s.average
	return &report, nil
}

func (s *stubTemperatureRepo) DayBuckets(_ context.Context, _ int64, windowDays int) ([]models.DayBucket, error) {
	s.lastWindow = windowDays
	return s.buckets, nil
}

func newTestResources(t *testing.T) (*Resources, *stubRoomRepo, *stubTemperatureRepo) {
	t.Helper()
	rooms := &stubRoomRepo{}
	temperatures := &stubTemperatureRepo{}
	svc := climateservice.New(rooms, temperatures)
	return NewResources(svc), rooms, temperatures
}

// roomRouter wires the path variable the way the real router does
func roomRouter(res *Resources) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/room/{room_id:[0-9]+}", res.Rooms.GetRoom).Methods(http.MethodGet)
	return r
}

func decodeBody(t *testing.T, res *http.Response, into any) {
	t.Helper()
	if err := json.NewDecoder(res.Body).Decode(into); err != nil {
		t.Fatalf("decode error: %v", err)
	}
}

func TestHomeReturnsGreeting(t *testing.T) {
	res, _, _ := newTestResources(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	res.Home(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if body := rr.Body.String(); body != "Hello, world!" {
		t.Fatalf("expected greeting, got %q", body)
	}
}

func TestCreateRoomReturnsCreated(t *testing.T) {
	res, _, _ := newTestResources(t)

	req := httptest.NewRequest(http.MethodPost, "/api/room", strings.NewReader(`{"name":"Kitchen"}`))
	rr := httptest.NewRecorder()
	res.Rooms.CreateRoom(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}

	var payload struct {
		ID      int64  `json:"id"`
		Message string `json:"message"`
	}
	decodeBody(t, rr.Result(), &payload)
	if payload.ID != 1 {
		t.Fatalf("expected id 1, got %d", payload.ID)
	}
	if payload.Message != "Room: Kitchen" {
		t.Fatalf("unexpected message %q", payload.Message)
	}
}

func TestCreateRoomRejectsMissingName(t *testing.T) {
	res, rooms, _ := newTestResources(t)

	req := httptest.NewRequest(http.MethodPost, "/api/room", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	res.Rooms.CreateRoom(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if rooms.nextID != 0 {
		t.Fatalf("expected no room created")
	}

	var payload struct {
		Type string `json:"type"`
	}
	decodeBody(t, rr.Result(), &payload)
	if payload.Type != "validation" {
		t.Fatalf("expected validation error, got %q", payload.Type)
	}
}

func TestAddTemperatureReturnsCreated(t *testing.T) {
	res, _, temperatures := newTestResources(t)

	body := `{"room":1,"temperature":21.5,"date":"07-04-2023 18:30:00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/temperature", strings.NewReader(body))
	rr := httptest.NewRecorder()
	res.Temperatures.AddTemperature(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}
	if temperatures.inserted != 1 {
		t.Fatalf("expected one inserted reading, got %d", temperatures.inserted)
	}

	var payload struct {
		Message string `json:"message"`
	}
	decodeBody(t, rr.Result(), &payload)
	if payload.Message != "Temperature added." {
		t.Fatalf("unexpected message %q", payload.Message)
	}
}

func TestAddTemperatureRejectsMissingFields(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing room", `{"temperature":21.5}`},
		{"missing temperature", `{"room":1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, _, temperatures := newTestResources(t)

			req := httptest.NewRequest(http.MethodPost, "/api/temperature", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			res.Temperatures.AddTemperature(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rr.Code)
			}
			if temperatures.inserted != 0 {
				t.Fatalf("expected no inserted reading")
			}
		})
	}
}

func TestAddTemperatureForeignKeyViolationIsClientError(t *testing.T) {
	res, _, temperatures := newTestResources(t)
	temperatures.insertErr = errors.NewForeignKeyError("room does not exist", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/temperature", strings.NewReader(`{"room":99,"temperature":21.5}`))
	rr := httptest.NewRecorder()
	res.Temperatures.AddTemperature(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	var payload struct {
		Type string `json:"type"`
	}
	decodeBody(t, rr.Result(), &payload)
	if payload.Type != "foreign_key" {
		t.Fatalf("expected foreign_key error, got %q", payload.Type)
	}
}

func TestGlobalAverageNoData(t *testing.T) {
	res, _, _ := newTestResources(t)

	req := httptest.NewRequest(http.MethodGet, "/api/average", nil)
	rr := httptest.NewRecorder()
	res.Temperatures.GetGlobalAverage(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var payload models.AverageReport
	decodeBody(t, rr.Result(), &payload)
	if payload.Average != 0 || payload.Days != 0 {
		t.Fatalf("expected no-data result, got %+v", payload)
	}
}

func TestGetRoomSummaryScenario(t *testing.T) {
	// Room "Kitchen" with readings 70.0 and 72.0 on the same calendar day
	res, rooms, temperatures := newTestResources(t)
	rooms.names = map[int64]string{1: "Kitchen"}
	temperatures.average = models.AverageReport{Average: 71.0, Days: 1}

	req := httptest.NewRequest(http.MethodGet, "/api/room/1", nil)
	rr := httptest.NewRecorder()
	roomRouter(res).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var payload struct {
		Name    *string `json:"name"`
		Average float64 `json:"average"`
		Days    int     `json:"days"`
	}
	decodeBody(t, rr.Result(), &payload)
	if payload.Name == nil || *payload.Name != "Kitchen" {
		t.Fatalf("expected name Kitchen, got %v", payload.Name)
	}
	if payload.Average != 71.0 {
		t.Fatalf("expected average 71.0, got %v", payload.Average)
	}
	if payload.Days != 1 {
		t.Fatalf("expected days 1, got %d", payload.Days)
	}
}

func TestGetRoomSummaryMissingRoomReturnsNullName(t *testing.T) {
	res, _, _ := newTestResources(t)

	req := httptest.NewRequest(http.MethodGet, "/api/room/42", nil)
	rr := httptest.NewRecorder()
	roomRouter(res).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 on unfiltered path, got %d", rr.Code)
	}

	var payload map[string]any
	decodeBody(t, rr.Result(), &payload)
	if payload["name"] != nil {
		t.Fatalf("expected null name, got %v", payload["name"])
	}
}

func TestGetRoomTermSelectsWindow(t *testing.T) {
	res, rooms, temperatures := newTestResources(t)
	rooms.names = map[int64]string{1: "Kitchen"}
	temperatures.buckets = []models.DayBucket{
		{Date: "2023-07-01", Temperature: 70.0},
		{Date: "2023-07-02", Temperature: 72.0},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/room/1?term=week", nil)
	rr := httptest.NewRecorder()
	roomRouter(res).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if temperatures.lastWindow != 7 {
		t.Fatalf("expected 7 day window, got %d", temperatures.lastWindow)
	}

	var payload models.RoomTermReport
	decodeBody(t, rr.Result(), &payload)
	if payload.Name != "Kitchen" {
		t.Fatalf("expected Kitchen, got %q", payload.Name)
	}
	if len(payload.Temperatures) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(payload.Temperatures))
	}
	if payload.Average != 71.0 {
		t.Fatalf("expected average 71.0, got %v", payload.Average)
	}
}

func TestGetRoomTermMonthWindow(t *testing.T) {
	res, rooms, temperatures := newTestResources(t)
	rooms.names = map[int64]string{1: "Kitchen"}

	req := httptest.NewRequest(http.MethodGet, "/api/room/1?term=month", nil)
	rr := httptest.NewRecorder()
	roomRouter(res).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if temperatures.lastWindow != 30 {
		t.Fatalf("expected 30 day window, got %d", temperatures.lastWindow)
	}
}

func TestGetRoomTermUnknownTermIsBadRequest(t *testing.T) {
	res, rooms, _ := newTestResources(t)
	rooms.names = map[int64]string{1: "Kitchen"}

	req := httptest.NewRequest(http.MethodGet, "/api/room/1?term=decade", nil)
	rr := httptest.NewRecorder()
	roomRouter(res).ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestGetRoomTermMissingRoomIsNotFound(t *testing.T) {
	res, _, _ := newTestResources(t)

	req := httptest.NewRequest(http.MethodGet, "/api/room/42?term=week", nil)
	rr := httptest.NewRecorder()
	roomRouter(res).ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}
