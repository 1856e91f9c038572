// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/roomclimate/hub/api"
	"github.com/roomclimate/hub/internal/climateservice"
	"github.com/roomclimate/hub/internal/config"
	"github.com/roomclimate/hub/internal/database"
	"github.com/roomclimate/hub/internal/monitoring"
	"github.com/roomclimate/hub/internal/repository/postgres"
	nuts "github.com/vaudience/go-nuts"
)

// Server represents our HTTP server
type Server struct {
	config     *config.Config
	srv        *http.Server
	service    *climateservice.ClimateService
	monitoring *monitoring.Service
	db         database.DB
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	return &Server{
		config: cfg,
	}
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Initialize services
	s.initializeClimateService()
	s.monitoring = monitoring.NewService(monitoring.Config{
		MetricNamespace: s.config.Monitoring.MetricNamespace,
	})

	// Set up service event handlers
	s.setupEventHandlers()

	// Build router and middleware chain
	router := api.NewRouter(s.service, s.monitoring)
	handler := handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(router)
	handler = handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(handler)

	s.srv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port),
		Handler:      handler,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	// Start server
	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (s *Server) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			nuts.L.Errorf("[Server] Error closing database: %v", err)
		}
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

func (s *Server) setupEventHandlers() {
	s.service.OnEvent("room.created", func(id string) {
		s.monitoring.RecordEvent("room_created", map[string]string{
			"room_id": id,
		})
	})

	s.service.OnEvent("reading.recorded", func(id string) {
		s.monitoring.RecordEvent("reading_recorded", map[string]string{
			"room_id": id,
		})
	})
}

// initializeClimateService connects the store and wires the repositories
func (s *Server) initializeClimateService() {
	s.db = initAppDB(s.config.Database)

	rooms, err := postgres.NewRoomRepository(s.db)
	if err != nil {
		nuts.L.Fatalf("[Server] Failed to initialize room repository: %v", err)
	}

	// Temperature schema references rooms, so room schema goes first
	temperatures, err := postgres.NewTemperatureRepository(s.db)
	if err != nil {
		nuts.L.Fatalf("[Server] Failed to initialize temperature repository: %v", err)
	}

	s.service = climateservice.New(rooms, temperatures)
}

func initAppDB(cfg config.PostgresConfig) database.DB {
	wrappedDB, err := database.NewPostgresDB(cfg)
	if err != nil {
		nuts.L.Fatalf("[Server] Failed to connect to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := wrappedDB.Ping(ctx); err != nil {
		nuts.L.Fatalf("[Server] Failed to ping database: %v", err)
	}
	return wrappedDB
}
