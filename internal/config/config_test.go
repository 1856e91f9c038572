package config

import (
	"testing"
	"time"
)

func TestLoadRequiresDatabaseHost(t *testing.T) {
	if _, err := Load(); err == nil {
		t.Fatalf("expected validation error without database host")
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("ROOMTEMP_DATABASE_HOST", "localhost")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 30*time.Second {
		t.Fatalf("expected 30s shutdown timeout, got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Database.Port != 5432 {
		t.Fatalf("expected default database port 5432, got %d", cfg.Database.Port)
	}
	if cfg.Database.SSLMode != "disable" {
		t.Fatalf("expected sslmode disable, got %q", cfg.Database.SSLMode)
	}
	if cfg.Database.DBName != "roomtemp" {
		t.Fatalf("expected default database name, got %q", cfg.Database.DBName)
	}
}

func TestLoadReadsEnvironmentOverrides(t *testing.T) {
	t.Setenv("ROOMTEMP_DATABASE_HOST", "db.internal")
	t.Setenv("ROOMTEMP_DATABASE_PORT", "5433")
	t.Setenv("ROOMTEMP_SERVER_PORT", "9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load error: %v", err)
	}

	if cfg.Database.Host != "db.internal" {
		t.Fatalf("expected host override, got %q", cfg.Database.Host)
	}
	if cfg.Database.Port != 5433 {
		t.Fatalf("expected port override, got %d", cfg.Database.Port)
	}
	if cfg.Server.Port != 9999 {
		t.Fatalf("expected server port override, got %d", cfg.Server.Port)
	}
}
