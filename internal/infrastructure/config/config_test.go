package config_test

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/trivia-api/backend/internal/infrastructure/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SERVER_ADDRESS", "SHUTDOWN_TIMEOUT", "DATABASE_DRIVER", "DATABASE_URL",
		"SEED_FILE", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL",
		"SERVER_READ_TIMEOUT", "SERVER_READ_HEADER_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_IDLE_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ServerAddress != ":8080" {
		t.Errorf("expected :8080, got %q", cfg.ServerAddress)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected 10s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
	if cfg.ReadTimeout != 15*time.Second || cfg.ReadHeaderTimeout != 5*time.Second ||
		cfg.WriteTimeout != 30*time.Second || cfg.IdleTimeout != 60*time.Second {
		t.Errorf("unexpected server timeouts %v %v %v %v",
			cfg.ReadTimeout, cfg.ReadHeaderTimeout, cfg.WriteTimeout, cfg.IdleTimeout)
	}
	if cfg.DatabaseDriver != "sqlite" || cfg.DatabaseURL != "trivia.db" {
		t.Errorf("unexpected database config %q %q", cfg.DatabaseDriver, cfg.DatabaseURL)
	}
	if cfg.AllowedOrigins != "*" {
		t.Errorf("expected * origins, got %q", cfg.AllowedOrigins)
	}
	if cfg.LogLevel != logrus.InfoLevel {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:9000")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("SERVER_WRITE_TIMEOUT", "2m")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://admin@localhost:5432/trivia")
	t.Setenv("SEED_FILE", "seed/trivia.yaml")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("expected 3s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.WriteTimeout != 2*time.Minute {
		t.Errorf("expected 2m write timeout, got %v", cfg.WriteTimeout)
	}
	if cfg.DatabaseDriver != "postgres" {
		t.Errorf("expected postgres, got %q", cfg.DatabaseDriver)
	}
	if cfg.SeedFile != "seed/trivia.yaml" {
		t.Errorf("unexpected seed file %q", cfg.SeedFile)
	}
	if cfg.LogLevel != logrus.DebugLevel {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"SHUTDOWN_TIMEOUT", "soon"},
		{"SERVER_IDLE_TIMEOUT", "forever"},
		{"DATABASE_DRIVER", "mongo"},
		{"LOG_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := config.Load(); err == nil {
				t.Errorf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}
