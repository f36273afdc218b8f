package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	ServerAddress     string
	ShutdownTimeout   time.Duration
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration

	// Storage
	DatabaseDriver string // "sqlite" or "postgres"
	DatabaseURL    string // file path for sqlite, DSN for postgres
	SeedFile       string // optional YAML seed applied at startup

	AllowedOrigins string
	LogLevel       logrus.Level
}

// Load reads configuration from the environment, after loading a .env
// file if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddress:  getenvDefault("SERVER_ADDRESS", ":8080"),
		DatabaseDriver: getenvDefault("DATABASE_DRIVER", "sqlite"),
		DatabaseURL:    getenvDefault("DATABASE_URL", "trivia.db"),
		SeedFile:       os.Getenv("SEED_FILE"),
		AllowedOrigins: getenvDefault("CORS_ALLOWED_ORIGINS", "*"),
	}

	durations := []struct {
		key      string
		fallback time.Duration
		dst      *time.Duration
	}{
		{"SHUTDOWN_TIMEOUT", 10 * time.Second, &cfg.ShutdownTimeout},
		{"SERVER_READ_TIMEOUT", 15 * time.Second, &cfg.ReadTimeout},
		{"SERVER_READ_HEADER_TIMEOUT", 5 * time.Second, &cfg.ReadHeaderTimeout},
		{"SERVER_WRITE_TIMEOUT", 30 * time.Second, &cfg.WriteTimeout},
		{"SERVER_IDLE_TIMEOUT", 60 * time.Second, &cfg.IdleTimeout},
	}
	var err error
	for _, d := range durations {
		if *d.dst, err = getDuration(d.key, d.fallback); err != nil {
			return nil, err
		}
	}

	switch cfg.DatabaseDriver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("config: DATABASE_DRIVER=%q must be sqlite or postgres", cfg.DatabaseDriver)
	}

	lvl := getenvDefault("LOG_LEVEL", "info")
	if cfg.LogLevel, err = logrus.ParseLevel(lvl); err != nil {
		return nil, fmt.Errorf("config: LOG_LEVEL=%q: %w", lvl, err)
	}

	return cfg, nil
}

// MustLoad is Load for process entrypoints: it exits on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		logrus.Fatal(err)
	}
	return cfg
}

// NewLogger builds the process logger: JSON lines on stdout.
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(c.LogLevel)
	return logger
}

func getDuration(k string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not a valid duration: %w", k, v, err)
	}
	return d, nil
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
