package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported values of DATABASE_CLIENT.
const (
	ClientMemory   = "memory"
	ClientSQLite   = "sqlite"
	ClientPostgres = "pg"
)

// Config holds the process settings read from the environment.
type Config struct {
	Env             string
	Port            int
	DatabaseClient  string
	DatabaseURL     string
	ShutdownTimeout time.Duration
}

// Development reports whether the service runs with ENV=development.
func (c Config) Development() bool {
	return c.Env == "development"
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads an optional .env file from the working directory and then the
// process environment. Variables already set in the environment win.
func Load() (Config, error) {
	_ = godotenv.Load(".env")
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Env:             "production",
		Port:            3333,
		DatabaseClient:  ClientMemory,
		ShutdownTimeout: 5 * time.Second,
	}

	if v := strings.TrimSpace(getenv("ENV")); v != "" {
		switch v {
		case "development", "test", "production":
			cfg.Env = v
		default:
			return Config{}, fmt.Errorf("invalid ENV value '%s'", v)
		}
	}

	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("invalid PORT value '%s'", v)
		}
		cfg.Port = port
	}

	if v := strings.TrimSpace(getenv("DATABASE_CLIENT")); v != "" {
		switch v {
		case ClientMemory, ClientSQLite, ClientPostgres:
			cfg.DatabaseClient = v
		default:
			return Config{}, fmt.Errorf("invalid DATABASE_CLIENT value '%s'", v)
		}
	}

	cfg.DatabaseURL = strings.TrimSpace(getenv("DATABASE_URL"))
	if cfg.DatabaseClient != ClientMemory && cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is not set")
	}

	if v := strings.TrimSpace(getenv("SHUTDOWN_TIMEOUT_SECONDS")); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT_SECONDS value '%s'", v)
		}
		cfg.ShutdownTimeout = time.Duration(secs) * time.Second
	}

	return cfg, nil
}
