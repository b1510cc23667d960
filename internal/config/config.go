// Package config loads and validates environment variables at startup.
// Fail-fast: an invalid value stops the process before any connection is made.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Store drivers accepted by STORE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all runtime configuration for the board service.
type Config struct {
	Environment string
	Port        string
	GRPCPort    string

	StoreDriver string
	DatabaseURL string
	DBMaxConns  int32
	SQLitePath  string
	SeedDemo    bool

	// RedisURL is optional; events and the recommendation cache are
	// disabled when it is empty.
	RedisURL string

	RecommendInterval time.Duration
	RecommendCacheTTL time.Duration
	RecommendTopN     int

	// BlockedTerms rejects job posts whose text contains any of them.
	BlockedTerms []string

	LogLevel zerolog.Level
}

// Load reads .env (when present) and the process environment and returns a
// validated Config.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("BOARD_PORT", "8083"),
		GRPCPort:    getEnv("BOARD_GRPC_PORT", "9083"),
		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", DriverSQLite)),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  getEnv("SQLITE_PATH", "data/board.db"),
		RedisURL:    os.Getenv("REDIS_URL"),
	}

	switch cfg.StoreDriver {
	case DriverSQLite:
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when STORE_DRIVER=postgres")
		}
	default:
		return nil, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", DriverSQLite, DriverPostgres, cfg.StoreDriver)
	}

	maxConns, err := positiveInt("DB_MAX_CONNS", 10)
	if err != nil {
		return nil, err
	}
	cfg.DBMaxConns = int32(maxConns)

	interval, err := positiveInt("RECOMMEND_INTERVAL_MINUTES", 60)
	if err != nil {
		return nil, err
	}
	cfg.RecommendInterval = time.Duration(interval) * time.Minute

	ttl, err := positiveInt("RECOMMEND_CACHE_TTL_MINUTES", 120)
	if err != nil {
		return nil, err
	}
	cfg.RecommendCacheTTL = time.Duration(ttl) * time.Minute

	if cfg.RecommendTopN, err = positiveInt("RECOMMEND_TOP_N", 10); err != nil {
		return nil, err
	}

	seed := getEnv("SEED_DEMO_JOBS", "true")
	if cfg.SeedDemo, err = strconv.ParseBool(seed); err != nil {
		return nil, fmt.Errorf("SEED_DEMO_JOBS must be a boolean, got %q", seed)
	}

	for _, term := range strings.Split(os.Getenv("BLOCKED_TERMS"), ",") {
		if term = strings.TrimSpace(term); term != "" {
			cfg.BlockedTerms = append(cfg.BlockedTerms, term)
		}
	}

	level := getEnv("LOG_LEVEL", "info")
	if cfg.LogLevel, err = zerolog.ParseLevel(level); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL %q: %w", level, err)
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with ENVIRONMENT=production.
func (c *Config) IsProduction() bool { return c.Environment == "production" }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func positiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, s)
	}
	return v, nil
}
