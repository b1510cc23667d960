package config_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmate/board-service/internal/config"
)

var allKeys = []string{
	"ENVIRONMENT", "BOARD_PORT", "BOARD_GRPC_PORT", "STORE_DRIVER", "DATABASE_URL",
	"DB_MAX_CONNS", "SQLITE_PATH", "SEED_DEMO_JOBS", "REDIS_URL", "RECOMMEND_INTERVAL_MINUTES",
	"RECOMMEND_CACHE_TTL_MINUTES", "RECOMMEND_TOP_N", "BLOCKED_TERMS", "LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "8083", cfg.Port)
	assert.Equal(t, "9083", cfg.GRPCPort)
	assert.Equal(t, config.DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "data/board.db", cfg.SQLitePath)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.True(t, cfg.SeedDemo)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, time.Hour, cfg.RecommendInterval)
	assert.Equal(t, 2*time.Hour, cfg.RecommendCacheTTL)
	assert.Equal(t, 10, cfg.RecommendTopN)
	assert.Empty(t, cfg.BlockedTerms)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/board")
	t.Setenv("RECOMMEND_INTERVAL_MINUTES", "15")
	t.Setenv("BLOCKED_TERMS", " mlm, ,commission only ")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SEED_DEMO_JOBS", "false")

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, config.DriverPostgres, cfg.StoreDriver)
	assert.Equal(t, 15*time.Minute, cfg.RecommendInterval)
	assert.Equal(t, []string{"mlm", "commission only"}, cfg.BlockedTerms)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.SeedDemo)
}

func TestFromEnv_FailFast(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{"postgres without url", map[string]string{"STORE_DRIVER": "postgres"}},
		{"unknown driver", map[string]string{"STORE_DRIVER": "mysql"}},
		{"zero interval", map[string]string{"RECOMMEND_INTERVAL_MINUTES": "0"}},
		{"non-numeric ttl", map[string]string{"RECOMMEND_CACHE_TTL_MINUTES": "soon"}},
		{"negative pool", map[string]string{"DB_MAX_CONNS": "-1"}},
		{"bad seed flag", map[string]string{"SEED_DEMO_JOBS": "maybe"}},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := config.FromEnv()
			assert.Error(t, err)
		})
	}
}
