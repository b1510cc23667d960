// Package app opens the backing services shared by the board binaries.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"jobmate/board-service/internal/cache"
	"jobmate/board-service/internal/config"
	"jobmate/board-service/internal/db"
	"jobmate/board-service/internal/store"
)

// SetupLogging configures the global zerolog logger. Development gets a
// human-readable console writer on w, everything else JSON.
func SetupLogging(cfg *config.Config, w *os.File, service string) {
	zerolog.SetGlobalLevel(cfg.LogLevel)
	zerolog.TimeFieldFormat = time.RFC3339

	var logger zerolog.Logger
	if cfg.IsProduction() {
		logger = zerolog.New(w)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
	}
	log.Logger = logger.With().Timestamp().Str("service", service).Logger()
}

// Deps are the opened backing services.
type Deps struct {
	Store     store.Store
	Publisher cache.Publisher
	Recs      cache.RecommendationCache

	closers []func()
}

// Close releases everything Open acquired, last opened first.
func (d *Deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

// Open connects the store selected by cfg, seeds the demo catalogue when
// enabled, and connects Redis when configured. Without Redis, events and the
// recommendation cache are no-ops.
func Open(ctx context.Context, cfg *config.Config) (*Deps, error) {
	d := &Deps{Publisher: cache.Noop{}, Recs: cache.Noop{}}

	switch cfg.StoreDriver {
	case config.DriverPostgres:
		log.Info().Msg("connecting to PostgreSQL")
		pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		d.closers = append(d.closers, pool.Close)
		pg := store.NewPostgres(pool)
		if err := pg.Migrate(ctx); err != nil {
			d.Close()
			return nil, fmt.Errorf("postgres migrate: %w", err)
		}
		d.Store = pg
		log.Info().Msg("PostgreSQL connected")
	default:
		lite, err := store.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("sqlite: %w", err)
		}
		d.closers = append(d.closers, func() { _ = lite.Close() })
		d.Store = lite
		log.Info().Str("path", cfg.SQLitePath).Msg("SQLite opened")
	}

	if cfg.SeedDemo {
		n, err := store.SeedIfEmpty(ctx, d.Store, store.DemoJobs)
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
		if n > 0 {
			log.Info().Int("jobs", n).Msg("demo catalogue seeded")
		}
	}

	if cfg.RedisURL == "" {
		log.Info().Msg("REDIS_URL not set, events and recommendation cache disabled")
		return d, nil
	}
	log.Info().Msg("connecting to Redis")
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("redis: %w", err)
	}
	d.closers = append(d.closers, func() { _ = rdb.Close() })
	rc := cache.NewRedis(rdb, cfg.RecommendCacheTTL)
	d.Publisher, d.Recs = rc, rc
	log.Info().Msg("Redis connected")
	return d, nil
}
