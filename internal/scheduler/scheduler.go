// Package scheduler wires up the cron job that periodically recomputes
// recommendations for every seeker profile.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"jobmate/board-service/internal/cache"
	"jobmate/board-service/internal/matching"
	"jobmate/board-service/internal/metrics"
	"jobmate/board-service/internal/store"
)

// Scheduler wraps robfig/cron and manages the recommendation pass.
type Scheduler struct {
	cron    *cron.Cron
	st      store.Store
	recs    cache.RecommendationCache
	pub     cache.Publisher
	metrics *metrics.Recorder
	topN    int
	spec    string // cron spec, e.g. "@every 60m"
	running atomic.Bool
	initial sync.WaitGroup // the pass Start runs outside cron
	logger  zerolog.Logger
}

// New creates a Scheduler that fires every interval.
func New(st store.Store, recs cache.RecommendationCache, pub cache.Publisher, m *metrics.Recorder, interval time.Duration, topN int) *Scheduler {
	logger := log.With().Str("component", "scheduler").Logger()
	return &Scheduler{
		cron:    cron.New(cron.WithLogger(cronLogger{logger})),
		st:      st,
		recs:    recs,
		pub:     pub,
		metrics: m,
		topN:    topN,
		spec:    fmt.Sprintf("@every %s", interval),
		logger:  logger,
	}
}

// Start registers the pass and starts the scheduler. One pass also runs
// immediately so recommendations exist without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.logger.Info().Str("spec", s.spec).Msg("cron started")

	s.initial.Add(1)
	go func() {
		defer s.initial.Done()
		s.run(ctx)
	}()

	return nil
}

// Stop halts the scheduler and waits for running passes to finish, the
// initial one included.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.initial.Wait()
	s.logger.Info().Msg("cron stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	if err := s.RunOnce(ctx); err != nil {
		s.logger.Error().Err(err).Msg("recommendation pass failed")
	}
}

// PassResult summarises one recommendation pass.
type PassResult struct {
	Profiles int `json:"profiles"`
	Jobs     int `json:"jobs"`
	Scored   int `json:"scored"`
}

// RunOnce scores every job for every seeker profile, caches each seeker's
// top recommendations and stores on each job the best score any seeker
// reached. Overlapping calls return immediately.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Debug().Msg("pass already running, skipped")
		return nil
	}
	defer s.running.Store(false)

	start := time.Now()
	defer s.metrics.PassFinished(start)

	profiles, err := s.st.ListProfiles(ctx)
	if err != nil {
		return fmt.Errorf("list profiles: %w", err)
	}
	if len(profiles) == 0 {
		s.logger.Info().Msg("no seeker profiles, nothing to score")
		return nil
	}
	jobs, err := s.st.ListJobs(ctx)
	if err != nil {
		return fmt.Errorf("list jobs: %w", err)
	}

	best := make(map[string]int, len(jobs))
	res := PassResult{Profiles: len(profiles), Jobs: len(jobs)}
	for _, p := range profiles {
		scored, err := matching.ScoreAll(ctx, jobs, p.Candidate())
		if err != nil {
			return err
		}
		res.Scored += len(scored)
		for _, sj := range scored {
			if cur, ok := best[sj.Job.ID]; !ok || sj.Recommendation.OverallScore > cur {
				best[sj.Job.ID] = sj.Recommendation.OverallScore
			}
		}
		if err := s.recs.SetRecommendations(ctx, p.UserID, matching.TopScored(scored, s.topN)); err != nil {
			s.logger.Warn().Err(err).Str("userId", p.UserID).Msg("recommendation cache write failed")
		}
	}
	s.metrics.Scored(metrics.SourceScheduler, res.Scored)

	for _, job := range jobs {
		score, ok := best[job.ID]
		if !ok || job.AIMatchScore != nil && *job.AIMatchScore == score {
			continue
		}
		if err := s.st.SetJobMatchScore(ctx, job.ID, score); err != nil {
			s.logger.Warn().Err(err).Str("jobId", job.ID).Msg("match score update failed")
		}
	}

	if err := s.pub.Publish(ctx, cache.EventRecommendationsRun, res); err != nil {
		s.logger.Warn().Err(err).Str("channel", cache.EventRecommendationsRun).Msg("publish failed")
	}
	s.logger.Info().
		Int("profiles", res.Profiles).
		Int("jobs", res.Jobs).
		Dur("took", time.Since(start)).
		Msg("recommendation pass complete")
	return nil
}

// cronLogger routes robfig/cron's logging through zerolog.
type cronLogger struct {
	l zerolog.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.l.Debug().Fields(keysAndValues).Msg(msg)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.l.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
