// Package admin serves the read-only platform overview shown on the admin
// dashboard.
package admin

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"jobmate/board-service/internal/model"
	"jobmate/board-service/internal/store"
)

// Service reads platform-wide counters.
type Service struct {
	st store.Store
}

// NewService returns a Service over st.
func NewService(st store.Store) *Service {
	return &Service{st: st}
}

// Stats returns the platform counters. requestedBy is only logged; there is
// no admin role to check.
func (s *Service) Stats(ctx context.Context, requestedBy string) (model.PlatformStats, error) {
	stats, err := s.st.PlatformCounts(ctx)
	if err != nil {
		return model.PlatformStats{}, fmt.Errorf("platform stats: %w", err)
	}
	log.Debug().Str("userId", requestedBy).Int("users", stats.TotalUsers).Int("jobs", stats.TotalJobs).
		Msg("platform stats read")
	return stats, nil
}
