// Package cache carries the service's Redis side effects: domain events
// published on EVENT_* channels and the per-seeker recommendation cache.
//
// Both are best effort. Callers log a failure and continue.
package cache

//go:generate mockgen -source=cache.go -destination=mocks/cache.mock.go -package=cachemocks -typed Publisher,RecommendationCache

import (
	"context"

	"jobmate/board-service/internal/model"
)

// Event channels.
const (
	EventJobPosted          = "EVENT_JOB_POSTED"
	EventApplicationCreated = "EVENT_APPLICATION_CREATED"
	EventCardMoved          = "EVENT_CARD_MOVED"
	EventRecommendationsRun = "EVENT_RECOMMENDATIONS_REFRESHED"
)

// Publisher sends a JSON-encoded payload to a channel.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload any) error
}

// RecommendationCache stores the ranked recommendations of one seeker.
type RecommendationCache interface {
	// GetRecommendations reports ok=false on a cache miss.
	GetRecommendations(ctx context.Context, userID string) (recs []model.ScoredJob, ok bool, err error)
	SetRecommendations(ctx context.Context, userID string, recs []model.ScoredJob) error
}

// Noop satisfies both interfaces without a Redis server. Every lookup misses.
type Noop struct{}

func (Noop) Publish(context.Context, string, any) error { return nil }

func (Noop) GetRecommendations(context.Context, string) ([]model.ScoredJob, bool, error) {
	return nil, false, nil
}

func (Noop) SetRecommendations(context.Context, string, []model.ScoredJob) error { return nil }
