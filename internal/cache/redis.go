package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"jobmate/board-service/internal/model"
)

const recommendationsPrefix = "recs:"

// Redis implements Publisher and RecommendationCache over one client.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedis returns a Redis cache whose recommendation entries expire after ttl.
func NewRedis(rdb *redis.Client, ttl time.Duration) *Redis {
	return &Redis{rdb: rdb, ttl: ttl}
}

// RecommendationsKey is the key holding userID's cached recommendations.
func RecommendationsKey(userID string) string { return recommendationsPrefix + userID }

func (r *Redis) Publish(ctx context.Context, channel string, payload any) error {
	event, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", channel, err)
	}
	if err := r.rdb.Publish(ctx, channel, event).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", channel, err)
	}
	return nil
}

func (r *Redis) GetRecommendations(ctx context.Context, userID string) ([]model.ScoredJob, bool, error) {
	raw, err := r.rdb.Get(ctx, RecommendationsKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get recommendations: %w", err)
	}
	var recs []model.ScoredJob
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, false, fmt.Errorf("decode recommendations: %w", err)
	}
	return recs, true, nil
}

func (r *Redis) SetRecommendations(ctx context.Context, userID string, recs []model.ScoredJob) error {
	raw, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("encode recommendations: %w", err)
	}
	if err := r.rdb.Set(ctx, RecommendationsKey(userID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("set recommendations: %w", err)
	}
	return nil
}

var (
	_ Publisher           = (*Redis)(nil)
	_ RecommendationCache = (*Redis)(nil)
	_ Publisher           = Noop{}
	_ RecommendationCache = Noop{}
)
