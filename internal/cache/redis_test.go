package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmate/board-service/internal/cache"
	"jobmate/board-service/internal/model"
)

func TestNoop(t *testing.T) {
	ctx := context.Background()
	var n cache.Noop

	assert.NoError(t, n.Publish(ctx, cache.EventJobPosted, map[string]string{"jobId": "1"}))
	assert.NoError(t, n.SetRecommendations(ctx, "u1", []model.ScoredJob{{Job: model.Job{ID: "1"}}}))

	recs, ok, err := n.GetRecommendations(ctx, "u1")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, recs)
}

func TestRecommendationsKey(t *testing.T) {
	assert.Equal(t, "recs:u-42", cache.RecommendationsKey("u-42"))
}

// The Redis round trip needs a live server: REDIS_TEST_URL=redis://localhost:6379/15.
func TestRedis_RoundTrip(t *testing.T) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}
	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	rdb := redis.NewClient(opts)
	t.Cleanup(func() { _ = rdb.Close() })

	ctx := context.Background()
	c := cache.NewRedis(rdb, time.Minute)
	user := "cache-test-" + time.Now().Format("150405.000000")
	t.Cleanup(func() { rdb.Del(ctx, cache.RecommendationsKey(user)) })

	_, ok, err := c.GetRecommendations(ctx, user)
	require.NoError(t, err)
	assert.False(t, ok)

	want := []model.ScoredJob{{
		Job:            model.Job{ID: "1", Title: "Barista", Skills: []string{"Coffee"}},
		Recommendation: model.Recommendation{OverallScore: 70, ShouldApply: true, Reasons: []string{"r"}, Concerns: []string{}},
	}}
	require.NoError(t, c.SetRecommendations(ctx, user, want))

	got, ok, err := c.GetRecommendations(ctx, user)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)

	ttl, err := rdb.TTL(ctx, cache.RecommendationsKey(user)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	assert.NoError(t, c.Publish(ctx, cache.EventRecommendationsRun, map[string]int{"seekers": 1}))
}
