package matching_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmate/board-service/internal/matching"
	"jobmate/board-service/internal/model"
)

// ── Sorting ───────────────────────────────────────────────────────────────

func TestSortJobs(t *testing.T) {
	jobs := fixtureJobs()

	assert.Equal(t, []string{"1", "3", "2", "4", "5"}, ids(matching.SortJobs(jobs, matching.SortMatch)))
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(matching.SortJobs(jobs, matching.SortDate)))
	assert.Equal(t, []string{"3", "1", "2", "4", "5"}, ids(matching.SortJobs(jobs, matching.SortDistance)))
	assert.Equal(t, ids(jobs), ids(matching.SortJobs(jobs, matching.SortNone)))

	// The input keeps its order.
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(jobs))
}

func TestSortJobs_StableOnTies(t *testing.T) {
	jobs := []model.Job{
		{ID: "a", AIMatchScore: intPtr(80)},
		{ID: "b"},
		{ID: "c", AIMatchScore: intPtr(80)},
		{ID: "d"},
	}
	assert.Equal(t, []string{"a", "c", "b", "d"}, ids(matching.SortJobs(jobs, matching.SortMatch)))
}

func TestParseSortBy(t *testing.T) {
	for _, s := range []string{"", "match", "date", "distance"} {
		got, ok := matching.ParseSortBy(s)
		assert.True(t, ok, s)
		assert.Equal(t, matching.SortBy(s), got)
	}
	_, ok := matching.ParseSortBy("salary")
	assert.False(t, ok)
}

// ── Distance ──────────────────────────────────────────────────────────────

func TestParseMiles(t *testing.T) {
	testCases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"0.8 miles", 0.8, true},
		{"12 miles", 12, true},
		{" 2.1 miles", 2.1, true},
		{"", 0, false},
		{"nearby", 0, false},
	}
	for _, tc := range testCases {
		got, ok := matching.ParseMiles(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.InDelta(t, tc.want, got, 1e-9, tc.in)
	}
}

func TestFilterByDistance(t *testing.T) {
	got := matching.FilterByDistance(fixtureJobs(), 1)
	// Job 5 has no distance and always passes.
	assert.Equal(t, []string{"1", "3", "5"}, ids(got))

	assert.True(t, matching.WithinDistance(model.Job{Distance: "nearby"}, 0))
	assert.True(t, matching.WithinDistance(model.Job{Distance: "1.0 miles"}, 1))
}

// ── Recommendations ───────────────────────────────────────────────────────

func TestTopMatches(t *testing.T) {
	got := matching.TopMatches(fixtureJobs(), 3)
	assert.Equal(t, []string{"1", "3", "2"}, ids(got))

	// 75 itself is not a top match.
	edge := []model.Job{{ID: "x", AIMatchScore: intPtr(75)}, {ID: "y", AIMatchScore: intPtr(76)}}
	assert.Equal(t, []string{"y"}, ids(matching.TopMatches(edge, 3)))
}

func TestScoreAll_PreservesOrder(t *testing.T) {
	jobs := fixtureJobs()
	cand := model.CandidateContext{Skills: []string{"React"}, Experience: "3-5 years"}

	got, err := matching.ScoreAll(context.Background(), jobs, cand)
	require.NoError(t, err)
	require.Len(t, got, len(jobs))
	for i, sj := range got {
		assert.Equal(t, jobs[i].ID, sj.Job.ID)
		assert.Equal(t, matching.ScoreCompatibility(jobs[i], cand), sj.Recommendation)
	}
}

func TestScoreAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := matching.ScoreAll(ctx, fixtureJobs(), model.CandidateContext{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRankRecommendations(t *testing.T) {
	cand := model.CandidateContext{
		Skills:     []string{"React", "TypeScript", "JavaScript", "CSS", "Git"},
		Experience: "5-10 years",
		Location:   "Downtown",
	}
	got, err := matching.RankRecommendations(context.Background(), fixtureJobs(), cand, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].Job.ID)
	assert.Equal(t, 100, got[0].Recommendation.OverallScore)
	assert.GreaterOrEqual(t, got[0].Recommendation.OverallScore, got[1].Recommendation.OverallScore)
}

func TestTopScored(t *testing.T) {
	scored := []model.ScoredJob{
		{Job: model.Job{ID: "a"}, Recommendation: model.Recommendation{OverallScore: 50}},
		{Job: model.Job{ID: "b"}, Recommendation: model.Recommendation{OverallScore: 80}},
		{Job: model.Job{ID: "c"}, Recommendation: model.Recommendation{OverallScore: 50}},
	}
	top := matching.TopScored(scored, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "b", top[0].Job.ID)
	assert.Equal(t, "a", top[1].Job.ID)
	assert.Len(t, matching.TopScored(scored, 0), 3)
	// Input untouched.
	assert.Equal(t, "a", scored[0].Job.ID)
}
