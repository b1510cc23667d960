package matching

import (
	"cmp"
	"context"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"jobmate/board-service/internal/model"
)

// topMatchThreshold is the precomputed score a job must exceed to be
// highlighted as a top match.
const topMatchThreshold = 75

// TopMatches returns up to n jobs whose precomputed score is above 75,
// best first.
func TopMatches(jobs []model.Job, n int) []model.Job {
	top := make([]model.Job, 0, n)
	for _, job := range jobs {
		if job.AIMatchScore != nil && *job.AIMatchScore > topMatchThreshold {
			top = append(top, job)
		}
	}
	top = SortJobs(top, SortMatch)
	if len(top) > n {
		top = top[:n]
	}
	return top
}

// ScoreAll scores every job against candidate in parallel. The result is in
// input order. Only a cancelled ctx produces an error.
func ScoreAll(ctx context.Context, jobs []model.Job, candidate model.CandidateContext) ([]model.ScoredJob, error) {
	out := make([]model.ScoredJob, len(jobs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i := range jobs {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = model.ScoredJob{
				Job:            jobs[i],
				Recommendation: ScoreCompatibility(jobs[i], candidate),
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// RankRecommendations scores jobs for candidate and returns the n best,
// highest overall score first. Ties keep input order. n <= 0 means all.
func RankRecommendations(ctx context.Context, jobs []model.Job, candidate model.CandidateContext, n int) ([]model.ScoredJob, error) {
	scored, err := ScoreAll(ctx, jobs, candidate)
	if err != nil {
		return nil, err
	}
	return TopScored(scored, n), nil
}

// TopScored returns the n best of scored, highest overall score first, as a
// new slice. Ties keep input order. n <= 0 means all.
func TopScored(scored []model.ScoredJob, n int) []model.ScoredJob {
	out := slices.Clone(scored)
	slices.SortStableFunc(out, func(a, b model.ScoredJob) int {
		return cmp.Compare(b.Recommendation.OverallScore, a.Recommendation.OverallScore)
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
