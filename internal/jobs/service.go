// Package jobs serves the job catalogue: search, posting, the "Should I
// apply?" verdict, recommendations and seeker profiles.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"jobmate/board-service/internal/billing"
	"jobmate/board-service/internal/cache"
	"jobmate/board-service/internal/matching"
	"jobmate/board-service/internal/metrics"
	"jobmate/board-service/internal/model"
	"jobmate/board-service/internal/store"
)

var (
	ErrNotFound        = errors.New("job not found")
	ErrProfileNotFound = errors.New("profile not found")
)

// SearchOptions are the jobs-page controls applied after filtering.
type SearchOptions struct {
	SortBy matching.SortBy
	// MaxDistance in miles; zero disables the distance filter.
	MaxDistance float64
}

// Options configures a Service.
type Options struct {
	BlockedTerms []string
	// TopN bounds the recommendations computed per seeker.
	TopN    int
	Metrics *metrics.Recorder
}

// Service is the job catalogue.
type Service struct {
	st       store.Store
	recs     cache.RecommendationCache
	pub      cache.Publisher
	validate *validator.Validate
	clean    *sanitizer
	opts     Options
	now      func() time.Time
}

// NewService returns a Service over st. recs and pub may be cache.Noop.
func NewService(st store.Store, recs cache.RecommendationCache, pub cache.Publisher, opts Options) *Service {
	if opts.TopN <= 0 {
		opts.TopN = 10
	}
	return &Service{
		st:       st,
		recs:     recs,
		pub:      pub,
		validate: newValidator(),
		clean:    newSanitizer(),
		opts:     opts,
		now:      time.Now,
	}
}

// ─── Catalogue ────────────────────────────────────────────────────────────────

// Search filters the catalogue with criteria (empty selectors mean "all"),
// then applies the distance limit and sort order of opts.
func (s *Service) Search(ctx context.Context, criteria model.SearchCriteria, opts SearchOptions) ([]model.Job, error) {
	all, err := s.st.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	found := matching.FilterJobs(all, criteria.WithDefaults())
	if opts.MaxDistance > 0 {
		found = matching.FilterByDistance(found, opts.MaxDistance)
	}
	return matching.SortJobs(found, opts.SortBy), nil
}

// Get returns one job.
func (s *Service) Get(ctx context.Context, id string) (model.Job, error) {
	job, err := s.st.GetJob(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return model.Job{}, ErrNotFound
	}
	return job, err
}

// Post publishes draft for employerID, spending one job-post credit.
// The new job carries no precomputed match score until the next
// recommendation pass.
func (s *Service) Post(ctx context.Context, employerID string, draft JobDraft) (model.Job, error) {
	draft = s.clean.draft(draft)
	if err := s.validate.Struct(draft); err != nil {
		return model.Job{}, toValidationError(err)
	}
	if field, term, found := BlockedTerm(draft, s.opts.BlockedTerms); found {
		log.Info().Str("employerId", employerID).Str("field", field).Str("term", term).Msg("job post rejected")
		return model.Job{}, &ValidationError{Fields: map[string]string{field: "contains a blocked term"}}
	}

	job := model.Job{
		ID:           uuid.NewString(),
		EmployerID:   employerID,
		Title:        draft.Title,
		Company:      draft.Company,
		Location:     draft.Location,
		Distance:     draft.Distance,
		Remote:       draft.Remote,
		Category:     draft.Category,
		Type:         draft.Type,
		Salary:       draft.Salary,
		Description:  draft.Description,
		Requirements: draft.Requirements,
		Skills:       draft.Skills,
		PostedDate:   s.now().UTC().Format("2006-01-02"),
	}
	sub, err := s.st.PostJob(ctx, job, spendCredit)
	if errors.Is(err, billing.ErrNoCredits) {
		return model.Job{}, err
	}
	if err != nil {
		return model.Job{}, fmt.Errorf("post: %w", err)
	}

	if err := s.pub.Publish(ctx, cache.EventJobPosted, map[string]any{
		"type":       cache.EventJobPosted,
		"jobId":      job.ID,
		"employerId": employerID,
		"category":   job.Category,
		"remaining":  sub.Remaining(),
	}); err != nil {
		log.Warn().Err(err).Str("channel", cache.EventJobPosted).Msg("publish failed")
	}
	return job, nil
}

// spendCredit charges one job-post credit; posting needs a subscription.
func spendCredit(cur model.Subscription, exists bool) (model.Subscription, error) {
	if !exists {
		return cur, billing.ErrNoCredits
	}
	return billing.ConsumeCredit(cur)
}

// ─── Should I apply? ──────────────────────────────────────────────────────────

// ShouldApply scores a stored job against candidate.
func (s *Service) ShouldApply(ctx context.Context, jobID string, candidate model.CandidateContext) (model.Recommendation, error) {
	job, err := s.Get(ctx, jobID)
	if err != nil {
		return model.Recommendation{}, err
	}
	s.opts.Metrics.Scored(metrics.SourceRequest, 1)
	return matching.ScoreCompatibility(job, candidate), nil
}

// ShouldApplyForUser scores a stored job against userID's saved profile.
func (s *Service) ShouldApplyForUser(ctx context.Context, jobID, userID string) (model.Recommendation, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return model.Recommendation{}, err
	}
	return s.ShouldApply(ctx, jobID, profile.Candidate())
}

// Recommendations returns userID's ranked recommendations, from the cache
// when the scheduled pass already computed them.
func (s *Service) Recommendations(ctx context.Context, userID string) ([]model.ScoredJob, error) {
	cached, ok, err := s.recs.GetRecommendations(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("userId", userID).Msg("recommendation cache read failed")
	}
	s.opts.Metrics.CacheLookup(ok)
	if ok {
		return cached, nil
	}

	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.refreshRecommendations(ctx, profile)
}

// refreshRecommendations ranks every job for profile and caches the result.
func (s *Service) refreshRecommendations(ctx context.Context, profile model.SeekerProfile) ([]model.ScoredJob, error) {
	all, err := s.st.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("recommendations: %w", err)
	}
	ranked, err := matching.RankRecommendations(ctx, all, profile.Candidate(), s.opts.TopN)
	if err != nil {
		return nil, err
	}
	s.opts.Metrics.Scored(metrics.SourceRequest, len(all))

	if err := s.recs.SetRecommendations(ctx, profile.UserID, ranked); err != nil {
		log.Warn().Err(err).Str("userId", profile.UserID).Msg("recommendation cache write failed")
	}
	return ranked, nil
}

// ─── Profiles ─────────────────────────────────────────────────────────────────

// ProfileInput is the editable part of a seeker profile.
type ProfileInput struct {
	Name        string            `json:"name" validate:"required,max=120"`
	Email       string            `json:"email" validate:"omitempty,email"`
	Title       string            `json:"title" validate:"max=120"`
	Location    string            `json:"location" validate:"max=120"`
	Skills      []string          `json:"skills" validate:"max=50,dive,required,max=60"`
	Experience  string            `json:"experience" validate:"max=40"`
	Education   string            `json:"education" validate:"max=120"`
	Preferences model.Preferences `json:"preferences"`
}

// GetProfile returns userID's seeker profile.
func (s *Service) GetProfile(ctx context.Context, userID string) (model.SeekerProfile, error) {
	p, err := s.st.GetProfile(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return model.SeekerProfile{}, ErrProfileNotFound
	}
	return p, err
}

// SaveProfile creates or replaces userID's profile and recomputes the cached
// recommendations for it.
func (s *Service) SaveProfile(ctx context.Context, userID string, in ProfileInput) (model.SeekerProfile, error) {
	in.Name = s.clean.text(in.Name)
	in.Title = s.clean.text(in.Title)
	in.Location = s.clean.text(in.Location)
	in.Education = s.clean.text(in.Education)
	in.Skills = s.clean.list(in.Skills)
	if err := s.validate.Struct(in); err != nil {
		return model.SeekerProfile{}, toValidationError(err)
	}

	p := model.SeekerProfile{
		UserID:      userID,
		Name:        in.Name,
		Email:       in.Email,
		Title:       in.Title,
		Location:    in.Location,
		Skills:      in.Skills,
		Experience:  in.Experience,
		Education:   in.Education,
		Preferences: in.Preferences,
	}
	if err := s.st.SaveProfile(ctx, p); err != nil {
		return model.SeekerProfile{}, fmt.Errorf("saveProfile: %w", err)
	}
	if _, err := s.refreshRecommendations(ctx, p); err != nil {
		log.Warn().Err(err).Str("userId", userID).Msg("recommendation refresh failed")
	}
	return p, nil
}
