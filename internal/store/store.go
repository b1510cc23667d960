// Package store persists jobs, seeker profiles, applications and
// subscriptions. Two backends implement Store: PostgreSQL through a pgx pool
// and an embedded SQLite file for local runs.
package store

//go:generate mockgen -source=store.go -destination=mocks/store.mock.go -package=storemocks -typed Store

import (
	"context"
	"encoding/json"
	"errors"

	"jobmate/board-service/internal/model"
)

var (
	// ErrNotFound is returned when a row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique constraint would be violated.
	ErrDuplicate = errors.New("already exists")
	// ErrConflict is returned when a guarded update matched no row because
	// the stored state changed underneath the caller.
	ErrConflict = errors.New("state changed concurrently")
)

// Store is the persistence boundary of the service.
type Store interface {
	ListJobs(ctx context.Context) ([]model.Job, error)
	GetJob(ctx context.Context, id string) (model.Job, error)
	// PostJob inserts job. When charge is non-nil it is applied to the
	// employer's subscription, locked inside the same transaction, so a spent
	// credit and its job land together and concurrent posts cannot spend the
	// same credit. It returns the charged subscription.
	PostJob(ctx context.Context, job model.Job, charge ChargeFunc) (model.Subscription, error)
	SetJobMatchScore(ctx context.Context, jobID string, score int) error

	GetProfile(ctx context.Context, userID string) (model.SeekerProfile, error)
	ListProfiles(ctx context.Context) ([]model.SeekerProfile, error)
	SaveProfile(ctx context.Context, p model.SeekerProfile) error

	InsertApplication(ctx context.Context, app model.Application) (model.Application, error)
	GetApplication(ctx context.Context, id string) (model.Application, error)
	ListApplicationsByApplicant(ctx context.Context, applicantID string) ([]model.Application, error)
	ListApplicationsByEmployer(ctx context.Context, employerID string) ([]model.Application, error)
	// UpdateApplicationStatus moves id from → to and appends entry to the
	// history log. It returns ErrConflict when the stored status is not from.
	UpdateApplicationStatus(ctx context.Context, id, from, to string, entry json.RawMessage) (model.Application, error)
	UpdateApplicationNotes(ctx context.Context, id, note string) (model.Application, error)

	GetSubscription(ctx context.Context, userID string) (model.Subscription, error)
	// SaveSubscription replaces userID's subscription unconditionally.
	SaveSubscription(ctx context.Context, sub model.Subscription) error
	// UpdateSubscription applies fn to userID's locked subscription and saves
	// the result in one transaction.
	UpdateSubscription(ctx context.Context, userID string, fn ChargeFunc) (model.Subscription, error)

	// PlatformCounts counts the rows behind the admin dashboard.
	PlatformCounts(ctx context.Context) (model.PlatformStats, error)
}

// ChargeFunc derives the next state of a subscription from the current one.
// exists is false when the user has none yet; cur then carries only UserID.
// An error aborts the surrounding transaction and is returned unchanged.
type ChargeFunc func(cur model.Subscription, exists bool) (model.Subscription, error)

var (
	_ Store = (*Postgres)(nil)
	_ Store = (*SQLite)(nil)
)

// nonNil keeps array columns from being written as NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// platformCountsSQL is valid in both dialects. Employers are the distinct
// posters plus the holders of an employer or pay-per-post subscription; a job
// stays active until it has a hire.
const platformCountsSQL = `
SELECT
  (SELECT COUNT(*) FROM seeker_profiles),
  (SELECT COUNT(*) FROM (
     SELECT employer_id AS user_id FROM jobs WHERE employer_id <> ''
     UNION
     SELECT user_id FROM subscriptions WHERE plan_id LIKE 'employer-%' OR plan_id = 'pay-per-post'
  ) employers),
  (SELECT COUNT(*) FROM jobs),
  (SELECT COUNT(*) FROM jobs j WHERE NOT EXISTS (
     SELECT 1 FROM applications a WHERE a.job_id = j.id AND a.current_status = 'hired')),
  (SELECT COUNT(*) FROM applications),
  (SELECT COUNT(*) FROM applications WHERE current_status NOT IN ('hired', 'rejected'))`
