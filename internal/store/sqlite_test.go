package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmate/board-service/internal/model"
	"jobmate/board-service/internal/store"
)

func openTemp(t *testing.T) *store.SQLite {
	t.Helper()
	st, err := store.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "nested", "board.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

// ── Jobs ───────────────────────────────────────────────────────────────────

func TestSQLite_SeedAndListJobs(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	n, err := store.SeedIfEmpty(ctx, st, store.DemoJobs)
	require.NoError(t, err)
	assert.Equal(t, len(store.DemoJobs), n)

	// A second seed is a no-op.
	n, err = store.SeedIfEmpty(ctx, st, store.DemoJobs)
	require.NoError(t, err)
	assert.Zero(t, n)

	jobs, err := st.ListJobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, store.DemoJobs, jobs)
}

func TestSQLite_GetJob(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)
	_, err := store.SeedIfEmpty(ctx, st, store.DemoJobs)
	require.NoError(t, err)

	job, err := st.GetJob(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, "UX Designer", job.Title)
	assert.True(t, job.Remote)
	require.NotNil(t, job.AIMatchScore)
	assert.Equal(t, 72, *job.AIMatchScore)

	_, err = st.GetJob(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func spendOne(cur model.Subscription, exists bool) (model.Subscription, error) {
	if !exists || cur.Remaining() <= 0 {
		return cur, errNoCredit
	}
	cur.UsedCredits++
	return cur, nil
}

var errNoCredit = errors.New("no credit")

func TestSQLite_PostJobWithCharge(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	sub := model.Subscription{UserID: "emp", PlanID: "employer-starter", Status: "active",
		StartDate: "2024-01-01", Credits: 2}
	require.NoError(t, st.SaveSubscription(ctx, sub))

	job := model.Job{
		ID: "j-1", EmployerID: "emp", Title: "Line Cook", Company: "Bistro",
		Category: "Hospitality", Type: model.TypePartTime, PostedDate: "2024-02-01",
	}
	charged, err := st.PostJob(ctx, job, spendOne)
	require.NoError(t, err)
	assert.Equal(t, 1, charged.UsedCredits)

	got, err := st.GetJob(ctx, "j-1")
	require.NoError(t, err)
	assert.Nil(t, got.AIMatchScore)
	assert.Equal(t, []string{}, got.Skills)
	assert.Equal(t, []string{}, got.Requirements)

	saved, err := st.GetSubscription(ctx, "emp")
	require.NoError(t, err)
	assert.Equal(t, charged, saved)

	// Same id again rolls back the charge.
	_, err = st.PostJob(ctx, job, spendOne)
	assert.ErrorIs(t, err, store.ErrDuplicate)
	saved, err = st.GetSubscription(ctx, "emp")
	require.NoError(t, err)
	assert.Equal(t, 1, saved.UsedCredits)

	// A refused charge keeps the job out.
	job.ID, job.EmployerID = "j-2", "nobody"
	_, err = st.PostJob(ctx, job, spendOne)
	assert.ErrorIs(t, err, errNoCredit)
	_, err = st.GetJob(ctx, "j-2")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSQLite_UpdateSubscription(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	addFive := func(cur model.Subscription, exists bool) (model.Subscription, error) {
		if !exists {
			cur.PlanID, cur.Status, cur.StartDate = "pay-per-post", "active", "2024-03-01"
		}
		cur.Credits += 5
		return cur, nil
	}

	created, err := st.UpdateSubscription(ctx, "emp", addFive)
	require.NoError(t, err)
	assert.Equal(t, 5, created.Credits)

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := st.UpdateSubscription(ctx, "emp", addFive)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	saved, err := st.GetSubscription(ctx, "emp")
	require.NoError(t, err)
	assert.Equal(t, 20, saved.Credits)
	assert.Equal(t, "pay-per-post", saved.PlanID)
}

func TestSQLite_PlatformCounts(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)
	_, err := store.SeedIfEmpty(ctx, st, store.DemoJobs)
	require.NoError(t, err)

	require.NoError(t, st.SaveProfile(ctx, model.SeekerProfile{UserID: "u1", Name: "Sam"}))
	require.NoError(t, st.SaveProfile(ctx, model.SeekerProfile{UserID: "u2", Name: "Ana"}))
	require.NoError(t, st.SaveSubscription(ctx, model.Subscription{UserID: "emp", PlanID: "employer-starter",
		Status: "active", StartDate: "2024-01-01", Credits: 10}))
	require.NoError(t, st.SaveSubscription(ctx, model.Subscription{UserID: "u1", PlanID: "seeker-premium",
		Status: "active", StartDate: "2024-01-01"}))
	_, err = st.PostJob(ctx, model.Job{ID: "e-1", EmployerID: "emp", Title: "Cook", Company: "Bistro",
		Category: "Hospitality", Type: model.TypeFullTime, PostedDate: "2024-02-01"}, nil)
	require.NoError(t, err)

	for _, a := range []model.Application{
		{ID: "a1", JobID: "e-1", EmployerID: "emp", ApplicantID: "u1", Status: "hired", AppliedDate: "2024-02-02"},
		{ID: "a2", JobID: "1", ApplicantID: "u1", Status: "pending", AppliedDate: "2024-02-02"},
		{ID: "a3", JobID: "2", ApplicantID: "u2", Status: "rejected", AppliedDate: "2024-02-02"},
	} {
		_, err := st.InsertApplication(ctx, a)
		require.NoError(t, err)
	}

	stats, err := st.PlatformCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.PlatformStats{
		TotalUsers:        3,
		JobSeekers:        2,
		Employers:         1,
		TotalJobs:         len(store.DemoJobs) + 1,
		ActiveJobs:        len(store.DemoJobs),
		TotalApplications: 3,
		OpenApplications:  1,
	}, stats)
}

func TestSQLite_SetJobMatchScore(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)
	_, err := store.SeedIfEmpty(ctx, st, store.DemoJobs)
	require.NoError(t, err)

	require.NoError(t, st.SetJobMatchScore(ctx, "2", 91))
	job, err := st.GetJob(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, 91, *job.AIMatchScore)

	assert.ErrorIs(t, st.SetJobMatchScore(ctx, "nope", 1), store.ErrNotFound)
}

// ── Profiles ───────────────────────────────────────────────────────────────

func TestSQLite_Profiles(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	_, err := st.GetProfile(ctx, "u1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	p := model.SeekerProfile{
		UserID: "u1", Name: "Sam Lee", Email: "sam@example.com", Location: "Downtown",
		Skills: []string{"React", "CSS"}, Experience: "3-5 years",
		Preferences: model.Preferences{JobTypes: []string{"full-time"}, Remote: true, Categories: []string{"Technology"}},
	}
	require.NoError(t, st.SaveProfile(ctx, p))

	p.Title = "Frontend Developer"
	require.NoError(t, st.SaveProfile(ctx, p))

	got, err := st.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	all, err := st.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

// ── Applications ───────────────────────────────────────────────────────────

func TestSQLite_ApplicationLifecycle(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)
	_, err := store.SeedIfEmpty(ctx, st, store.DemoJobs)
	require.NoError(t, err)

	cover := "Hello"
	app := model.Application{
		ID: "a1", JobID: "1", EmployerID: "emp", ApplicantID: "u1",
		ApplicantName: "Sam Lee", Status: "pending", AppliedDate: "2024-02-02",
		CoverLetter: &cover, Skills: []string{"React"},
	}
	created, err := st.InsertApplication(ctx, app)
	require.NoError(t, err)
	assert.Equal(t, "pending", created.Status)
	assert.Nil(t, created.Notes)
	assert.Equal(t, "Hello", *created.CoverLetter)
	assert.JSONEq(t, `[]`, string(created.HistoryLog))
	assert.False(t, created.CreatedAt.IsZero())

	app.ID = "a2"
	_, err = st.InsertApplication(ctx, app)
	assert.ErrorIs(t, err, store.ErrDuplicate)

	entry := json.RawMessage(`{"from":"pending","to":"reviewing","at":"2024-02-03T00:00:00Z"}`)
	moved, err := st.UpdateApplicationStatus(ctx, "a1", "pending", "reviewing", entry)
	require.NoError(t, err)
	assert.Equal(t, "reviewing", moved.Status)
	assert.JSONEq(t, `[{"from":"pending","to":"reviewing","at":"2024-02-03T00:00:00Z"}]`, string(moved.HistoryLog))

	// Stale from-status.
	_, err = st.UpdateApplicationStatus(ctx, "a1", "pending", "rejected", entry)
	assert.ErrorIs(t, err, store.ErrConflict)

	noted, err := st.UpdateApplicationNotes(ctx, "a1", "strong portfolio")
	require.NoError(t, err)
	assert.Equal(t, "strong portfolio", *noted.Notes)

	_, err = st.UpdateApplicationNotes(ctx, "zzz", "x")
	assert.ErrorIs(t, err, store.ErrNotFound)

	bySeeker, err := st.ListApplicationsByApplicant(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, bySeeker, 1)

	byEmployer, err := st.ListApplicationsByEmployer(ctx, "emp")
	require.NoError(t, err)
	assert.Len(t, byEmployer, 1)

	none, err := st.ListApplicationsByEmployer(ctx, "other")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSQLite_ApplicationRequiresJob(t *testing.T) {
	st := openTemp(t)
	_, err := st.InsertApplication(context.Background(), model.Application{
		ID: "a1", JobID: "ghost", ApplicantID: "u1", Status: "pending", AppliedDate: "2024-02-02",
	})
	assert.Error(t, err)
}
