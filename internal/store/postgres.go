package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobmate/board-service/internal/model"
)

const postgresSchema = `
DO $$ BEGIN
  CREATE TYPE application_status AS ENUM ('pending', 'reviewing', 'interviewed', 'hired', 'rejected');
EXCEPTION WHEN duplicate_object THEN NULL;
END $$;

CREATE TABLE IF NOT EXISTS jobs (
  id             TEXT PRIMARY KEY,
  employer_id    TEXT NOT NULL DEFAULT '',
  title          TEXT NOT NULL,
  company        TEXT NOT NULL,
  location       TEXT NOT NULL DEFAULT '',
  distance       TEXT NOT NULL DEFAULT '',
  remote         BOOLEAN NOT NULL DEFAULT false,
  category       TEXT NOT NULL,
  type           TEXT NOT NULL,
  salary         TEXT NOT NULL DEFAULT '',
  description    TEXT NOT NULL DEFAULT '',
  requirements   TEXT[] NOT NULL DEFAULT '{}',
  skills         TEXT[] NOT NULL DEFAULT '{}',
  posted_date    DATE NOT NULL,
  ai_match_score INT,
  created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS seeker_profiles (
  user_id     TEXT PRIMARY KEY,
  name        TEXT NOT NULL DEFAULT '',
  email       TEXT NOT NULL DEFAULT '',
  title       TEXT NOT NULL DEFAULT '',
  location    TEXT NOT NULL DEFAULT '',
  skills      TEXT[] NOT NULL DEFAULT '{}',
  experience  TEXT NOT NULL DEFAULT '',
  education   TEXT NOT NULL DEFAULT '',
  preferences JSONB NOT NULL DEFAULT '{}'::jsonb,
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS applications (
  id              TEXT PRIMARY KEY,
  job_id          TEXT NOT NULL REFERENCES jobs(id),
  employer_id     TEXT NOT NULL DEFAULT '',
  applicant_id    TEXT NOT NULL,
  applicant_name  TEXT NOT NULL DEFAULT '',
  applicant_email TEXT NOT NULL DEFAULT '',
  current_status  application_status NOT NULL DEFAULT 'pending',
  applied_date    DATE NOT NULL,
  user_notes      TEXT,
  cover_letter    TEXT,
  ai_match_score  INT,
  skills          TEXT[] NOT NULL DEFAULT '{}',
  experience      TEXT NOT NULL DEFAULT '',
  location        TEXT NOT NULL DEFAULT '',
  history_log     JSONB NOT NULL DEFAULT '[]'::jsonb,
  created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  UNIQUE (job_id, applicant_id)
);

CREATE TABLE IF NOT EXISTS subscriptions (
  user_id      TEXT PRIMARY KEY,
  plan_id      TEXT NOT NULL,
  status       TEXT NOT NULL,
  start_date   DATE NOT NULL,
  credits      INT NOT NULL DEFAULT 0,
  used_credits INT NOT NULL DEFAULT 0,
  auto_renew   BOOLEAN NOT NULL DEFAULT false
);`

const (
	pgJobColumns = `id, employer_id, title, company, location, distance, remote, category, type,
		salary, description, requirements, skills, posted_date::text, ai_match_score`
	pgApplicationColumns = `id, job_id, employer_id, applicant_id, applicant_name, applicant_email,
		current_status::text, applied_date::text, user_notes, cover_letter, ai_match_score,
		skills, experience, location, history_log, created_at, updated_at`
)

// Postgres is the pgx-backed Store.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres returns a Store over pool.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Migrate creates the tables the service needs if they are missing.
func (p *Postgres) Migrate(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// ─── Jobs ─────────────────────────────────────────────────────────────────────

func (p *Postgres) ListJobs(ctx context.Context) ([]model.Job, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT `+pgJobColumns+` FROM jobs ORDER BY posted_date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listJobs query: %w", err)
	}
	defer rows.Close()

	jobs := make([]model.Job, 0)
	for rows.Next() {
		job, err := scanPgJob(rows)
		if err != nil {
			return nil, fmt.Errorf("listJobs scan: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (p *Postgres) GetJob(ctx context.Context, id string) (model.Job, error) {
	job, err := scanPgJob(p.pool.QueryRow(ctx, `SELECT `+pgJobColumns+` FROM jobs WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Job{}, ErrNotFound
	}
	if err != nil {
		return model.Job{}, fmt.Errorf("getJob: %w", err)
	}
	return job, nil
}

func (p *Postgres) PostJob(ctx context.Context, job model.Job, charge ChargeFunc) (model.Subscription, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return model.Subscription{}, fmt.Errorf("postJob begin: %w", err)
	}
	defer tx.Rollback(ctx)

	var sub model.Subscription
	if charge != nil {
		if sub, err = chargePgSubscription(ctx, tx, job.EmployerID, charge); err != nil {
			return model.Subscription{}, err
		}
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO jobs (id, employer_id, title, company, location, distance, remote, category, type,
		                   salary, description, requirements, skills, posted_date, ai_match_score)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14::date, $15)`,
		job.ID, job.EmployerID, job.Title, job.Company, job.Location, job.Distance, job.Remote,
		job.Category, job.Type, job.Salary, job.Description, nonNil(job.Requirements), nonNil(job.Skills),
		job.PostedDate, job.AIMatchScore,
	)
	if isPgUniqueViolation(err) {
		return model.Subscription{}, ErrDuplicate
	}
	if err != nil {
		return model.Subscription{}, fmt.Errorf("postJob insert: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Subscription{}, fmt.Errorf("postJob commit: %w", err)
	}
	return sub, nil
}

func (p *Postgres) SetJobMatchScore(ctx context.Context, jobID string, score int) error {
	tag, err := p.pool.Exec(ctx, `UPDATE jobs SET ai_match_score = $1 WHERE id = $2`, score, jobID)
	if err != nil {
		return fmt.Errorf("setJobMatchScore: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ─── Profiles ─────────────────────────────────────────────────────────────────

const pgProfileColumns = `user_id, name, email, title, location, skills, experience, education, preferences`

func (p *Postgres) GetProfile(ctx context.Context, userID string) (model.SeekerProfile, error) {
	prof, err := scanPgProfile(p.pool.QueryRow(ctx,
		`SELECT `+pgProfileColumns+` FROM seeker_profiles WHERE user_id = $1`, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.SeekerProfile{}, ErrNotFound
	}
	if err != nil {
		return model.SeekerProfile{}, fmt.Errorf("getProfile: %w", err)
	}
	return prof, nil
}

func (p *Postgres) ListProfiles(ctx context.Context) ([]model.SeekerProfile, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+pgProfileColumns+` FROM seeker_profiles ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("listProfiles query: %w", err)
	}
	defer rows.Close()

	profiles := make([]model.SeekerProfile, 0)
	for rows.Next() {
		prof, err := scanPgProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("listProfiles scan: %w", err)
		}
		profiles = append(profiles, prof)
	}
	return profiles, rows.Err()
}

func (p *Postgres) SaveProfile(ctx context.Context, prof model.SeekerProfile) error {
	prefs, err := json.Marshal(prof.Preferences)
	if err != nil {
		return fmt.Errorf("saveProfile marshal: %w", err)
	}
	_, err = p.pool.Exec(ctx,
		`INSERT INTO seeker_profiles (user_id, name, email, title, location, skills, experience, education, preferences)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb)
		 ON CONFLICT (user_id) DO UPDATE SET
		   name = EXCLUDED.name, email = EXCLUDED.email, title = EXCLUDED.title,
		   location = EXCLUDED.location, skills = EXCLUDED.skills, experience = EXCLUDED.experience,
		   education = EXCLUDED.education, preferences = EXCLUDED.preferences, updated_at = NOW()`,
		prof.UserID, prof.Name, prof.Email, prof.Title, prof.Location, nonNil(prof.Skills),
		prof.Experience, prof.Education, string(prefs),
	)
	if err != nil {
		return fmt.Errorf("saveProfile: %w", err)
	}
	return nil
}

// ─── Applications ─────────────────────────────────────────────────────────────

func (p *Postgres) InsertApplication(ctx context.Context, app model.Application) (model.Application, error) {
	out, err := scanPgApplication(p.pool.QueryRow(ctx,
		`INSERT INTO applications (id, job_id, employer_id, applicant_id, applicant_name, applicant_email,
		                           current_status, applied_date, cover_letter, ai_match_score,
		                           skills, experience, location)
		 VALUES ($1, $2, $3, $4, $5, $6, $7::application_status, $8::date, $9, $10, $11, $12, $13)
		 RETURNING `+pgApplicationColumns,
		app.ID, app.JobID, app.EmployerID, app.ApplicantID, app.ApplicantName, app.ApplicantEmail,
		app.Status, app.AppliedDate, app.CoverLetter, app.AIMatchScore,
		nonNil(app.Skills), app.Experience, app.Location,
	))
	if isPgUniqueViolation(err) {
		return model.Application{}, ErrDuplicate
	}
	if err != nil {
		return model.Application{}, fmt.Errorf("insertApplication: %w", err)
	}
	return out, nil
}

func (p *Postgres) GetApplication(ctx context.Context, id string) (model.Application, error) {
	app, err := scanPgApplication(p.pool.QueryRow(ctx,
		`SELECT `+pgApplicationColumns+` FROM applications WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Application{}, ErrNotFound
	}
	if err != nil {
		return model.Application{}, fmt.Errorf("getApplication: %w", err)
	}
	return app, nil
}

func (p *Postgres) ListApplicationsByApplicant(ctx context.Context, applicantID string) ([]model.Application, error) {
	return p.listApplications(ctx, `applicant_id = $1`, applicantID)
}

func (p *Postgres) ListApplicationsByEmployer(ctx context.Context, employerID string) ([]model.Application, error) {
	return p.listApplications(ctx, `employer_id = $1`, employerID)
}

func (p *Postgres) listApplications(ctx context.Context, where, arg string) ([]model.Application, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT `+pgApplicationColumns+` FROM applications WHERE `+where+` ORDER BY updated_at DESC`, arg)
	if err != nil {
		return nil, fmt.Errorf("listApplications query: %w", err)
	}
	defer rows.Close()

	apps := make([]model.Application, 0)
	for rows.Next() {
		app, err := scanPgApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("listApplications scan: %w", err)
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (p *Postgres) UpdateApplicationStatus(ctx context.Context, id, from, to string, entry json.RawMessage) (model.Application, error) {
	app, err := scanPgApplication(p.pool.QueryRow(ctx,
		`UPDATE applications
		 SET current_status = $1::application_status,
		     history_log    = history_log || $2::jsonb,
		     updated_at     = NOW()
		 WHERE id = $3 AND current_status = $4::application_status
		 RETURNING `+pgApplicationColumns,
		to, fmt.Sprintf("[%s]", entry), id, from,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Application{}, ErrConflict
	}
	if err != nil {
		return model.Application{}, fmt.Errorf("updateApplicationStatus: %w", err)
	}
	return app, nil
}

func (p *Postgres) UpdateApplicationNotes(ctx context.Context, id, note string) (model.Application, error) {
	app, err := scanPgApplication(p.pool.QueryRow(ctx,
		`UPDATE applications SET user_notes = $1, updated_at = NOW()
		 WHERE id = $2
		 RETURNING `+pgApplicationColumns,
		note, id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Application{}, ErrNotFound
	}
	if err != nil {
		return model.Application{}, fmt.Errorf("updateApplicationNotes: %w", err)
	}
	return app, nil
}

// ─── Subscriptions ────────────────────────────────────────────────────────────

const pgSubscriptionColumns = `user_id, plan_id, status, start_date::text, credits, used_credits, auto_renew`

func (p *Postgres) GetSubscription(ctx context.Context, userID string) (model.Subscription, error) {
	s, err := scanPgSubscription(p.pool.QueryRow(ctx,
		`SELECT `+pgSubscriptionColumns+` FROM subscriptions WHERE user_id = $1`, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Subscription{}, ErrNotFound
	}
	if err != nil {
		return model.Subscription{}, fmt.Errorf("getSubscription: %w", err)
	}
	return s, nil
}

func (p *Postgres) SaveSubscription(ctx context.Context, sub model.Subscription) error {
	return upsertPgSubscription(ctx, p.pool, sub)
}

func (p *Postgres) UpdateSubscription(ctx context.Context, userID string, fn ChargeFunc) (model.Subscription, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return model.Subscription{}, fmt.Errorf("updateSubscription begin: %w", err)
	}
	defer tx.Rollback(ctx)

	sub, err := chargePgSubscription(ctx, tx, userID, fn)
	if err != nil {
		return model.Subscription{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.Subscription{}, fmt.Errorf("updateSubscription commit: %w", err)
	}
	return sub, nil
}

// chargePgSubscription runs fn against userID's subscription row. The
// advisory lock serialises callers even before the row exists; FOR UPDATE
// keeps plain writers out until tx ends.
func chargePgSubscription(ctx context.Context, tx pgx.Tx, userID string, fn ChargeFunc) (model.Subscription, error) {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, userID); err != nil {
		return model.Subscription{}, fmt.Errorf("lock subscription: %w", err)
	}
	cur, err := scanPgSubscription(tx.QueryRow(ctx,
		`SELECT `+pgSubscriptionColumns+` FROM subscriptions WHERE user_id = $1 FOR UPDATE`, userID))
	exists := true
	if errors.Is(err, pgx.ErrNoRows) {
		cur, exists = model.Subscription{UserID: userID}, false
	} else if err != nil {
		return model.Subscription{}, fmt.Errorf("lock subscription: %w", err)
	}

	next, err := fn(cur, exists)
	if err != nil {
		return model.Subscription{}, err
	}
	next.UserID = userID
	if err := upsertPgSubscription(ctx, tx, next); err != nil {
		return model.Subscription{}, err
	}
	return next, nil
}

func scanPgSubscription(row pgx.Row) (model.Subscription, error) {
	var s model.Subscription
	err := row.Scan(&s.UserID, &s.PlanID, &s.Status, &s.StartDate, &s.Credits, &s.UsedCredits, &s.AutoRenew)
	return s, err
}

// ─── Admin ────────────────────────────────────────────────────────────────────

func (p *Postgres) PlatformCounts(ctx context.Context) (model.PlatformStats, error) {
	var st model.PlatformStats
	err := p.pool.QueryRow(ctx, platformCountsSQL).Scan(
		&st.JobSeekers, &st.Employers, &st.TotalJobs, &st.ActiveJobs, &st.TotalApplications, &st.OpenApplications)
	if err != nil {
		return model.PlatformStats{}, fmt.Errorf("platformCounts: %w", err)
	}
	st.TotalUsers = st.JobSeekers + st.Employers
	return st, nil
}

// pgExecer is satisfied by both the pool and a transaction.
type pgExecer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func upsertPgSubscription(ctx context.Context, db pgExecer, s model.Subscription) error {
	_, err := db.Exec(ctx,
		`INSERT INTO subscriptions (user_id, plan_id, status, start_date, credits, used_credits, auto_renew)
		 VALUES ($1, $2, $3, $4::date, $5, $6, $7)
		 ON CONFLICT (user_id) DO UPDATE SET
		   plan_id = EXCLUDED.plan_id, status = EXCLUDED.status, start_date = EXCLUDED.start_date,
		   credits = EXCLUDED.credits, used_credits = EXCLUDED.used_credits, auto_renew = EXCLUDED.auto_renew`,
		s.UserID, s.PlanID, s.Status, s.StartDate, s.Credits, s.UsedCredits, s.AutoRenew,
	)
	if err != nil {
		return fmt.Errorf("saveSubscription: %w", err)
	}
	return nil
}

// ─── Scanning ─────────────────────────────────────────────────────────────────

func scanPgJob(row pgx.Row) (model.Job, error) {
	var j model.Job
	err := row.Scan(
		&j.ID, &j.EmployerID, &j.Title, &j.Company, &j.Location, &j.Distance, &j.Remote,
		&j.Category, &j.Type, &j.Salary, &j.Description, &j.Requirements, &j.Skills,
		&j.PostedDate, &j.AIMatchScore,
	)
	j.Requirements, j.Skills = nonNil(j.Requirements), nonNil(j.Skills)
	return j, err
}

func scanPgProfile(row pgx.Row) (model.SeekerProfile, error) {
	var (
		p     model.SeekerProfile
		prefs []byte
	)
	if err := row.Scan(&p.UserID, &p.Name, &p.Email, &p.Title, &p.Location, &p.Skills,
		&p.Experience, &p.Education, &prefs); err != nil {
		return p, err
	}
	if err := json.Unmarshal(prefs, &p.Preferences); err != nil {
		return p, fmt.Errorf("preferences: %w", err)
	}
	return p, nil
}

func scanPgApplication(row pgx.Row) (model.Application, error) {
	var a model.Application
	var history []byte
	err := row.Scan(
		&a.ID, &a.JobID, &a.EmployerID, &a.ApplicantID, &a.ApplicantName, &a.ApplicantEmail,
		&a.Status, &a.AppliedDate, &a.Notes, &a.CoverLetter, &a.AIMatchScore,
		&a.Skills, &a.Experience, &a.Location, &history, &a.CreatedAt, &a.UpdatedAt,
	)
	a.HistoryLog = json.RawMessage(history)
	return a, err
}

func isPgUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
