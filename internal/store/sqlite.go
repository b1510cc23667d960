package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"jobmate/board-service/internal/model"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS jobs (
  id             TEXT PRIMARY KEY,
  employer_id    TEXT NOT NULL DEFAULT '',
  title          TEXT NOT NULL,
  company        TEXT NOT NULL,
  location       TEXT NOT NULL DEFAULT '',
  distance       TEXT NOT NULL DEFAULT '',
  remote         INTEGER NOT NULL DEFAULT 0,
  category       TEXT NOT NULL,
  type           TEXT NOT NULL,
  salary         TEXT NOT NULL DEFAULT '',
  description    TEXT NOT NULL DEFAULT '',
  requirements   TEXT NOT NULL DEFAULT '[]',
  skills         TEXT NOT NULL DEFAULT '[]',
  posted_date    TEXT NOT NULL,
  ai_match_score INTEGER,
  seq            INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS seeker_profiles (
  user_id     TEXT PRIMARY KEY,
  name        TEXT NOT NULL DEFAULT '',
  email       TEXT NOT NULL DEFAULT '',
  title       TEXT NOT NULL DEFAULT '',
  location    TEXT NOT NULL DEFAULT '',
  skills      TEXT NOT NULL DEFAULT '[]',
  experience  TEXT NOT NULL DEFAULT '',
  education   TEXT NOT NULL DEFAULT '',
  preferences TEXT NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS applications (
  id              TEXT PRIMARY KEY,
  job_id          TEXT NOT NULL REFERENCES jobs(id),
  employer_id     TEXT NOT NULL DEFAULT '',
  applicant_id    TEXT NOT NULL,
  applicant_name  TEXT NOT NULL DEFAULT '',
  applicant_email TEXT NOT NULL DEFAULT '',
  current_status  TEXT NOT NULL DEFAULT 'pending'
                  CHECK (current_status IN ('pending', 'reviewing', 'interviewed', 'hired', 'rejected')),
  applied_date    TEXT NOT NULL,
  user_notes      TEXT,
  cover_letter    TEXT,
  ai_match_score  INTEGER,
  skills          TEXT NOT NULL DEFAULT '[]',
  experience      TEXT NOT NULL DEFAULT '',
  location        TEXT NOT NULL DEFAULT '',
  history_log     TEXT NOT NULL DEFAULT '[]',
  created_at      TEXT NOT NULL,
  updated_at      TEXT NOT NULL,
  UNIQUE (job_id, applicant_id)
);

CREATE TABLE IF NOT EXISTS subscriptions (
  user_id      TEXT PRIMARY KEY,
  plan_id      TEXT NOT NULL,
  status       TEXT NOT NULL,
  start_date   TEXT NOT NULL,
  credits      INTEGER NOT NULL DEFAULT 0,
  used_credits INTEGER NOT NULL DEFAULT 0,
  auto_renew   INTEGER NOT NULL DEFAULT 0
);`

const (
	liteJobColumns = `id, employer_id, title, company, location, distance, remote, category, type,
		salary, description, requirements, skills, posted_date, ai_match_score`
	liteApplicationColumns = `id, job_id, employer_id, applicant_id, applicant_name, applicant_email,
		current_status, applied_date, user_notes, cover_letter, ai_match_score,
		skills, experience, location, history_log, created_at, updated_at`
	liteProfileColumns = `user_id, name, email, title, location, skills, experience, education, preferences`
)

// SQLite is the embedded Store used for local runs.
type SQLite struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens (creating if needed) the database file at path and applies
// the schema.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite dir: %w", err)
	}
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	// A single writer avoids SQLITE_BUSY between pooled connections.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}
	return &SQLite{db: db, now: time.Now}, nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error { return s.db.Close() }

// ─── Jobs ─────────────────────────────────────────────────────────────────────

func (s *SQLite) ListJobs(ctx context.Context) ([]model.Job, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+liteJobColumns+` FROM jobs ORDER BY posted_date DESC, seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("listJobs query: %w", err)
	}
	defer rows.Close()

	jobs := make([]model.Job, 0)
	for rows.Next() {
		job, err := scanLiteJob(rows)
		if err != nil {
			return nil, fmt.Errorf("listJobs scan: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (s *SQLite) GetJob(ctx context.Context, id string) (model.Job, error) {
	job, err := scanLiteJob(s.db.QueryRowContext(ctx,
		`SELECT `+liteJobColumns+` FROM jobs WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Job{}, ErrNotFound
	}
	if err != nil {
		return model.Job{}, fmt.Errorf("getJob: %w", err)
	}
	return job, nil
}

func (s *SQLite) PostJob(ctx context.Context, job model.Job, charge ChargeFunc) (model.Subscription, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Subscription{}, fmt.Errorf("postJob begin: %w", err)
	}
	defer tx.Rollback()

	var sub model.Subscription
	if charge != nil {
		if sub, err = chargeLiteSubscription(ctx, tx, job.EmployerID, charge); err != nil {
			return model.Subscription{}, err
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO jobs (id, employer_id, title, company, location, distance, remote, category, type,
		                   salary, description, requirements, skills, posted_date, ai_match_score, seq)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
		         (SELECT COALESCE(MAX(seq), 0) + 1 FROM jobs))`,
		job.ID, job.EmployerID, job.Title, job.Company, job.Location, job.Distance, job.Remote,
		job.Category, job.Type, job.Salary, job.Description,
		encodeList(job.Requirements), encodeList(job.Skills), job.PostedDate, job.AIMatchScore,
	)
	if isUniqueViolation(err) {
		return model.Subscription{}, ErrDuplicate
	}
	if err != nil {
		return model.Subscription{}, fmt.Errorf("postJob insert: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return model.Subscription{}, fmt.Errorf("postJob commit: %w", err)
	}
	return sub, nil
}

func (s *SQLite) SetJobMatchScore(ctx context.Context, jobID string, score int) error {
	res, err := s.db.ExecContext(ctx, `UPDATE jobs SET ai_match_score = ? WHERE id = ?`, score, jobID)
	if err != nil {
		return fmt.Errorf("setJobMatchScore: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ─── Profiles ─────────────────────────────────────────────────────────────────

func (s *SQLite) GetProfile(ctx context.Context, userID string) (model.SeekerProfile, error) {
	p, err := scanLiteProfile(s.db.QueryRowContext(ctx,
		`SELECT `+liteProfileColumns+` FROM seeker_profiles WHERE user_id = ?`, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.SeekerProfile{}, ErrNotFound
	}
	if err != nil {
		return model.SeekerProfile{}, fmt.Errorf("getProfile: %w", err)
	}
	return p, nil
}

func (s *SQLite) ListProfiles(ctx context.Context) ([]model.SeekerProfile, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+liteProfileColumns+` FROM seeker_profiles ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("listProfiles query: %w", err)
	}
	defer rows.Close()

	profiles := make([]model.SeekerProfile, 0)
	for rows.Next() {
		p, err := scanLiteProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("listProfiles scan: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (s *SQLite) SaveProfile(ctx context.Context, p model.SeekerProfile) error {
	prefs, err := json.Marshal(p.Preferences)
	if err != nil {
		return fmt.Errorf("saveProfile marshal: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO seeker_profiles (`+liteProfileColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET
		   name = excluded.name, email = excluded.email, title = excluded.title,
		   location = excluded.location, skills = excluded.skills, experience = excluded.experience,
		   education = excluded.education, preferences = excluded.preferences`,
		p.UserID, p.Name, p.Email, p.Title, p.Location, encodeList(p.Skills),
		p.Experience, p.Education, string(prefs),
	)
	if err != nil {
		return fmt.Errorf("saveProfile: %w", err)
	}
	return nil
}

// ─── Applications ─────────────────────────────────────────────────────────────

func (s *SQLite) InsertApplication(ctx context.Context, app model.Application) (model.Application, error) {
	ts := s.now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO applications (id, job_id, employer_id, applicant_id, applicant_name, applicant_email,
		                           current_status, applied_date, cover_letter, ai_match_score,
		                           skills, experience, location, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		app.ID, app.JobID, app.EmployerID, app.ApplicantID, app.ApplicantName, app.ApplicantEmail,
		app.Status, app.AppliedDate, app.CoverLetter, app.AIMatchScore,
		encodeList(app.Skills), app.Experience, app.Location, ts, ts,
	)
	if isUniqueViolation(err) {
		return model.Application{}, ErrDuplicate
	}
	if err != nil {
		return model.Application{}, fmt.Errorf("insertApplication: %w", err)
	}
	return s.GetApplication(ctx, app.ID)
}

func (s *SQLite) GetApplication(ctx context.Context, id string) (model.Application, error) {
	app, err := scanLiteApplication(s.db.QueryRowContext(ctx,
		`SELECT `+liteApplicationColumns+` FROM applications WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Application{}, ErrNotFound
	}
	if err != nil {
		return model.Application{}, fmt.Errorf("getApplication: %w", err)
	}
	return app, nil
}

func (s *SQLite) ListApplicationsByApplicant(ctx context.Context, applicantID string) ([]model.Application, error) {
	return s.listApplications(ctx, `applicant_id = ?`, applicantID)
}

func (s *SQLite) ListApplicationsByEmployer(ctx context.Context, employerID string) ([]model.Application, error) {
	return s.listApplications(ctx, `employer_id = ?`, employerID)
}

func (s *SQLite) listApplications(ctx context.Context, where, arg string) ([]model.Application, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+liteApplicationColumns+` FROM applications WHERE `+where+` ORDER BY updated_at DESC, id`, arg)
	if err != nil {
		return nil, fmt.Errorf("listApplications query: %w", err)
	}
	defer rows.Close()

	apps := make([]model.Application, 0)
	for rows.Next() {
		app, err := scanLiteApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("listApplications scan: %w", err)
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (s *SQLite) UpdateApplicationStatus(ctx context.Context, id, from, to string, entry json.RawMessage) (model.Application, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE applications
		 SET current_status = ?,
		     history_log    = json_insert(history_log, '$[#]', json(?)),
		     updated_at     = ?
		 WHERE id = ? AND current_status = ?`,
		to, string(entry), s.now().UTC().Format(time.RFC3339Nano), id, from,
	)
	if err != nil {
		return model.Application{}, fmt.Errorf("updateApplicationStatus: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Application{}, ErrConflict
	}
	return s.GetApplication(ctx, id)
}

func (s *SQLite) UpdateApplicationNotes(ctx context.Context, id, note string) (model.Application, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE applications SET user_notes = ?, updated_at = ? WHERE id = ?`,
		note, s.now().UTC().Format(time.RFC3339Nano), id,
	)
	if err != nil {
		return model.Application{}, fmt.Errorf("updateApplicationNotes: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Application{}, ErrNotFound
	}
	return s.GetApplication(ctx, id)
}

// ─── Subscriptions ────────────────────────────────────────────────────────────

const liteSubscriptionColumns = `user_id, plan_id, status, start_date, credits, used_credits, auto_renew`

func (s *SQLite) GetSubscription(ctx context.Context, userID string) (model.Subscription, error) {
	sub, err := scanLiteSubscription(s.db.QueryRowContext(ctx,
		`SELECT `+liteSubscriptionColumns+` FROM subscriptions WHERE user_id = ?`, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Subscription{}, ErrNotFound
	}
	if err != nil {
		return model.Subscription{}, fmt.Errorf("getSubscription: %w", err)
	}
	return sub, nil
}

func (s *SQLite) SaveSubscription(ctx context.Context, sub model.Subscription) error {
	return upsertLiteSubscription(ctx, s.db, sub)
}

func (s *SQLite) UpdateSubscription(ctx context.Context, userID string, fn ChargeFunc) (model.Subscription, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Subscription{}, fmt.Errorf("updateSubscription begin: %w", err)
	}
	defer tx.Rollback()

	sub, err := chargeLiteSubscription(ctx, tx, userID, fn)
	if err != nil {
		return model.Subscription{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Subscription{}, fmt.Errorf("updateSubscription commit: %w", err)
	}
	return sub, nil
}

// chargeLiteSubscription runs fn against userID's subscription. The write is
// guarded on the credit columns read in tx, so a concurrent change surfaces as
// ErrConflict rather than being overwritten.
func chargeLiteSubscription(ctx context.Context, tx *sql.Tx, userID string, fn ChargeFunc) (model.Subscription, error) {
	cur, err := scanLiteSubscription(tx.QueryRowContext(ctx,
		`SELECT `+liteSubscriptionColumns+` FROM subscriptions WHERE user_id = ?`, userID))
	exists := true
	if errors.Is(err, sql.ErrNoRows) {
		cur, exists = model.Subscription{UserID: userID}, false
	} else if err != nil {
		return model.Subscription{}, fmt.Errorf("read subscription: %w", err)
	}

	next, err := fn(cur, exists)
	if err != nil {
		return model.Subscription{}, err
	}
	next.UserID = userID

	if !exists {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO subscriptions (`+liteSubscriptionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			next.UserID, next.PlanID, next.Status, next.StartDate, next.Credits, next.UsedCredits, next.AutoRenew)
		if isUniqueViolation(err) {
			return model.Subscription{}, ErrConflict
		}
		if err != nil {
			return model.Subscription{}, fmt.Errorf("insert subscription: %w", err)
		}
		return next, nil
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE subscriptions
		 SET plan_id = ?, status = ?, start_date = ?, credits = ?, used_credits = ?, auto_renew = ?
		 WHERE user_id = ? AND credits = ? AND used_credits = ?`,
		next.PlanID, next.Status, next.StartDate, next.Credits, next.UsedCredits, next.AutoRenew,
		userID, cur.Credits, cur.UsedCredits,
	)
	if err != nil {
		return model.Subscription{}, fmt.Errorf("update subscription: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Subscription{}, ErrConflict
	}
	return next, nil
}

func scanLiteSubscription(row liteRow) (model.Subscription, error) {
	var sub model.Subscription
	err := row.Scan(&sub.UserID, &sub.PlanID, &sub.Status, &sub.StartDate, &sub.Credits, &sub.UsedCredits, &sub.AutoRenew)
	return sub, err
}

// ─── Admin ────────────────────────────────────────────────────────────────────

func (s *SQLite) PlatformCounts(ctx context.Context) (model.PlatformStats, error) {
	var st model.PlatformStats
	err := s.db.QueryRowContext(ctx, platformCountsSQL).Scan(
		&st.JobSeekers, &st.Employers, &st.TotalJobs, &st.ActiveJobs, &st.TotalApplications, &st.OpenApplications)
	if err != nil {
		return model.PlatformStats{}, fmt.Errorf("platformCounts: %w", err)
	}
	st.TotalUsers = st.JobSeekers + st.Employers
	return st, nil
}

type liteExecer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertLiteSubscription(ctx context.Context, db liteExecer, s model.Subscription) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO subscriptions (user_id, plan_id, status, start_date, credits, used_credits, auto_renew)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET
		   plan_id = excluded.plan_id, status = excluded.status, start_date = excluded.start_date,
		   credits = excluded.credits, used_credits = excluded.used_credits, auto_renew = excluded.auto_renew`,
		s.UserID, s.PlanID, s.Status, s.StartDate, s.Credits, s.UsedCredits, s.AutoRenew,
	)
	if err != nil {
		return fmt.Errorf("saveSubscription: %w", err)
	}
	return nil
}

// ─── Scanning ─────────────────────────────────────────────────────────────────

type liteRow interface {
	Scan(dest ...any) error
}

func scanLiteJob(row liteRow) (model.Job, error) {
	var (
		j            model.Job
		requirements string
		skills       string
		score        sql.NullInt64
	)
	err := row.Scan(
		&j.ID, &j.EmployerID, &j.Title, &j.Company, &j.Location, &j.Distance, &j.Remote,
		&j.Category, &j.Type, &j.Salary, &j.Description, &requirements, &skills,
		&j.PostedDate, &score,
	)
	if err != nil {
		return j, err
	}
	if j.Requirements, err = decodeList(requirements); err != nil {
		return j, err
	}
	if j.Skills, err = decodeList(skills); err != nil {
		return j, err
	}
	j.AIMatchScore = nullInt(score)
	return j, nil
}

func scanLiteProfile(row liteRow) (model.SeekerProfile, error) {
	var (
		p      model.SeekerProfile
		skills string
		prefs  string
	)
	if err := row.Scan(&p.UserID, &p.Name, &p.Email, &p.Title, &p.Location, &skills,
		&p.Experience, &p.Education, &prefs); err != nil {
		return p, err
	}
	var err error
	if p.Skills, err = decodeList(skills); err != nil {
		return p, err
	}
	if err := json.Unmarshal([]byte(prefs), &p.Preferences); err != nil {
		return p, fmt.Errorf("preferences: %w", err)
	}
	return p, nil
}

func scanLiteApplication(row liteRow) (model.Application, error) {
	var (
		a                    model.Application
		notes, cover         sql.NullString
		score                sql.NullInt64
		skills, history      string
		createdAt, updatedAt string
	)
	err := row.Scan(
		&a.ID, &a.JobID, &a.EmployerID, &a.ApplicantID, &a.ApplicantName, &a.ApplicantEmail,
		&a.Status, &a.AppliedDate, &notes, &cover, &score,
		&skills, &a.Experience, &a.Location, &history, &createdAt, &updatedAt,
	)
	if err != nil {
		return a, err
	}
	if a.Skills, err = decodeList(skills); err != nil {
		return a, err
	}
	a.Notes = nullString(notes)
	a.CoverLetter = nullString(cover)
	a.AIMatchScore = nullInt(score)
	a.HistoryLog = json.RawMessage(history)
	if a.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return a, fmt.Errorf("created_at: %w", err)
	}
	if a.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return a, fmt.Errorf("updated_at: %w", err)
	}
	return a, nil
}

func encodeList(s []string) string {
	b, _ := json.Marshal(nonNil(s))
	return string(b)
}

func decodeList(raw string) ([]string, error) {
	out := []string{}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return out, nil
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) &&
		(se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE || se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY)
}
