package kanban

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"jobmate/board-service/internal/cache"
	"jobmate/board-service/internal/matching"
	"jobmate/board-service/internal/model"
	"jobmate/board-service/internal/store"
)

// ─── Service ─────────────────────────────────────────────────────────────────

// Service holds the application board logic shared by every transport.
type Service struct {
	st  store.Store
	pub cache.Publisher
	now func() time.Time
}

// NewService returns a configured Service.
func NewService(st store.Store, pub cache.Publisher) *Service {
	return &Service{st: st, pub: pub, now: time.Now}
}

// ─── Seeker side ──────────────────────────────────────────────────────────────

// Apply files a pending application from seekerID's profile to jobID. The
// compatibility score at apply time is kept on the application.
func (s *Service) Apply(ctx context.Context, seekerID, jobID, coverLetter string) (model.Application, error) {
	job, err := s.st.GetJob(ctx, jobID)
	if errors.Is(err, store.ErrNotFound) {
		return model.Application{}, ErrJobNotFound
	}
	if err != nil {
		return model.Application{}, fmt.Errorf("apply: %w", err)
	}

	profile, err := s.st.GetProfile(ctx, seekerID)
	if errors.Is(err, store.ErrNotFound) {
		return model.Application{}, ErrProfileRequired
	}
	if err != nil {
		return model.Application{}, fmt.Errorf("apply: %w", err)
	}

	rec := matching.ScoreCompatibility(job, profile.Candidate())
	app := model.Application{
		ID:             uuid.NewString(),
		JobID:          job.ID,
		EmployerID:     job.EmployerID,
		ApplicantID:    seekerID,
		ApplicantName:  profile.Name,
		ApplicantEmail: profile.Email,
		Status:         string(StatusPending),
		AppliedDate:    s.now().UTC().Format("2006-01-02"),
		AIMatchScore:   &rec.OverallScore,
		Skills:         profile.Skills,
		Experience:     profile.Experience,
		Location:       profile.Location,
	}
	if coverLetter != "" {
		app.CoverLetter = &coverLetter
	}

	created, err := s.st.InsertApplication(ctx, app)
	if errors.Is(err, store.ErrDuplicate) {
		return model.Application{}, ErrAlreadyApplied
	}
	if err != nil {
		return model.Application{}, fmt.Errorf("apply insert: %w", err)
	}

	s.publish(ctx, cache.EventApplicationCreated, map[string]any{
		"type":          cache.EventApplicationCreated,
		"applicationId": created.ID,
		"jobId":         job.ID,
		"employerId":    job.EmployerID,
		"userId":        seekerID,
		"aiMatchScore":  rec.OverallScore,
	})
	return created, nil
}

// ListForSeeker returns seekerID's applications, most recently updated first.
func (s *Service) ListForSeeker(ctx context.Context, seekerID string) ([]model.Application, error) {
	return s.st.ListApplicationsByApplicant(ctx, seekerID)
}

// ─── Employer side ────────────────────────────────────────────────────────────

// EmployerBoard is the filtered applicant list plus the unfiltered column counts.
type EmployerBoard struct {
	Applications []model.Application `json:"applications"`
	Stats        BoardStats          `json:"stats"`
}

// ListForEmployer returns the applicants to employerID's jobs, filtered by c
// and ordered by sortBy.
func (s *Service) ListForEmployer(ctx context.Context, employerID string, c ApplicantCriteria, sortBy ApplicantSort) (EmployerBoard, error) {
	apps, err := s.st.ListApplicationsByEmployer(ctx, employerID)
	if err != nil {
		return EmployerBoard{}, fmt.Errorf("listForEmployer: %w", err)
	}
	return EmployerBoard{
		Applications: SortApplicants(FilterApplicants(apps, c), sortBy),
		Stats:        CountByStatus(apps),
	}, nil
}

// MoveCard transitions an application to a new board status.
// Returns ErrNotFound if the application does not exist, ErrForbidden if it
// belongs to another employer's job, and *ValidationError if the state
// machine rejects the transition.
func (s *Service) MoveCard(ctx context.Context, employerID, appID, newStatusStr string) (model.Application, error) {
	newStatus, err := ParseStatus(newStatusStr)
	if err != nil {
		return model.Application{}, &ValidationError{Msg: err.Error()}
	}

	current, err := s.owned(ctx, employerID, appID)
	if err != nil {
		return model.Application{}, err
	}

	currentStatus, _ := ParseStatus(current.Status)
	if !IsTransitionAllowed(currentStatus, newStatus) {
		return model.Application{}, &ValidationError{
			Msg: fmt.Sprintf("transition %s → %s is not allowed", currentStatus, newStatus),
		}
	}

	historyEntry, _ := json.Marshal(map[string]string{
		"from": string(currentStatus),
		"to":   string(newStatus),
		"at":   s.now().UTC().Format(time.RFC3339),
		"by":   employerID,
	})

	app, err := s.st.UpdateApplicationStatus(ctx, appID, string(currentStatus), string(newStatus), historyEntry)
	if errors.Is(err, store.ErrConflict) {
		return model.Application{}, ErrConcurrentMove
	}
	if err != nil {
		return model.Application{}, fmt.Errorf("moveCard update: %w", err)
	}

	s.publish(ctx, cache.EventCardMoved, map[string]any{
		"type":          cache.EventCardMoved,
		"applicationId": appID,
		"userId":        app.ApplicantID,
		"employerId":    employerID,
		"from":          string(currentStatus),
		"to":            string(newStatus),
	})
	return app, nil
}

// AddNote sets or replaces the employer's free-text note on an application.
func (s *Service) AddNote(ctx context.Context, employerID, appID, note string) (model.Application, error) {
	if _, err := s.owned(ctx, employerID, appID); err != nil {
		return model.Application{}, err
	}
	app, err := s.st.UpdateApplicationNotes(ctx, appID, note)
	if errors.Is(err, store.ErrNotFound) {
		return model.Application{}, ErrNotFound
	}
	if err != nil {
		return model.Application{}, fmt.Errorf("addNote: %w", err)
	}
	return app, nil
}

func (s *Service) owned(ctx context.Context, employerID, appID string) (model.Application, error) {
	app, err := s.st.GetApplication(ctx, appID)
	if errors.Is(err, store.ErrNotFound) {
		return model.Application{}, ErrNotFound
	}
	if err != nil {
		return model.Application{}, fmt.Errorf("load application: %w", err)
	}
	if app.EmployerID != employerID {
		return model.Application{}, ErrForbidden
	}
	return app, nil
}

func (s *Service) publish(ctx context.Context, channel string, payload any) {
	if err := s.pub.Publish(ctx, channel, payload); err != nil {
		log.Warn().Err(err).Str("channel", channel).Msg("publish failed")
	}
}

// ─── Sentinel errors ─────────────────────────────────────────────────────────

var (
	// ErrNotFound is returned when an application is missing.
	ErrNotFound = errors.New("application not found")
	// ErrJobNotFound is returned when applying to a job that does not exist.
	ErrJobNotFound = errors.New("job not found")
	// ErrForbidden is returned when the caller does not own the job applied to.
	ErrForbidden = errors.New("application belongs to another employer")
	// ErrAlreadyApplied is returned on a second application to the same job.
	ErrAlreadyApplied = errors.New("already applied to this job")
	// ErrProfileRequired is returned when a seeker applies before onboarding.
	ErrProfileRequired = errors.New("complete your profile before applying")
	// ErrConcurrentMove is returned when the card moved between read and write.
	ErrConcurrentMove = errors.New("application status changed, reload and retry")
)

// ValidationError wraps a user-facing validation message.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }
