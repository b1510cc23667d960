package kanban_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"jobmate/board-service/internal/cache"
	cachemocks "jobmate/board-service/internal/cache/mocks"
	"jobmate/board-service/internal/kanban"
	"jobmate/board-service/internal/model"
	"jobmate/board-service/internal/store"
	storemocks "jobmate/board-service/internal/store/mocks"
)

func intPtr(v int) *int { return &v }

var remoteJob = model.Job{
	ID: "j1", EmployerID: "emp", Title: "Frontend Developer", Remote: true,
	Category: "Technology", Type: model.TypeFullTime,
	Skills: []string{"React", "CSS"},
}

var seeker = model.SeekerProfile{
	UserID: "u1", Name: "Sam Lee", Email: "sam@example.com", Location: "Downtown",
	Skills: []string{"React", "CSS"}, Experience: "5-10 years",
}

func TestService_Apply(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (store.Store, cache.Publisher)
		wantErr error
		check   func(t *testing.T, app model.Application)
	}{
		{
			name: "creates pending application with score",
			mock: func(ctrl *gomock.Controller) (store.Store, cache.Publisher) {
				st := storemocks.NewMockStore(ctrl)
				pub := cachemocks.NewMockPublisher(ctrl)
				st.EXPECT().GetJob(gomock.Any(), "j1").Return(remoteJob, nil)
				st.EXPECT().GetProfile(gomock.Any(), "u1").Return(seeker, nil)
				st.EXPECT().InsertApplication(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, app model.Application) (model.Application, error) {
						return app, nil
					})
				pub.EXPECT().Publish(gomock.Any(), cache.EventApplicationCreated, gomock.Any()).Return(nil)
				return st, pub
			},
			check: func(t *testing.T, app model.Application) {
				assert.NotEmpty(t, app.ID)
				assert.Equal(t, "pending", app.Status)
				assert.Equal(t, "emp", app.EmployerID)
				assert.Equal(t, "Sam Lee", app.ApplicantName)
				assert.Len(t, app.AppliedDate, len("2006-01-02"))
				// Full skill overlap, ideal experience, remote location: 40 + 30 + 27.
				require.NotNil(t, app.AIMatchScore)
				assert.Equal(t, 97, *app.AIMatchScore)
				require.NotNil(t, app.CoverLetter)
				assert.Equal(t, "Hi there", *app.CoverLetter)
			},
		},
		{
			name: "publish failure is not fatal",
			mock: func(ctrl *gomock.Controller) (store.Store, cache.Publisher) {
				st := storemocks.NewMockStore(ctrl)
				pub := cachemocks.NewMockPublisher(ctrl)
				st.EXPECT().GetJob(gomock.Any(), "j1").Return(remoteJob, nil)
				st.EXPECT().GetProfile(gomock.Any(), "u1").Return(seeker, nil)
				st.EXPECT().InsertApplication(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, app model.Application) (model.Application, error) {
						return app, nil
					})
				pub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
				return st, pub
			},
			check: func(t *testing.T, app model.Application) {
				assert.Equal(t, "pending", app.Status)
			},
		},
		{
			name: "unknown job",
			mock: func(ctrl *gomock.Controller) (store.Store, cache.Publisher) {
				st := storemocks.NewMockStore(ctrl)
				st.EXPECT().GetJob(gomock.Any(), "j1").Return(model.Job{}, store.ErrNotFound)
				return st, cachemocks.NewMockPublisher(ctrl)
			},
			wantErr: kanban.ErrJobNotFound,
		},
		{
			name: "no profile yet",
			mock: func(ctrl *gomock.Controller) (store.Store, cache.Publisher) {
				st := storemocks.NewMockStore(ctrl)
				st.EXPECT().GetJob(gomock.Any(), "j1").Return(remoteJob, nil)
				st.EXPECT().GetProfile(gomock.Any(), "u1").Return(model.SeekerProfile{}, store.ErrNotFound)
				return st, cachemocks.NewMockPublisher(ctrl)
			},
			wantErr: kanban.ErrProfileRequired,
		},
		{
			name: "second application",
			mock: func(ctrl *gomock.Controller) (store.Store, cache.Publisher) {
				st := storemocks.NewMockStore(ctrl)
				st.EXPECT().GetJob(gomock.Any(), "j1").Return(remoteJob, nil)
				st.EXPECT().GetProfile(gomock.Any(), "u1").Return(seeker, nil)
				st.EXPECT().InsertApplication(gomock.Any(), gomock.Any()).Return(model.Application{}, store.ErrDuplicate)
				return st, cachemocks.NewMockPublisher(ctrl)
			},
			wantErr: kanban.ErrAlreadyApplied,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := kanban.NewService(tc.mock(ctrl))
			app, err := svc.Apply(context.Background(), "u1", "j1", "Hi there")
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.check != nil {
				tc.check(t, app)
			}
		})
	}
}

func TestService_MoveCard(t *testing.T) {
	pending := model.Application{ID: "a1", JobID: "j1", EmployerID: "emp", ApplicantID: "u1", Status: "pending"}
	hired := pending
	hired.Status = "hired"

	testCases := []struct {
		name     string
		employer string
		to       string
		mock     func(ctrl *gomock.Controller) (store.Store, cache.Publisher)
		wantErr  error
		wantVErr bool
	}{
		{
			name: "pending to reviewing", employer: "emp", to: "reviewing",
			mock: func(ctrl *gomock.Controller) (store.Store, cache.Publisher) {
				st := storemocks.NewMockStore(ctrl)
				pub := cachemocks.NewMockPublisher(ctrl)
				st.EXPECT().GetApplication(gomock.Any(), "a1").Return(pending, nil)
				st.EXPECT().UpdateApplicationStatus(gomock.Any(), "a1", "pending", "reviewing", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, from, to string, entry json.RawMessage) (model.Application, error) {
						var e map[string]string
						require.NoError(t, json.Unmarshal(entry, &e))
						assert.Equal(t, from, e["from"])
						assert.Equal(t, to, e["to"])
						assert.Equal(t, "emp", e["by"])
						assert.NotEmpty(t, e["at"])
						moved := pending
						moved.Status = to
						return moved, nil
					})
				pub.EXPECT().Publish(gomock.Any(), cache.EventCardMoved, gomock.Any()).Return(nil)
				return st, pub
			},
		},
		{
			name: "unknown status", employer: "emp", to: "archived",
			mock: func(ctrl *gomock.Controller) (store.Store, cache.Publisher) {
				return storemocks.NewMockStore(ctrl), cachemocks.NewMockPublisher(ctrl)
			},
			wantVErr: true,
		},
		{
			name: "skip a column", employer: "emp", to: "hired",
			mock: func(ctrl *gomock.Controller) (store.Store, cache.Publisher) {
				st := storemocks.NewMockStore(ctrl)
				st.EXPECT().GetApplication(gomock.Any(), "a1").Return(pending, nil)
				return st, cachemocks.NewMockPublisher(ctrl)
			},
			wantVErr: true,
		},
		{
			name: "terminal state", employer: "emp", to: "rejected",
			mock: func(ctrl *gomock.Controller) (store.Store, cache.Publisher) {
				st := storemocks.NewMockStore(ctrl)
				st.EXPECT().GetApplication(gomock.Any(), "a1").Return(hired, nil)
				return st, cachemocks.NewMockPublisher(ctrl)
			},
			wantVErr: true,
		},
		{
			name: "other employer", employer: "intruder", to: "reviewing",
			mock: func(ctrl *gomock.Controller) (store.Store, cache.Publisher) {
				st := storemocks.NewMockStore(ctrl)
				st.EXPECT().GetApplication(gomock.Any(), "a1").Return(pending, nil)
				return st, cachemocks.NewMockPublisher(ctrl)
			},
			wantErr: kanban.ErrForbidden,
		},
		{
			name: "missing application", employer: "emp", to: "reviewing",
			mock: func(ctrl *gomock.Controller) (store.Store, cache.Publisher) {
				st := storemocks.NewMockStore(ctrl)
				st.EXPECT().GetApplication(gomock.Any(), "a1").Return(model.Application{}, store.ErrNotFound)
				return st, cachemocks.NewMockPublisher(ctrl)
			},
			wantErr: kanban.ErrNotFound,
		},
		{
			name: "moved concurrently", employer: "emp", to: "rejected",
			mock: func(ctrl *gomock.Controller) (store.Store, cache.Publisher) {
				st := storemocks.NewMockStore(ctrl)
				st.EXPECT().GetApplication(gomock.Any(), "a1").Return(pending, nil)
				st.EXPECT().UpdateApplicationStatus(gomock.Any(), "a1", "pending", "rejected", gomock.Any()).
					Return(model.Application{}, store.ErrConflict)
				return st, cachemocks.NewMockPublisher(ctrl)
			},
			wantErr: kanban.ErrConcurrentMove,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := kanban.NewService(tc.mock(ctrl))
			app, err := svc.MoveCard(context.Background(), tc.employer, "a1", tc.to)
			if tc.wantVErr {
				var ve *kanban.ValidationError
				assert.ErrorAs(t, err, &ve)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				assert.Equal(t, tc.to, app.Status)
			}
		})
	}
}

func TestService_AddNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app := model.Application{ID: "a1", EmployerID: "emp", Status: "reviewing"}
	st := storemocks.NewMockStore(ctrl)
	st.EXPECT().GetApplication(gomock.Any(), "a1").Return(app, nil).Times(2)
	note := "call back Monday"
	noted := app
	noted.Notes = &note
	st.EXPECT().UpdateApplicationNotes(gomock.Any(), "a1", note).Return(noted, nil)

	svc := kanban.NewService(st, cache.Noop{})
	got, err := svc.AddNote(context.Background(), "emp", "a1", note)
	require.NoError(t, err)
	assert.Equal(t, note, *got.Notes)

	_, err = svc.AddNote(context.Background(), "someone-else", "a1", note)
	assert.ErrorIs(t, err, kanban.ErrForbidden)
}

func TestService_ListForEmployer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := storemocks.NewMockStore(ctrl)
	st.EXPECT().ListApplicationsByEmployer(gomock.Any(), "emp").Return(boardFixture(), nil)

	svc := kanban.NewService(st, cache.Noop{})
	board, err := svc.ListForEmployer(context.Background(), "emp",
		kanban.ApplicantCriteria{JobID: "j1", Status: kanban.AnyValue}, kanban.SortAIMatch)
	require.NoError(t, err)
	assert.Equal(t, []string{"a3", "a1"}, appIDs(board.Applications))
	// Stats cover every applicant, not just the filtered ones.
	assert.Equal(t, kanban.BoardStats{Total: 4, Pending: 2, Reviewing: 1, Hired: 1}, board.Stats)
}
