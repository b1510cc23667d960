package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"jobmate/board-service/internal/billing"
	"jobmate/board-service/internal/model"
	"jobmate/board-service/internal/store"
	storemocks "jobmate/board-service/internal/store/mocks"
)

var today = time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC)

func TestCatalogue(t *testing.T) {
	for _, id := range []string{"employer-starter", "employer-professional", "employer-enterprise", "seeker-basic", "seeker-premium"} {
		_, ok := billing.FindPlan(id)
		assert.True(t, ok, id)
	}
	_, ok := billing.FindPlan(billing.PayPerPost)
	assert.False(t, ok)

	pkg, ok := billing.FindPackage("credits-15")
	require.True(t, ok)
	assert.Equal(t, 18, pkg.Total())
	pkg, ok = billing.FindPackage("credits-5")
	require.True(t, ok)
	assert.Equal(t, 5, pkg.Total())
}

func TestSubscribe(t *testing.T) {
	testCases := []struct {
		name        string
		plan        string
		wantCredits int
		wantErr     error
	}{
		{name: "employer plan grants credits", plan: "employer-professional", wantCredits: 10},
		{name: "seeker plan grants none", plan: "seeker-premium", wantCredits: 0},
		{name: "unknown plan", plan: "gold", wantErr: billing.ErrUnknownPlan},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sub, err := billing.Subscribe("u1", tc.plan, today)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, model.Subscription{
				UserID: "u1", PlanID: tc.plan, Status: billing.StatusActive, StartDate: "2024-03-09",
				Credits: tc.wantCredits, AutoRenew: true,
			}, sub)
		})
	}
}

func TestPurchaseCredits(t *testing.T) {
	t.Run("no subscription becomes pay-per-post", func(t *testing.T) {
		sub, err := billing.PurchaseCredits(model.Subscription{UserID: "e1"}, "credits-15", today)
		require.NoError(t, err)
		assert.Equal(t, billing.PayPerPost, sub.PlanID)
		assert.Equal(t, billing.StatusActive, sub.Status)
		assert.Equal(t, "2024-03-09", sub.StartDate)
		assert.Equal(t, 18, sub.Credits)
		assert.False(t, sub.AutoRenew)
	})

	t.Run("existing plan keeps plan and usage", func(t *testing.T) {
		cur := model.Subscription{UserID: "e1", PlanID: "employer-starter", Status: billing.StatusActive,
			StartDate: "2024-01-01", Credits: 10, UsedCredits: 7, AutoRenew: true}
		sub, err := billing.PurchaseCredits(cur, "credits-5", today)
		require.NoError(t, err)
		assert.Equal(t, "employer-starter", sub.PlanID)
		assert.Equal(t, "2024-01-01", sub.StartDate)
		assert.Equal(t, 15, sub.Credits)
		assert.Equal(t, 7, sub.UsedCredits)
		assert.Equal(t, 8, sub.Remaining())
	})

	t.Run("unknown package", func(t *testing.T) {
		cur := model.Subscription{UserID: "e1", Credits: 1}
		sub, err := billing.PurchaseCredits(cur, "credits-100", today)
		assert.ErrorIs(t, err, billing.ErrUnknownPackage)
		assert.Equal(t, cur, sub)
	})
}

func TestConsumeCredit(t *testing.T) {
	sub := model.Subscription{Credits: 2}

	sub, err := billing.ConsumeCredit(sub)
	require.NoError(t, err)
	sub, err = billing.ConsumeCredit(sub)
	require.NoError(t, err)
	assert.Equal(t, 0, sub.Remaining())

	_, err = billing.ConsumeCredit(sub)
	assert.ErrorIs(t, err, billing.ErrNoCredits)
	assert.Equal(t, 2, sub.UsedCredits)
}

// ── Service ────────────────────────────────────────────────────────────────

// updateFrom makes UpdateSubscription apply fn to cur.
func updateFrom(cur model.Subscription, exists bool) func(context.Context, string, store.ChargeFunc) (model.Subscription, error) {
	return func(_ context.Context, _ string, fn store.ChargeFunc) (model.Subscription, error) {
		return fn(cur, exists)
	}
}

func TestService_PurchaseCredits(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) store.Store
		pkg     string
		wantErr error
		want    int
		plan    string
	}{
		{
			name: "first purchase",
			mock: func(ctrl *gomock.Controller) store.Store {
				st := storemocks.NewMockStore(ctrl)
				st.EXPECT().UpdateSubscription(gomock.Any(), "e1", gomock.Any()).
					DoAndReturn(updateFrom(model.Subscription{UserID: "e1"}, false))
				return st
			},
			pkg:  "credits-5",
			want: 5,
			plan: billing.PayPerPost,
		},
		{
			name: "top up",
			mock: func(ctrl *gomock.Controller) store.Store {
				st := storemocks.NewMockStore(ctrl)
				st.EXPECT().UpdateSubscription(gomock.Any(), "e1", gomock.Any()).
					DoAndReturn(updateFrom(model.Subscription{UserID: "e1", PlanID: "employer-starter",
						Credits: 10, UsedCredits: 10}, true))
				return st
			},
			pkg:  "credits-15",
			want: 18,
			plan: "employer-starter",
		},
		{
			name: "unknown package",
			mock: func(ctrl *gomock.Controller) store.Store {
				return storemocks.NewMockStore(ctrl)
			},
			pkg:     "credits-500",
			wantErr: billing.ErrUnknownPackage,
		},
		{
			name: "store failure",
			mock: func(ctrl *gomock.Controller) store.Store {
				st := storemocks.NewMockStore(ctrl)
				st.EXPECT().UpdateSubscription(gomock.Any(), "e1", gomock.Any()).
					Return(model.Subscription{}, errors.New("db down"))
				return st
			},
			pkg:     "credits-5",
			wantErr: errors.New("purchase credits: db down"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := billing.NewService(tc.mock(ctrl))
			sub, err := svc.PurchaseCredits(context.Background(), "e1", tc.pkg)
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, sub.Remaining())
			assert.Equal(t, tc.plan, sub.PlanID)
		})
	}
}

func TestService_Subscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := storemocks.NewMockStore(ctrl)
	st.EXPECT().SaveSubscription(gomock.Any(), gomock.Any()).Return(nil)
	svc := billing.NewService(st)

	sub, err := svc.Subscribe(context.Background(), "e1", "employer-enterprise")
	require.NoError(t, err)
	assert.Equal(t, billing.StarterCredits, sub.Credits)

	_, err = svc.Subscribe(context.Background(), "e1", "nope")
	assert.ErrorIs(t, err, billing.ErrUnknownPlan)
}

func TestService_Current(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := storemocks.NewMockStore(ctrl)
	st.EXPECT().GetSubscription(gomock.Any(), "none").Return(model.Subscription{}, store.ErrNotFound)
	st.EXPECT().GetSubscription(gomock.Any(), "e1").Return(model.Subscription{UserID: "e1", Credits: 3}, nil)
	svc := billing.NewService(st)

	_, ok, err := svc.Current(context.Background(), "none")
	require.NoError(t, err)
	assert.False(t, ok)

	sub, ok, err := svc.Current(context.Background(), "e1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, sub.Remaining())
}
