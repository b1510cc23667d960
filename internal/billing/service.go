package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"jobmate/board-service/internal/model"
	"jobmate/board-service/internal/store"
)

// Service persists subscription changes.
type Service struct {
	st  store.Store
	now func() time.Time
}

// NewService returns a Service over st.
func NewService(st store.Store) *Service {
	return &Service{st: st, now: time.Now}
}

// Current returns the user's subscription, or ok=false when there is none.
func (s *Service) Current(ctx context.Context, userID string) (sub model.Subscription, ok bool, err error) {
	sub, err = s.st.GetSubscription(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return model.Subscription{}, false, nil
	}
	if err != nil {
		return model.Subscription{}, false, fmt.Errorf("current subscription: %w", err)
	}
	return sub, true, nil
}

// Subscribe switches userID to planID.
func (s *Service) Subscribe(ctx context.Context, userID, planID string) (model.Subscription, error) {
	sub, err := Subscribe(userID, planID, s.now())
	if err != nil {
		return model.Subscription{}, err
	}
	if err := s.st.SaveSubscription(ctx, sub); err != nil {
		return model.Subscription{}, err
	}
	log.Info().Str("userId", userID).Str("planId", planID).Msg("subscription started")
	return sub, nil
}

// PurchaseCredits adds packageID to userID's subscription, creating a
// pay-per-post one when needed. The update runs against the locked row so it
// cannot overwrite a concurrent credit spend.
func (s *Service) PurchaseCredits(ctx context.Context, userID, packageID string) (model.Subscription, error) {
	if _, ok := FindPackage(packageID); !ok {
		return model.Subscription{}, ErrUnknownPackage
	}
	today := s.now()
	next, err := s.st.UpdateSubscription(ctx, userID, func(cur model.Subscription, _ bool) (model.Subscription, error) {
		return PurchaseCredits(cur, packageID, today)
	})
	if err != nil {
		return model.Subscription{}, fmt.Errorf("purchase credits: %w", err)
	}
	log.Info().Str("userId", userID).Str("packageId", packageID).Int("remaining", next.Remaining()).
		Msg("credits purchased")
	return next, nil
}
